// Package owl contains constants of the Web Ontology Language (OWL)
package owl

import "github.com/owlkit/owlkit/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2002/07/owl#`
	Prefix = `owl:`
)

// Entity types
const (
	Ontology                  = NS + "Ontology"
	Class                     = NS + "Class"
	Thing                     = NS + "Thing"
	Nothing                   = NS + "Nothing"
	ObjectProperty            = NS + "ObjectProperty"
	DatatypeProperty          = NS + "DatatypeProperty"
	AnnotationProperty        = NS + "AnnotationProperty"
	NamedIndividual           = NS + "NamedIndividual"
	Restriction               = NS + "Restriction"
	AllDifferent              = NS + "AllDifferent"
	FunctionalProperty        = NS + "FunctionalProperty"
	InverseFunctionalProperty = NS + "InverseFunctionalProperty"
	TransitiveProperty        = NS + "TransitiveProperty"
	SymmetricProperty         = NS + "SymmetricProperty"
	AsymmetricProperty        = NS + "AsymmetricProperty"
	ReflexiveProperty         = NS + "ReflexiveProperty"
	IrreflexiveProperty       = NS + "IrreflexiveProperty"
)

// Ontology header
const (
	Imports     = NS + "imports"
	VersionIRI  = NS + "versionIRI"
	VersionInfo = NS + "versionInfo"
	Deprecated  = NS + "deprecated"
)

// Class and property axioms
const (
	EquivalentClass      = NS + "equivalentClass"
	EquivalentProperty   = NS + "equivalentProperty"
	DisjointWith         = NS + "disjointWith"
	PropertyDisjointWith = NS + "propertyDisjointWith"
	InverseOf            = NS + "inverseOf"
	PropertyChainAxiom   = NS + "propertyChainAxiom"
	HasKey               = NS + "hasKey"
	DisjointUnionOf      = NS + "disjointUnionOf"
	SameAs               = NS + "sameAs"
	DifferentFrom        = NS + "differentFrom"
	DistinctMembers      = NS + "distinctMembers"
	Members              = NS + "members"
)

// Restrictions
const (
	OnProperty              = NS + "onProperty"
	OnClass                 = NS + "onClass"
	SomeValuesFrom          = NS + "someValuesFrom"
	AllValuesFrom           = NS + "allValuesFrom"
	HasValue                = NS + "hasValue"
	Cardinality             = NS + "cardinality"
	MinCardinality          = NS + "minCardinality"
	MaxCardinality          = NS + "maxCardinality"
	QualifiedCardinality    = NS + "qualifiedCardinality"
	MinQualifiedCardinality = NS + "minQualifiedCardinality"
	MaxQualifiedCardinality = NS + "maxQualifiedCardinality"
)

// Class expressions
const (
	UnionOf        = NS + "unionOf"
	IntersectionOf = NS + "intersectionOf"
	ComplementOf   = NS + "complementOf"
	OneOf          = NS + "oneOf"
)
