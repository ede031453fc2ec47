package ontology

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/voc/dcterms"
	"github.com/owlkit/owlkit/voc/owl"
	"github.com/owlkit/owlkit/voc/rdf"
	"github.com/owlkit/owlkit/voc/rdfs"
	"github.com/owlkit/owlkit/voc/skos"
	"github.com/owlkit/owlkit/voc/xsd"
)

// Datatype is the short name of an XML Schema datatype usable as a data
// property range.
type Datatype string

const (
	String             Datatype = "string"
	Integer            Datatype = "integer"
	Float              Datatype = "float"
	Double             Datatype = "double"
	Boolean            Datatype = "boolean"
	Date               Datatype = "date"
	DateTime           Datatype = "dateTime"
	Time               Datatype = "time"
	Decimal            Datatype = "decimal"
	AnyURI             Datatype = "anyURI"
	NonNegativeInteger Datatype = "nonNegativeInteger"
	PositiveInteger    Datatype = "positiveInteger"
)

var datatypes = []struct {
	name Datatype
	iri  quad.IRI
}{
	{String, xsd.String},
	{Integer, xsd.Integer},
	{Float, xsd.Float},
	{Double, xsd.Double},
	{Boolean, xsd.Boolean},
	{Date, xsd.Date},
	{DateTime, xsd.DateTime},
	{Time, xsd.Time},
	{Decimal, xsd.Decimal},
	{AnyURI, xsd.AnyURI},
	{NonNegativeInteger, xsd.NonNegativeInteger},
	{PositiveInteger, xsd.PositiveInteger},
}

// Datatypes lists the known datatype names.
func Datatypes() []Datatype {
	out := make([]Datatype, 0, len(datatypes))
	for _, d := range datatypes {
		out = append(out, d.name)
	}
	return out
}

func lookupDatatype(name string) (quad.IRI, bool) {
	for _, d := range datatypes {
		if string(d.name) == name {
			return d.iri, true
		}
	}
	return "", false
}

// IRI returns the datatype identifier. Unknown names map to xsd:string.
func (d Datatype) IRI() quad.IRI {
	if iri, ok := lookupDatatype(string(d)); ok {
		return iri
	}
	return xsd.String
}

// RestrictionKind names the constraint a restriction places on its property.
type RestrictionKind string

const (
	SomeValuesFrom          RestrictionKind = "someValuesFrom"
	AllValuesFrom           RestrictionKind = "allValuesFrom"
	HasValue                RestrictionKind = "hasValue"
	MinCardinality          RestrictionKind = "minCardinality"
	MaxCardinality          RestrictionKind = "maxCardinality"
	ExactCardinality        RestrictionKind = "exactCardinality"
	MinQualifiedCardinality RestrictionKind = "minQualifiedCardinality"
	MaxQualifiedCardinality RestrictionKind = "maxQualifiedCardinality"
	QualifiedCardinality    RestrictionKind = "qualifiedCardinality"
)

// in detection order
var restrictionKinds = []struct {
	kind RestrictionKind
	pred quad.IRI
}{
	{SomeValuesFrom, owl.SomeValuesFrom},
	{AllValuesFrom, owl.AllValuesFrom},
	{HasValue, owl.HasValue},
	{MinCardinality, owl.MinCardinality},
	{MaxCardinality, owl.MaxCardinality},
	{ExactCardinality, owl.Cardinality},
	{MinQualifiedCardinality, owl.MinQualifiedCardinality},
	{MaxQualifiedCardinality, owl.MaxQualifiedCardinality},
	{QualifiedCardinality, owl.QualifiedCardinality},
}

// RestrictionKinds lists the known restriction kinds.
func RestrictionKinds() []RestrictionKind {
	out := make([]RestrictionKind, 0, len(restrictionKinds))
	for _, r := range restrictionKinds {
		out = append(out, r.kind)
	}
	return out
}

// Predicate returns the OWL predicate carrying the restriction value.
func (k RestrictionKind) Predicate() (quad.IRI, bool) {
	for _, r := range restrictionKinds {
		if r.kind == k {
			return r.pred, true
		}
	}
	return "", false
}

func (k RestrictionKind) cardinality() bool {
	switch k {
	case MinCardinality, MaxCardinality, ExactCardinality:
		return true
	}
	return k.qualified()
}

func (k RestrictionKind) qualified() bool {
	switch k {
	case MinQualifiedCardinality, MaxQualifiedCardinality, QualifiedCardinality:
		return true
	}
	return false
}

// ParseRestrictionKind validates a restriction kind name.
func ParseRestrictionKind(s string) (RestrictionKind, error) {
	k := RestrictionKind(s)
	if _, ok := k.Predicate(); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRestrictionType, s)
	}
	return k, nil
}

// Characteristic is a flag of an object property, stored as an extra type.
type Characteristic string

const (
	Functional        Characteristic = "Functional"
	InverseFunctional Characteristic = "InverseFunctional"
	Transitive        Characteristic = "Transitive"
	Symmetric         Characteristic = "Symmetric"
	Asymmetric        Characteristic = "Asymmetric"
	Reflexive         Characteristic = "Reflexive"
	Irreflexive       Characteristic = "Irreflexive"
)

var characteristics = []struct {
	name Characteristic
	typ  quad.IRI
}{
	{Functional, owl.FunctionalProperty},
	{InverseFunctional, owl.InverseFunctionalProperty},
	{Transitive, owl.TransitiveProperty},
	{Symmetric, owl.SymmetricProperty},
	{Asymmetric, owl.AsymmetricProperty},
	{Reflexive, owl.ReflexiveProperty},
	{Irreflexive, owl.IrreflexiveProperty},
}

func (c Characteristic) typ() (quad.IRI, bool) {
	for _, ch := range characteristics {
		if ch.name == c {
			return ch.typ, true
		}
	}
	return "", false
}

// Relation names a binary axiom between two entities of the same kind.
type Relation string

const (
	SubClassOf      Relation = "subClassOf"
	EquivalentClass Relation = "equivalentClass"
	DisjointWith    Relation = "disjointWith"

	SubPropertyOf        Relation = "subPropertyOf"
	EquivalentProperty   Relation = "equivalentProperty"
	InverseOf            Relation = "inverseOf"
	PropertyDisjointWith Relation = "propertyDisjointWith"

	SameAs        Relation = "sameAs"
	DifferentFrom Relation = "differentFrom"
)

type relationTable []struct {
	rel  Relation
	pred quad.IRI
}

func (t relationTable) lookup(r Relation) (quad.IRI, error) {
	for _, e := range t {
		if e.rel == r {
			return e.pred, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRelation, r)
}

var (
	classRelations = relationTable{
		{SubClassOf, rdfs.SubClassOf},
		{EquivalentClass, owl.EquivalentClass},
		{DisjointWith, owl.DisjointWith},
	}
	propertyRelations = relationTable{
		{SubPropertyOf, rdfs.SubPropertyOf},
		{EquivalentProperty, owl.EquivalentProperty},
		{InverseOf, owl.InverseOf},
		{PropertyDisjointWith, owl.PropertyDisjointWith},
	}
	individualRelations = relationTable{
		{SameAs, owl.SameAs},
		{DifferentFrom, owl.DifferentFrom},
	}
)

// ExpressionKind names a boolean class constructor.
type ExpressionKind string

const (
	UnionOf        ExpressionKind = "unionOf"
	IntersectionOf ExpressionKind = "intersectionOf"
	ComplementOf   ExpressionKind = "complementOf"
	OneOf          ExpressionKind = "oneOf"
)

var expressionKinds = []struct {
	kind ExpressionKind
	pred quad.IRI
}{
	{UnionOf, owl.UnionOf},
	{IntersectionOf, owl.IntersectionOf},
	{ComplementOf, owl.ComplementOf},
	{OneOf, owl.OneOf},
}

func (k ExpressionKind) predicate() (quad.IRI, error) {
	for _, e := range expressionKinds {
		if e.kind == k {
			return e.pred, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownExpression, k)
}

// annotation shorthands; other names resolve against the base URI
var annotationPredicates = map[string]quad.IRI{
	"label":       rdfs.Label,
	"comment":     rdfs.Comment,
	"seeAlso":     rdfs.SeeAlso,
	"isDefinedBy": rdfs.IsDefinedBy,
	"prefLabel":   skos.PrefLabel,
	"altLabel":    skos.AltLabel,
	"definition":  skos.Definition,
	"example":     skos.Example,
	"note":        skos.Note,
	"title":       dcterms.Title,
	"description": dcterms.Description,
	"creator":     dcterms.Creator,
	"contributor": dcterms.Contributor,
	"date":        dcterms.Date,
	"deprecated":  owl.Deprecated,
}

// predicates that build axioms rather than annotate
var structural = map[quad.IRI]struct{}{
	rdf.Type:                     {},
	rdf.First:                    {},
	rdf.Rest:                     {},
	rdfs.SubClassOf:              {},
	rdfs.SubPropertyOf:           {},
	rdfs.Domain:                  {},
	rdfs.Range:                   {},
	owl.EquivalentClass:          {},
	owl.EquivalentProperty:       {},
	owl.DisjointWith:             {},
	owl.PropertyDisjointWith:     {},
	owl.InverseOf:                {},
	owl.PropertyChainAxiom:       {},
	owl.HasKey:                   {},
	owl.DisjointUnionOf:          {},
	owl.SameAs:                   {},
	owl.DifferentFrom:            {},
	owl.DistinctMembers:          {},
	owl.Members:                  {},
	owl.OnProperty:               {},
	owl.OnClass:                  {},
	owl.SomeValuesFrom:           {},
	owl.AllValuesFrom:            {},
	owl.HasValue:                 {},
	owl.MinCardinality:           {},
	owl.MaxCardinality:           {},
	owl.Cardinality:              {},
	owl.MinQualifiedCardinality:  {},
	owl.MaxQualifiedCardinality:  {},
	owl.QualifiedCardinality:     {},
	owl.UnionOf:                  {},
	owl.IntersectionOf:           {},
	owl.ComplementOf:             {},
	owl.OneOf:                    {},
	owl.Imports:                  {},
}

func isStructural(p quad.Value) bool {
	iri, ok := p.(quad.IRI)
	if !ok {
		return false
	}
	_, ok = structural[iri]
	return ok
}

// Kind is a kind of named entity.
type Kind string

const (
	KindClass          Kind = "class"
	KindObjectProperty Kind = "object_property"
	KindDataProperty   Kind = "data_property"
	KindIndividual     Kind = "individual"
)

func (k Kind) typ() (string, error) {
	switch k {
	case KindClass:
		return owl.Class, nil
	case KindObjectProperty:
		return owl.ObjectProperty, nil
	case KindDataProperty:
		return owl.DatatypeProperty, nil
	case KindIndividual:
		return owl.NamedIndividual, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, k)
}
