// Package rdfs contains constants of the RDF Schema vocabulary (RDFS)
package rdfs

import "github.com/owlkit/owlkit/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2000/01/rdf-schema#`
	Prefix = `rdfs:`
)

// Classes
const (
	Resource                    = NS + "Resource"
	Class                       = NS + "Class"
	Literal                     = NS + "Literal"
	Datatype                    = NS + "Datatype"
	ContainerMembershipProperty = NS + "ContainerMembershipProperty"
)

// Properties
const (
	SubClassOf    = NS + "subClassOf"
	SubPropertyOf = NS + "subPropertyOf"
	Domain        = NS + "domain"
	Range         = NS + "range"
	Label         = NS + "label"
	Comment       = NS + "comment"
	SeeAlso       = NS + "seeAlso"
	IsDefinedBy   = NS + "isDefinedBy"
	Member        = NS + "member"
)
