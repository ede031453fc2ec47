// Package rdf contains constants of the RDF Concepts Vocabulary (RDF)
package rdf

import "github.com/owlkit/owlkit/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/1999/02/22-rdf-syntax-ns#`
	Prefix = `rdf:`
)

const (
	Type       = NS + "type"
	Property   = NS + "Property"
	First      = NS + "first"
	Rest       = NS + "rest"
	Nil        = NS + "nil"
	List       = NS + "List"
	LangString = NS + "langString"
	XMLLiteral = NS + "XMLLiteral"
	// RDF is the root element of RDF/XML documents.
	RDF         = NS + "RDF"
	Description = NS + "Description"
)
