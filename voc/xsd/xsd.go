// Package xsd contains constants of the W3C XML Schema Definition Language https://www.w3.org/TR/xmlschema11-1/
package xsd

import "github.com/owlkit/owlkit/voc"

func init() {
	voc.RegisterPrefix(Prefix, NS)
}

const (
	NS     = `http://www.w3.org/2001/XMLSchema#`
	Prefix = `xsd:`
)

const (
	String             = NS + "string"
	Boolean            = NS + "boolean"
	Integer            = NS + "integer"
	Int                = NS + "int"
	Long               = NS + "long"
	Float              = NS + "float"
	Double             = NS + "double"
	Decimal            = NS + "decimal"
	Date               = NS + "date"
	DateTime           = NS + "dateTime"
	Time               = NS + "time"
	AnyURI             = NS + "anyURI"
	NonNegativeInteger = NS + "nonNegativeInteger"
	PositiveInteger    = NS + "positiveInteger"
)
