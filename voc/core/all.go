// Package core imports all well-known RDF vocabularies.
package core

import (
	_ "github.com/owlkit/owlkit/voc/dc"
	_ "github.com/owlkit/owlkit/voc/dcterms"
	_ "github.com/owlkit/owlkit/voc/owl"
	_ "github.com/owlkit/owlkit/voc/rdf"
	_ "github.com/owlkit/owlkit/voc/rdfs"
	_ "github.com/owlkit/owlkit/voc/skos"
	_ "github.com/owlkit/owlkit/voc/xsd"
)
