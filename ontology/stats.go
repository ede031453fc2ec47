package ontology

import (
	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/voc/owl"
)

// Statistics counts entities and triples.
type Statistics struct {
	Classes          int `json:"classes"`
	ObjectProperties int `json:"object_properties"`
	DataProperties   int `json:"data_properties"`
	Individuals      int `json:"individuals"`
	Restrictions     int `json:"restrictions"`
	TotalTriples     int `json:"total_triples"`
	ContentTriples   int `json:"content_triples"`
}

// Statistics counts named classes, properties and individuals, restriction
// nodes and triples. Content triples exclude those describing the ontology
// node itself.
func (o *Ontology) Statistics() Statistics {
	o.mu.RLock()
	defer o.mu.RUnlock()
	total := o.g.Size()
	return Statistics{
		Classes:          len(o.named(owl.Class)),
		ObjectProperties: len(o.named(owl.ObjectProperty)),
		DataProperties:   len(o.named(owl.DatatypeProperty)),
		Individuals:      len(o.named(owl.NamedIndividual)),
		Restrictions:     len(o.g.Subjects(rdfType, quad.IRI(owl.Restriction))),
		TotalTriples:     total,
		ContentTriples:   total - o.g.Match(o.iri, nil, nil).Len(),
	}
}
