package ontology

import (
	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/clog"
	"github.com/owlkit/owlkit/voc/rdf"
)

var (
	rdfFirst = quad.IRI(rdf.First)
	rdfRest  = quad.IRI(rdf.Rest)
)

// PruneOrphans removes anonymous leftovers of deletes: restriction nodes that
// lost their owl:onProperty or are no longer referenced, and list cells that
// nothing points to. Deletes never do this on their own. It returns the
// number of removed triples.
func (o *Ontology) PruneOrphans() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := 0
	for _, r := range o.g.Subjects(rdfType, owlRestrict) {
		if _, ok := r.(quad.BNode); !ok {
			continue
		}
		if o.g.Value(r, owlOnProp) != nil && o.g.Match(nil, nil, r).Len() > 0 {
			continue
		}
		n += o.g.Remove(nil, nil, r)
		n += o.g.Remove(r, nil, nil)
	}
	// removing a head cell orphans the next one
	for {
		removed := 0
		for _, q := range o.g.Quads(nil, rdfRest, nil) {
			cell, ok := q.Subject.(quad.BNode)
			if !ok || o.g.Match(nil, nil, cell).Len() > 0 {
				continue
			}
			removed += o.g.Remove(cell, rdfFirst, nil)
			removed += o.g.Remove(cell, rdfRest, nil)
		}
		if removed == 0 {
			break
		}
		n += removed
	}
	if clog.V(1) {
		clog.Infof("ontology: pruned %d orphan triples", n)
	}
	return n
}
