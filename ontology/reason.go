package ontology

import (
	"github.com/owlkit/owlkit/clog"
	"github.com/owlkit/owlkit/inference"
)

// ApplyReasoning adds the deductive closure of the ontology under the given
// profile and returns the number of inferred triples. The closure cannot be
// undone; a second run returns 0.
func (o *Ontology) ApplyReasoning(profile inference.Profile) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	res, err := inference.Closure(o.g, profile)
	if err != nil {
		return 0, err
	}
	if clog.V(1) {
		clog.Infof("ontology: %s closure added %d triples in %d rounds", profile, res.Inferred, res.Rounds)
	}
	return res.Inferred, nil
}
