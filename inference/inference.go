// Package inference computes the deductive closure of a triple store.
//
// RDFS Rules:
// rdf1. (x p y) -> (p rdf:type rdf:Property)
// rdfs2. (p rdfs:domain c), (x p y) -> (x rdf:type c)
// rdfs3. (p rdfs:range c), (x p y) -> (y rdf:type c)
// rdfs4a. (x p y) -> (x rdf:type rdfs:Resource)
// rdfs4b. (x p y) -> (y rdf:type rdfs:Resource)
// rdfs5. (p rdfs:subPropertyOf q), (q rdfs:subPropertyOf r) -> (p rdfs:subPropertyOf r)
// rdfs6. (p rdf:type rdf:Property) -> (p rdfs:subPropertyOf p)
// rdfs7. (p rdfs:subPropertyOf q), (x p y) -> (x q y)
// rdfs8. (c rdf:type rdfs:Class) -> (c rdfs:subClassOf rdfs:Resource)
// rdfs9. (c rdfs:subClassOf d), (x rdf:type c) -> (x rdf:type d)
// rdfs10. (c rdf:type rdfs:Class) -> (c rdfs:subClassOf c)
// rdfs11. (c rdfs:subClassOf d), (d rdfs:subClassOf e) -> (c rdfs:subClassOf e)
// rdfs12. (p rdf:type rdfs:ContainerMembershipProperty) -> (p rdfs:subPropertyOf rdfs:member)
// rdfs13. (x rdf:type rdfs:Datatype) -> (x rdfs:subClassOf rdfs:Literal)
//
// OWL-RL rules follow the names of the OWL 2 RL/RDF rule tables
// (prp-*, eq-*, cax-*, cls-*, scm-*). The extended profile adds prp-key,
// cls-maxc2, cls-maxqc3/4 and expansion of disjoint unions and AllDifferent.
//
// Rules only combine nodes that are already in the store, so the closure is finite.
// Literals are never placed in subject position.
package inference

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/clog"
	"github.com/owlkit/owlkit/graph"
)

// Profile selects a rule set.
type Profile string

const (
	RDFS     Profile = "rdfs"
	OWLRL    Profile = "owl-rl"
	OWLRLExt Profile = "owl-rl-ext"
)

var ErrUnknownProfile = errors.New("unknown reasoning profile")

// Profiles lists the supported profiles.
func Profiles() []Profile {
	return []Profile{RDFS, OWLRL, OWLRLExt}
}

// ParseProfile accepts a profile name, ignoring case and '_' vs '-'.
func ParseProfile(s string) (Profile, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "rdfs":
		return RDFS, nil
	case "owl-rl", "owlrl":
		return OWLRL, nil
	case "owl-rl-ext", "owlrl-ext", "owl-rl-extension":
		return OWLRLExt, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProfile, s)
}

func (p Profile) rules() ([]rule, error) {
	switch p {
	case RDFS:
		return rdfsRules, nil
	case OWLRL:
		return owlRules, nil
	case OWLRLExt:
		out := make([]rule, 0, len(owlRules)+len(rdfsRules)+len(extRules))
		out = append(out, owlRules...)
		out = append(out, rdfsRules...)
		return append(out, extRules...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, string(p))
}

// RuleNames returns the names of the rules applied by the profile, in order.
func (p Profile) RuleNames() []string {
	rules, _ := p.rules()
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.name)
	}
	return names
}

type rule struct {
	name string
	fn   func(r *round)
}

// round collects the triples derived from one snapshot of the store.
type round struct {
	g  *graph.Store
	tx *graph.Transaction
}

func (r *round) emit(s, p, o quad.Value) {
	if !graph.IsResource(s) || o == nil {
		return
	}
	if _, ok := p.(quad.IRI); !ok {
		return
	}
	if r.g.Contains(s, p, o) {
		return
	}
	r.tx.AddTriple(s, p, o)
}

// Result describes a closure run.
type Result struct {
	Inferred int `json:"inferred"`
	Rounds   int `json:"rounds"`
}

// Closure applies the rules of the profile to g until no rule derives a new
// triple. Derived triples are added in place.
func Closure(g *graph.Store, p Profile) (Result, error) {
	rules, err := p.rules()
	if err != nil {
		return Result{}, err
	}
	start := time.Now()
	defer func() {
		mDuration.WithLabelValues(string(p)).Observe(time.Since(start).Seconds())
	}()

	var res Result
	for {
		r := &round{g: g, tx: graph.NewTransaction()}
		for _, ru := range rules {
			ru.fn(r)
		}
		res.Rounds++
		mRounds.WithLabelValues(string(p)).Inc()
		if r.tx.Len() == 0 {
			break
		}
		n, err := g.ApplyTransaction(r.tx)
		if err != nil {
			return res, err
		}
		res.Inferred += n
		mInferred.WithLabelValues(string(p)).Add(float64(n))
		if clog.V(2) {
			clog.Infof("inference: %s round %d added %d triples", p, res.Rounds, n)
		}
	}
	if clog.V(1) {
		clog.Infof("inference: %s closure added %d triples in %d rounds", p, res.Inferred, res.Rounds)
	}
	return res, nil
}
