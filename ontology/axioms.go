package ontology

import (
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/clog"
	"github.com/owlkit/owlkit/rdflist"
	"github.com/owlkit/owlkit/voc/owl"
)

var (
	owlChain        = quad.IRI(owl.PropertyChainAxiom)
	owlHasKey       = quad.IRI(owl.HasKey)
	owlDisjUnion    = quad.IRI(owl.DisjointUnionOf)
	owlAllDifferent = quad.IRI(owl.AllDifferent)
	owlDistinct     = quad.IRI(owl.DistinctMembers)
)

// PropertyChain is a property defined as the composition of others, in order.
type PropertyChain struct {
	Property string   `json:"property"`
	Chain    []string `json:"chain"`
}

// ClassExpression is a boolean constructor attached to a named class.
type ClassExpression struct {
	Class   string         `json:"class"`
	Type    ExpressionKind `json:"type"`
	Members []string       `json:"members"`
}

// HasKey lists the key properties of a class.
type HasKey struct {
	Class      string   `json:"class"`
	Properties []string `json:"properties"`
}

// DisjointUnion is a class defined as the disjoint union of its members.
type DisjointUnion struct {
	Class   string   `json:"class"`
	Members []string `json:"members"`
}

func (o *Ontology) resolveAll(names []string) []quad.Value {
	out := make([]quad.Value, 0, len(names))
	for _, n := range names {
		out = append(out, o.resolve(n))
	}
	return out
}

// decode reads a list leniently. A malformed tail is logged and dropped.
func (o *Ontology) decode(head quad.Value) []quad.Value {
	vals, err := rdflist.Decode(o.g, head)
	if err != nil && clog.V(2) {
		clog.Infof("ontology: %v", err)
	}
	return vals
}

// attachList encodes names as a list and links it from s with p.
func (o *Ontology) attachList(s quad.Value, p quad.IRI, names []string) quad.Value {
	head := rdflist.Encode(o.g, o.resolveAll(names))
	o.g.Add(s, p, head)
	return head
}

// detachLists removes every (s, p, list) edge and the cells of the lists.
func (o *Ontology) detachLists(s quad.Value, p quad.IRI) int {
	n := 0
	for _, head := range o.g.Objects(s, p) {
		n += o.g.Remove(s, p, head)
		n += rdflist.Delete(o.g, head)
	}
	return n
}

// AddPropertyChain declares property as the composition of chain, in order.
func (o *Ontology) AddPropertyChain(property string, chain []string) error {
	if len(chain) < 2 {
		return fmt.Errorf("%w: got %d", ErrShortChain, len(chain))
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.attachList(o.resolve(property), owlChain, chain)
	return nil
}

// PropertyChains lists the property chain axioms of named properties.
func (o *Ontology) PropertyChains() []PropertyChain {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := []PropertyChain{}
	it := o.g.Match(nil, owlChain, nil)
	for it.Next() {
		q := it.Result()
		p, ok := q.Subject.(quad.IRI)
		if !ok {
			continue
		}
		out = append(out, PropertyChain{
			Property: LocalName(p),
			Chain:    localNames(o.decode(q.Object)),
		})
	}
	return out
}

// RemovePropertyChain removes the chain axioms of property with their lists.
func (o *Ontology) RemovePropertyChain(property string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.detachLists(o.resolve(property), owlChain)
}

// AddClassExpression attaches a class expression to class. complementOf uses
// the first member only and links it directly; the other kinds store the
// members as a list. oneOf members are individuals, the rest are classes.
func (o *Ontology) AddClassExpression(class string, kind ExpressionKind, members []string) error {
	p, err := kind.predicate()
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return fmt.Errorf("%s: %w", kind, ErrEmptyList)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	c := o.resolve(class)
	if kind == ComplementOf {
		o.g.Add(c, p, o.resolve(members[0]))
		return nil
	}
	o.attachList(c, p, members)
	return nil
}

// ClassExpressions lists the expressions of named classes, grouped by kind.
// A non-empty class, given as a name or an IRI, keeps only its expressions.
// Expressions without named members are skipped.
func (o *Ontology) ClassExpressions(class string) []ClassExpression {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := []ClassExpression{}
	want := o.filterName(class)
	for _, e := range expressionKinds {
		it := o.g.Match(nil, e.pred, nil)
		for it.Next() {
			q := it.Result()
			s, ok := q.Subject.(quad.IRI)
			if !ok || (want != "" && LocalName(s) != want) {
				continue
			}
			x := ClassExpression{Class: LocalName(s), Type: e.kind}
			if e.kind == ComplementOf {
				x.Members = localNames([]quad.Value{q.Object})
			} else {
				x.Members = localNames(o.decode(q.Object))
			}
			if len(x.Members) > 0 {
				out = append(out, x)
			}
		}
	}
	return out
}

// RemoveClassExpression removes the expressions of the given kind from class.
func (o *Ontology) RemoveClassExpression(class string, kind ExpressionKind) (int, error) {
	p, err := kind.predicate()
	if err != nil {
		return 0, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	c := o.resolve(class)
	if kind == ComplementOf {
		return o.g.Remove(c, p, nil), nil
	}
	return o.detachLists(c, p), nil
}

// AddAllDifferent declares the individuals pairwise different and returns the
// anonymous owl:AllDifferent node.
func (o *Ontology) AddAllDifferent(individuals []string) (quad.BNode, error) {
	if len(individuals) == 0 {
		return "", fmt.Errorf("all different: %w", ErrEmptyList)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	b := quad.RandomBlankNode()
	o.g.Add(b, rdfType, owlAllDifferent)
	o.attachList(b, owlDistinct, individuals)
	return b, nil
}

// AllDifferent lists the members of every owl:AllDifferent declaration.
func (o *Ontology) AllDifferent() [][]string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := [][]string{}
	for _, b := range o.g.Subjects(rdfType, owlAllDifferent) {
		head := o.g.Value(b, owlDistinct)
		if head == nil {
			continue
		}
		out = append(out, localNames(o.decode(head)))
	}
	return out
}

// AddHasKey declares properties as a key of class.
func (o *Ontology) AddHasKey(class string, properties []string) error {
	if len(properties) == 0 {
		return fmt.Errorf("has key: %w", ErrEmptyList)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.attachList(o.resolve(class), owlHasKey, properties)
	return nil
}

// HasKeys lists key axioms, optionally only those of class.
func (o *Ontology) HasKeys(class string) []HasKey {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := []HasKey{}
	want := o.filterName(class)
	it := o.g.Match(nil, owlHasKey, nil)
	for it.Next() {
		q := it.Result()
		s, ok := q.Subject.(quad.IRI)
		if !ok || (want != "" && LocalName(s) != want) {
			continue
		}
		out = append(out, HasKey{Class: LocalName(s), Properties: localNames(o.decode(q.Object))})
	}
	return out
}

// RemoveHasKey removes the key axioms of class.
func (o *Ontology) RemoveHasKey(class string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.detachLists(o.resolve(class), owlHasKey)
}

// AddDisjointUnion declares class the disjoint union of classes.
func (o *Ontology) AddDisjointUnion(class string, classes []string) error {
	if len(classes) == 0 {
		return fmt.Errorf("disjoint union: %w", ErrEmptyList)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.attachList(o.resolve(class), owlDisjUnion, classes)
	return nil
}

// DisjointUnions lists the disjoint union axioms of named classes.
func (o *Ontology) DisjointUnions() []DisjointUnion {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := []DisjointUnion{}
	it := o.g.Match(nil, owlDisjUnion, nil)
	for it.Next() {
		q := it.Result()
		s, ok := q.Subject.(quad.IRI)
		if !ok {
			continue
		}
		out = append(out, DisjointUnion{Class: LocalName(s), Members: localNames(o.decode(q.Object))})
	}
	return out
}

// RemoveDisjointUnion removes the disjoint union axioms of class.
func (o *Ontology) RemoveDisjointUnion(class string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.detachLists(o.resolve(class), owlDisjUnion)
}
