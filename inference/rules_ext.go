package inference

import (
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/internal/mapset"
	"github.com/owlkit/owlkit/voc/owl"
)

var (
	hasKey           = quad.IRI(owl.HasKey)
	maxCardinality   = quad.IRI(owl.MaxCardinality)
	maxQualifiedCard = quad.IRI(owl.MaxQualifiedCardinality)
	disjointWith     = quad.IRI(owl.DisjointWith)
	disjointUnionOf  = quad.IRI(owl.DisjointUnionOf)
	differentFrom    = quad.IRI(owl.DifferentFrom)
	propDisjointWith = quad.IRI(owl.PropertyDisjointWith)
	allDifferent     = quad.IRI(owl.AllDifferent)
	members          = quad.IRI(owl.Members)
	distinctMembers  = quad.IRI(owl.DistinctMembers)
)

var extRules = []rule{
	{"prp-key", prpKey},
	{"cls-maxc2", clsMaxc2},
	{"cls-maxqc", clsMaxqc},
	{"disjoint-union", disjointUnion},
	{"all-different", allDifferentMembers},
	{"symmetric-disjoint", func(r *round) {
		symmetric(r, disjointWith)
		symmetric(r, differentFrom)
		symmetric(r, propDisjointWith)
	}},
}

func symmetric(r *round, p quad.Value) {
	r.each(p, func(q quad.Quad) {
		r.emit(q.Object, p, q.Subject)
	})
}

// prpKey: (c hasKey (p1 ... pn)), x and y of type c share a value for every pi -> (x sameAs y).
func prpKey(r *round) {
	r.each(hasKey, func(hk quad.Quad) {
		keys := r.list(hk.Object)
		if len(keys) == 0 {
			return
		}
		byKey := make(map[string][]quad.Value)
		for _, x := range r.instances(hk.Subject) {
			// one composite key per combination of values
			combos := []string{""}
			for _, p := range keys {
				vals := r.g.Objects(x, p)
				var next []string
				for _, c := range combos {
					for _, v := range vals {
						next = append(next, c+"\x00"+quad.StringOf(v))
					}
				}
				combos = next
			}
			seen := mapset.NewThreadUnsafeSet()
			for _, c := range combos {
				if seen.Add(c) {
					byKey[c] = append(byKey[c], x)
				}
			}
		}
		for _, xs := range byKey {
			for i := range xs {
				for j := i + 1; j < len(xs); j++ {
					r.same(xs[i], xs[j])
				}
			}
		}
	})
}

func isOne(v quad.Value) bool {
	switch t := v.(type) {
	case quad.TypedString:
		return strings.TrimSpace(string(t.Value)) == "1"
	case quad.String:
		return strings.TrimSpace(string(t)) == "1"
	case quad.Int:
		return t == 1
	}
	return false
}

// clsMaxc2: (x maxCardinality 1), (x onProperty p), (u type x), (u p y1), (u p y2) -> (y1 sameAs y2).
func clsMaxc2(r *round) {
	r.each(maxCardinality, func(mc quad.Quad) {
		if !isOne(mc.Object) {
			return
		}
		r.sameValues(mc.Subject, nil)
	})
}

// clsMaxqc covers cls-maxqc3 and cls-maxqc4; values must be of the onClass
// class unless it is owl:Thing.
func clsMaxqc(r *round) {
	r.each(maxQualifiedCard, func(mc quad.Quad) {
		if !isOne(mc.Object) {
			return
		}
		for _, c := range r.g.Objects(mc.Subject, onClass) {
			if c == owlThing {
				c = nil
			}
			r.sameValues(mc.Subject, c)
		}
	})
}

// sameValues equates all values of the restricted property for each member of restriction x.
func (r *round) sameValues(x, class quad.Value) {
	for _, p := range r.g.Objects(x, onProperty) {
		for _, u := range r.instances(x) {
			var ys []quad.Value
			for _, y := range r.g.Objects(u, p) {
				if class == nil || r.g.Contains(y, rdfType, class) {
					ys = append(ys, y)
				}
			}
			for i := range ys {
				for j := i + 1; j < len(ys); j++ {
					r.same(ys[i], ys[j])
				}
			}
		}
	}
}

// disjointUnion: (c disjointUnionOf (c1 ... cn)) -> (ci subClassOf c), (ci disjointWith cj).
func disjointUnion(r *round) {
	r.each(disjointUnionOf, func(du quad.Quad) {
		cs := r.list(du.Object)
		for i, ci := range cs {
			r.emit(ci, subClassOf, du.Subject)
			for j, cj := range cs {
				if i != j && ci != cj {
					r.emit(ci, disjointWith, cj)
				}
			}
		}
	})
}

// allDifferentMembers: (x type AllDifferent), (x members (y1 ... yn)) -> (yi differentFrom yj).
func allDifferentMembers(r *round) {
	for _, x := range r.instances(allDifferent) {
		for _, pred := range []quad.Value{members, distinctMembers} {
			for _, head := range r.g.Objects(x, pred) {
				ys := r.list(head)
				for i, yi := range ys {
					for j, yj := range ys {
						if i != j && yi != yj {
							r.emit(yi, differentFrom, yj)
						}
					}
				}
			}
		}
	}
}
