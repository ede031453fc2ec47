package inference

import (
	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/graph"
	"github.com/owlkit/owlkit/voc/owl"
)

var (
	owlThing          = quad.IRI(owl.Thing)
	owlNothing        = quad.IRI(owl.Nothing)
	owlClass          = quad.IRI(owl.Class)
	owlObjectProperty = quad.IRI(owl.ObjectProperty)
	owlDataProperty   = quad.IRI(owl.DatatypeProperty)
	sameAs            = quad.IRI(owl.SameAs)
	equivalentClass   = quad.IRI(owl.EquivalentClass)
	equivalentProp    = quad.IRI(owl.EquivalentProperty)
	inverseOf         = quad.IRI(owl.InverseOf)
	propertyChain     = quad.IRI(owl.PropertyChainAxiom)
	onProperty        = quad.IRI(owl.OnProperty)
	onClass           = quad.IRI(owl.OnClass)
	hasValue          = quad.IRI(owl.HasValue)
	someValuesFrom    = quad.IRI(owl.SomeValuesFrom)
	allValuesFrom     = quad.IRI(owl.AllValuesFrom)
	intersectionOf    = quad.IRI(owl.IntersectionOf)
	unionOf           = quad.IRI(owl.UnionOf)
	oneOf             = quad.IRI(owl.OneOf)
	symmetricProperty = quad.IRI(owl.SymmetricProperty)
	transitiveProp    = quad.IRI(owl.TransitiveProperty)
	functionalProp    = quad.IRI(owl.FunctionalProperty)
	invFunctionalProp = quad.IRI(owl.InverseFunctionalProperty)
)

var owlRules = []rule{
	{"prp-dom", rdfs2},
	{"prp-rng", rdfs3},
	{"prp-spo1", rdfs7},
	{"prp-spo2", prpSpo2},
	{"prp-symp", prpSymp},
	{"prp-trp", prpTrp},
	{"prp-inv", prpInv},
	{"prp-eqp", prpEqp},
	{"prp-fp", prpFp},
	{"prp-ifp", prpIfp},
	{"eq-sym", eqSym},
	{"eq-trans", func(r *round) { r.transitive(sameAs) }},
	{"eq-rep", eqRep},
	{"cax-sco", rdfs9},
	{"cax-eqc", caxEqc},
	{"cls-hv", clsHv},
	{"cls-svf", clsSvf},
	{"cls-avf", clsAvf},
	{"cls-int", clsInt},
	{"cls-uni", clsUni},
	{"cls-oo", clsOo},
	{"scm-cls", scmCls},
	{"scm-sco", func(r *round) { r.transitive(subClassOf) }},
	{"scm-eqc", scmEqc},
	{"scm-op", func(r *round) { scmProp(r, owlObjectProperty) }},
	{"scm-dp", func(r *round) { scmProp(r, owlDataProperty) }},
	{"scm-spo", func(r *round) { r.transitive(subPropertyOf) }},
	{"scm-eqp", scmEqp},
	{"scm-dom", scmDom},
	{"scm-rng", scmRng},
}

// prpSpo2 follows property chains: (p propertyChainAxiom (p1 ... pn)),
// (x0 p1 x1) ... (xn-1 pn xn) -> (x0 p xn).
func prpSpo2(r *round) {
	r.each(propertyChain, func(pc quad.Quad) {
		chain := r.list(pc.Object)
		if len(chain) == 0 {
			return
		}
		r.each(chain[0], func(start quad.Quad) {
			ends := []quad.Value{start.Object}
			for _, p := range chain[1:] {
				var next []quad.Value
				for _, x := range ends {
					if graph.IsResource(x) {
						next = append(next, r.g.Objects(x, p)...)
					}
				}
				ends = next
			}
			for _, y := range ends {
				r.emit(start.Subject, pc.Subject, y)
			}
		})
	})
}

func prpSymp(r *round) {
	for _, p := range r.instances(symmetricProperty) {
		r.each(p, func(q quad.Quad) {
			r.emit(q.Object, p, q.Subject)
		})
	}
}

func prpTrp(r *round) {
	for _, p := range r.instances(transitiveProp) {
		r.transitive(p)
	}
}

// prpInv covers prp-inv1 and prp-inv2.
func prpInv(r *round) {
	r.each(inverseOf, func(inv quad.Quad) {
		r.each(inv.Subject, func(q quad.Quad) {
			r.emit(q.Object, inv.Object, q.Subject)
		})
		r.each(inv.Object, func(q quad.Quad) {
			r.emit(q.Object, inv.Subject, q.Subject)
		})
	})
}

// prpEqp covers prp-eqp1 and prp-eqp2.
func prpEqp(r *round) {
	r.each(equivalentProp, func(eq quad.Quad) {
		r.each(eq.Subject, func(q quad.Quad) {
			r.emit(q.Subject, eq.Object, q.Object)
		})
		r.each(eq.Object, func(q quad.Quad) {
			r.emit(q.Subject, eq.Subject, q.Object)
		})
	})
}

// same emits owl:sameAs for two distinct resources.
func (r *round) same(a, b quad.Value) {
	if a == b || !graph.IsResource(a) || !graph.IsResource(b) {
		return
	}
	r.emit(a, sameAs, b)
}

func prpFp(r *round) {
	for _, p := range r.instances(functionalProp) {
		bySubj := make(map[quad.Value][]quad.Value)
		r.each(p, func(q quad.Quad) {
			bySubj[q.Subject] = append(bySubj[q.Subject], q.Object)
		})
		for _, ys := range bySubj {
			for i := range ys {
				for j := i + 1; j < len(ys); j++ {
					r.same(ys[i], ys[j])
				}
			}
		}
	}
}

func prpIfp(r *round) {
	for _, p := range r.instances(invFunctionalProp) {
		byObj := make(map[quad.Value][]quad.Value)
		r.each(p, func(q quad.Quad) {
			byObj[q.Object] = append(byObj[q.Object], q.Subject)
		})
		for _, xs := range byObj {
			for i := range xs {
				for j := i + 1; j < len(xs); j++ {
					r.same(xs[i], xs[j])
				}
			}
		}
	}
}

func eqSym(r *round) {
	r.each(sameAs, func(q quad.Quad) {
		r.emit(q.Object, sameAs, q.Subject)
	})
}

// eqRep covers eq-rep-s, eq-rep-p and eq-rep-o.
func eqRep(r *round) {
	r.each(sameAs, func(eq quad.Quad) {
		a, b := eq.Subject, eq.Object
		if a == b {
			return
		}
		it := r.g.Match(a, nil, nil)
		for it.Next() {
			q := it.Result()
			r.emit(b, q.Predicate, q.Object)
		}
		if _, ok := b.(quad.IRI); ok {
			r.each(a, func(q quad.Quad) {
				r.emit(q.Subject, b, q.Object)
			})
		}
		it = r.g.Match(nil, nil, a)
		for it.Next() {
			q := it.Result()
			r.emit(q.Subject, q.Predicate, b)
		}
	})
}

// caxEqc covers cax-eqc1 and cax-eqc2.
func caxEqc(r *round) {
	r.each(equivalentClass, func(eq quad.Quad) {
		for _, x := range r.instances(eq.Subject) {
			r.emit(x, rdfType, eq.Object)
		}
		for _, x := range r.instances(eq.Object) {
			r.emit(x, rdfType, eq.Subject)
		}
	})
}

// clsHv covers cls-hv1 and cls-hv2.
func clsHv(r *round) {
	r.each(hasValue, func(hv quad.Quad) {
		x, y := hv.Subject, hv.Object
		for _, p := range r.g.Objects(x, onProperty) {
			for _, u := range r.instances(x) {
				r.emit(u, p, y)
			}
			for _, u := range r.g.Subjects(p, y) {
				r.emit(u, rdfType, x)
			}
		}
	})
}

// clsSvf covers cls-svf1 and cls-svf2.
func clsSvf(r *round) {
	r.each(someValuesFrom, func(svf quad.Quad) {
		x, y := svf.Subject, svf.Object
		for _, p := range r.g.Objects(x, onProperty) {
			r.each(p, func(q quad.Quad) {
				if y == owlThing || r.g.Contains(q.Object, rdfType, y) {
					r.emit(q.Subject, rdfType, x)
				}
			})
		}
	})
}

func clsAvf(r *round) {
	r.each(allValuesFrom, func(avf quad.Quad) {
		x, y := avf.Subject, avf.Object
		for _, p := range r.g.Objects(x, onProperty) {
			for _, u := range r.instances(x) {
				for _, v := range r.g.Objects(u, p) {
					r.emit(v, rdfType, y)
				}
			}
		}
	})
}

// clsInt covers cls-int1 and cls-int2.
func clsInt(r *round) {
	r.each(intersectionOf, func(in quad.Quad) {
		c := in.Subject
		members := r.list(in.Object)
		if len(members) == 0 {
			return
		}
		for _, y := range r.instances(members[0]) {
			all := true
			for _, ci := range members[1:] {
				if !r.g.Contains(y, rdfType, ci) {
					all = false
					break
				}
			}
			if all {
				r.emit(y, rdfType, c)
			}
		}
		for _, y := range r.instances(c) {
			for _, ci := range members {
				r.emit(y, rdfType, ci)
			}
		}
	})
}

func clsUni(r *round) {
	r.each(unionOf, func(un quad.Quad) {
		for _, ci := range r.list(un.Object) {
			for _, y := range r.instances(ci) {
				r.emit(y, rdfType, un.Subject)
			}
		}
	})
}

func clsOo(r *round) {
	r.each(oneOf, func(oo quad.Quad) {
		for _, y := range r.list(oo.Object) {
			r.emit(y, rdfType, oo.Subject)
		}
	})
}

func scmCls(r *round) {
	for _, c := range r.instances(owlClass) {
		r.emit(c, subClassOf, c)
		r.emit(c, equivalentClass, c)
		r.emit(c, subClassOf, owlThing)
		r.emit(owlNothing, subClassOf, c)
	}
}

// scmEqc covers scm-eqc1 and scm-eqc2.
func scmEqc(r *round) {
	r.each(equivalentClass, func(eq quad.Quad) {
		r.emit(eq.Subject, subClassOf, eq.Object)
		r.emit(eq.Object, subClassOf, eq.Subject)
	})
	r.each(subClassOf, func(sco quad.Quad) {
		if sco.Subject != sco.Object && r.g.Contains(sco.Object, subClassOf, sco.Subject) {
			r.emit(sco.Subject, equivalentClass, sco.Object)
		}
	})
}

func scmProp(r *round, typ quad.Value) {
	for _, p := range r.instances(typ) {
		r.emit(p, subPropertyOf, p)
		r.emit(p, equivalentProp, p)
	}
}

// scmEqp covers scm-eqp1 and scm-eqp2.
func scmEqp(r *round) {
	r.each(equivalentProp, func(eq quad.Quad) {
		r.emit(eq.Subject, subPropertyOf, eq.Object)
		r.emit(eq.Object, subPropertyOf, eq.Subject)
	})
	r.each(subPropertyOf, func(spo quad.Quad) {
		if spo.Subject != spo.Object && r.g.Contains(spo.Object, subPropertyOf, spo.Subject) {
			r.emit(spo.Subject, equivalentProp, spo.Object)
		}
	})
}

// scmDom covers scm-dom1 and scm-dom2.
func scmDom(r *round) {
	scmDomRange(r, domain)
}

// scmRng covers scm-rng1 and scm-rng2.
func scmRng(r *round) {
	scmDomRange(r, rng)
}

func scmDomRange(r *round, pred quad.Value) {
	r.each(pred, func(d quad.Quad) {
		p, c := d.Subject, d.Object
		if graph.IsResource(c) {
			for _, c2 := range r.g.Objects(c, subClassOf) {
				r.emit(p, pred, c2)
			}
		}
		for _, p1 := range r.g.Subjects(subPropertyOf, p) {
			r.emit(p1, pred, c)
		}
	})
}
