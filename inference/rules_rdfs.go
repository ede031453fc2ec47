package inference

import (
	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/clog"
	"github.com/owlkit/owlkit/graph"
	"github.com/owlkit/owlkit/rdflist"
	"github.com/owlkit/owlkit/voc/rdf"
	"github.com/owlkit/owlkit/voc/rdfs"
)

var (
	rdfType       = quad.IRI(rdf.Type)
	rdfProperty   = quad.IRI(rdf.Property)
	rdfsResource  = quad.IRI(rdfs.Resource)
	rdfsClass     = quad.IRI(rdfs.Class)
	rdfsLiteral   = quad.IRI(rdfs.Literal)
	rdfsDatatype  = quad.IRI(rdfs.Datatype)
	rdfsMember    = quad.IRI(rdfs.Member)
	rdfsCMP       = quad.IRI(rdfs.ContainerMembershipProperty)
	subClassOf    = quad.IRI(rdfs.SubClassOf)
	subPropertyOf = quad.IRI(rdfs.SubPropertyOf)
	domain        = quad.IRI(rdfs.Domain)
	rng           = quad.IRI(rdfs.Range)
)

var rdfsRules = []rule{
	{"rdf1", rdf1},
	{"rdfs2", rdfs2},
	{"rdfs3", rdfs3},
	{"rdfs4", rdfs4},
	{"rdfs5", func(r *round) { r.transitive(subPropertyOf) }},
	{"rdfs6", rdfs6},
	{"rdfs7", rdfs7},
	{"rdfs8", rdfs8},
	{"rdfs9", rdfs9},
	{"rdfs10", rdfs10},
	{"rdfs11", func(r *round) { r.transitive(subClassOf) }},
	{"rdfs12", rdfs12},
	{"rdfs13", rdfs13},
}

// each calls fn for every triple with predicate p; a nil p visits all triples.
func (r *round) each(p quad.Value, fn func(q quad.Quad)) {
	it := r.g.Match(nil, p, nil)
	for it.Next() {
		fn(it.Result())
	}
}

// instances returns subjects typed with c.
func (r *round) instances(c quad.Value) []quad.Value {
	return r.g.Subjects(rdfType, c)
}

func (r *round) list(head quad.Value) []quad.Value {
	vals, err := rdflist.Decode(r.g, head)
	if err != nil && clog.V(2) {
		clog.Infof("inference: skipping malformed list: %v", err)
	}
	return vals
}

// transitive closes p over one step: (a p b), (b p c) -> (a p c).
func (r *round) transitive(p quad.Value) {
	r.each(p, func(ab quad.Quad) {
		if !graph.IsResource(ab.Object) {
			return
		}
		for _, c := range r.g.Objects(ab.Object, p) {
			r.emit(ab.Subject, p, c)
		}
	})
}

func rdf1(r *round) {
	r.each(nil, func(q quad.Quad) {
		r.emit(q.Predicate, rdfType, rdfProperty)
	})
}

func rdfs2(r *round) {
	r.each(domain, func(d quad.Quad) {
		for _, x := range r.g.Subjects(d.Subject, nil) {
			r.emit(x, rdfType, d.Object)
		}
	})
}

func rdfs3(r *round) {
	r.each(rng, func(d quad.Quad) {
		it := r.g.Match(nil, d.Subject, nil)
		for it.Next() {
			r.emit(it.Result().Object, rdfType, d.Object)
		}
	})
}

func rdfs4(r *round) {
	r.each(nil, func(q quad.Quad) {
		r.emit(q.Subject, rdfType, rdfsResource)
		r.emit(q.Object, rdfType, rdfsResource)
	})
}

func rdfs6(r *round) {
	for _, p := range r.instances(rdfProperty) {
		r.emit(p, subPropertyOf, p)
	}
}

// rdfs7 also serves prp-spo1.
func rdfs7(r *round) {
	r.each(subPropertyOf, func(spo quad.Quad) {
		if spo.Subject == spo.Object {
			return
		}
		it := r.g.Match(nil, spo.Subject, nil)
		for it.Next() {
			q := it.Result()
			r.emit(q.Subject, spo.Object, q.Object)
		}
	})
}

func rdfs8(r *round) {
	for _, c := range r.instances(rdfsClass) {
		r.emit(c, subClassOf, rdfsResource)
	}
}

// rdfs9 also serves cax-sco.
func rdfs9(r *round) {
	r.each(subClassOf, func(sco quad.Quad) {
		if sco.Subject == sco.Object {
			return
		}
		for _, x := range r.instances(sco.Subject) {
			r.emit(x, rdfType, sco.Object)
		}
	})
}

func rdfs10(r *round) {
	for _, c := range r.instances(rdfsClass) {
		r.emit(c, subClassOf, c)
	}
}

func rdfs12(r *round) {
	for _, p := range r.instances(rdfsCMP) {
		r.emit(p, subPropertyOf, rdfsMember)
	}
}

func rdfs13(r *round) {
	for _, x := range r.instances(rdfsDatatype) {
		r.emit(x, subClassOf, rdfsLiteral)
	}
}
