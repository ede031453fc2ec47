package inference

import (
	"errors"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/owlkit/owlkit/graph"
	"github.com/owlkit/owlkit/rdflist"
	"github.com/owlkit/owlkit/voc/xsd"
)

func ex(s string) quad.IRI { return quad.IRI("http://example.org/fam#" + s) }

func TestParseProfile(t *testing.T) {
	for in, exp := range map[string]Profile{
		"rdfs": RDFS, "RDFS": RDFS, "owl-rl": OWLRL, "owl_rl": OWLRL,
		"owlrl": OWLRL, "owl-rl-ext": OWLRLExt,
	} {
		p, err := ParseProfile(in)
		require.NoError(t, err, in)
		require.Equal(t, exp, p)
	}
	_, err := ParseProfile("owl-dl")
	require.True(t, errors.Is(err, ErrUnknownProfile))

	_, err = Closure(graph.New(), Profile("shoiq"))
	require.True(t, errors.Is(err, ErrUnknownProfile))
}

func TestRuleNames(t *testing.T) {
	require.Contains(t, RDFS.RuleNames(), "rdfs11")
	require.NotContains(t, OWLRL.RuleNames(), "rdfs4")
	require.Contains(t, OWLRL.RuleNames(), "prp-spo2")
	ext := OWLRLExt.RuleNames()
	require.Contains(t, ext, "prp-key")
	require.Contains(t, ext, "rdfs4")
	require.Contains(t, ext, "cax-eqc")
}

func TestRDFSClosure(t *testing.T) {
	g := graph.New()
	g.Add(ex("Dog"), subClassOf, ex("Mammal"))
	g.Add(ex("Mammal"), subClassOf, ex("Animal"))
	g.Add(ex("owns"), domain, ex("Person"))
	g.Add(ex("owns"), rng, ex("Animal"))
	g.Add(ex("rex"), rdfType, ex("Dog"))
	g.Add(ex("bob"), ex("owns"), ex("rex"))
	g.Add(ex("bob"), ex("name"), quad.String("Bob"))

	res, err := Closure(g, RDFS)
	require.NoError(t, err)
	require.True(t, res.Inferred > 0)
	require.True(t, res.Rounds > 1)

	require.True(t, g.Contains(ex("Dog"), subClassOf, ex("Animal")))
	require.True(t, g.Contains(ex("rex"), rdfType, ex("Animal")))
	require.True(t, g.Contains(ex("bob"), rdfType, ex("Person")))
	require.True(t, g.Contains(ex("owns"), rdfType, rdfProperty))
	require.True(t, g.Contains(ex("bob"), rdfType, rdfsResource))

	it := g.Match(nil, nil, nil)
	for it.Next() {
		require.True(t, graph.IsResource(it.Result().Subject), "%v", it.Result())
	}

	again, err := Closure(g, RDFS)
	require.NoError(t, err)
	require.Equal(t, 0, again.Inferred)
	require.Equal(t, 1, again.Rounds)
}

func TestOWLRLClosure(t *testing.T) {
	g := graph.New()
	g.Add(ex("knows"), rdfType, symmetricProperty)
	g.Add(ex("ancestorOf"), rdfType, transitiveProp)
	g.Add(ex("hasChild"), inverseOf, ex("hasParent"))
	g.Add(ex("hasMother"), rdfType, functionalProp)
	g.Add(ex("Human"), equivalentClass, ex("Person"))

	head := rdflist.Encode(g, []quad.Value{ex("hasParent"), ex("hasBrother")})
	g.Add(ex("hasUncle"), propertyChain, head)

	g.Add(ex("ann"), ex("knows"), ex("bea"))
	g.Add(ex("a"), ex("ancestorOf"), ex("b"))
	g.Add(ex("b"), ex("ancestorOf"), ex("c"))
	g.Add(ex("c"), ex("ancestorOf"), ex("d"))
	g.Add(ex("tom"), ex("hasParent"), ex("sue"))
	g.Add(ex("sue"), ex("hasBrother"), ex("joe"))
	g.Add(ex("tom"), ex("hasMother"), ex("sue"))
	g.Add(ex("tom"), ex("hasMother"), ex("susan"))
	g.Add(ex("tom"), rdfType, ex("Human"))

	_, err := Closure(g, OWLRL)
	require.NoError(t, err)

	require.True(t, g.Contains(ex("bea"), ex("knows"), ex("ann")))
	require.True(t, g.Contains(ex("a"), ex("ancestorOf"), ex("d")))
	require.True(t, g.Contains(ex("sue"), ex("hasChild"), ex("tom")))
	require.True(t, g.Contains(ex("tom"), ex("hasUncle"), ex("joe")))
	require.True(t, g.Contains(ex("sue"), sameAs, ex("susan")))
	require.True(t, g.Contains(ex("susan"), sameAs, ex("sue")))
	require.True(t, g.Contains(ex("susan"), ex("hasBrother"), ex("joe")))
	require.True(t, g.Contains(ex("tom"), rdfType, ex("Person")))

	again, err := Closure(g, OWLRL)
	require.NoError(t, err)
	require.Equal(t, 0, again.Inferred)
}

func TestRestrictionRules(t *testing.T) {
	g := graph.New()
	hv := quad.BNode("hv")
	g.Add(hv, onProperty, ex("color"))
	g.Add(hv, hasValue, ex("red"))
	g.Add(ex("apple"), rdfType, hv)

	svf := quad.BNode("svf")
	g.Add(svf, onProperty, ex("hasPet"))
	g.Add(svf, someValuesFrom, ex("Dog"))
	g.Add(ex("ann"), ex("hasPet"), ex("rex"))
	g.Add(ex("rex"), rdfType, ex("Dog"))

	avf := quad.BNode("avf")
	g.Add(avf, onProperty, ex("eats"))
	g.Add(avf, allValuesFrom, ex("Plant"))
	g.Add(ex("cow"), rdfType, avf)
	g.Add(ex("cow"), ex("eats"), ex("grass"))

	g.Add(ex("Pet"), unionOf, rdflist.Encode(g, []quad.Value{ex("Dog"), ex("Cat")}))
	g.Add(ex("Weekday"), oneOf, rdflist.Encode(g, []quad.Value{ex("Mon"), ex("Tue")}))
	g.Add(ex("Puppy"), intersectionOf, rdflist.Encode(g, []quad.Value{ex("Dog"), ex("Young")}))
	g.Add(ex("rex"), rdfType, ex("Young"))

	_, err := Closure(g, OWLRL)
	require.NoError(t, err)

	require.True(t, g.Contains(ex("apple"), ex("color"), ex("red")))
	require.True(t, g.Contains(ex("ann"), rdfType, svf))
	require.True(t, g.Contains(ex("grass"), rdfType, ex("Plant")))
	require.True(t, g.Contains(ex("rex"), rdfType, ex("Pet")))
	require.True(t, g.Contains(ex("Tue"), rdfType, ex("Weekday")))
	require.True(t, g.Contains(ex("rex"), rdfType, ex("Puppy")))
}

func TestExtendedRules(t *testing.T) {
	g := graph.New()
	g.Add(ex("Person"), hasKey, rdflist.Encode(g, []quad.Value{ex("ssn")}))
	g.Add(ex("p1"), rdfType, ex("Person"))
	g.Add(ex("p2"), rdfType, ex("Person"))
	g.Add(ex("p1"), ex("ssn"), quad.String("123"))
	g.Add(ex("p2"), ex("ssn"), quad.String("123"))

	g.Add(ex("Animal"), disjointUnionOf, rdflist.Encode(g, []quad.Value{ex("Cat"), ex("Dog")}))

	ad := quad.BNode("ad")
	g.Add(ad, rdfType, allDifferent)
	g.Add(ad, members, rdflist.Encode(g, []quad.Value{ex("x"), ex("y")}))

	mc := quad.BNode("mc")
	g.Add(mc, onProperty, ex("spouse"))
	g.Add(mc, maxCardinality, quad.TypedString{Value: "1", Type: xsd.NonNegativeInteger})
	g.Add(ex("jim"), rdfType, mc)
	g.Add(ex("jim"), ex("spouse"), ex("pam"))
	g.Add(ex("jim"), ex("spouse"), ex("pamela"))

	_, err := Closure(g, OWLRLExt)
	require.NoError(t, err)

	require.True(t, g.Contains(ex("p1"), sameAs, ex("p2")))
	require.True(t, g.Contains(ex("Cat"), subClassOf, ex("Animal")))
	require.True(t, g.Contains(ex("Dog"), disjointWith, ex("Cat")))
	require.True(t, g.Contains(ex("y"), differentFrom, ex("x")))
	require.True(t, g.Contains(ex("pam"), sameAs, ex("pamela")))

	// literal values are never equated
	require.False(t, g.Contains(quad.String("123"), sameAs, quad.String("123")))

	again, err := Closure(g, OWLRLExt)
	require.NoError(t, err)
	require.Equal(t, 0, again.Inferred)
}

func TestMetrics(t *testing.T) {
	rounds := testutil.ToFloat64(mRounds.WithLabelValues(string(OWLRL)))
	inferred := testutil.ToFloat64(mInferred.WithLabelValues(string(OWLRL)))

	g := graph.New()
	g.Add(ex("A"), subClassOf, ex("B"))
	g.Add(ex("x"), rdfType, ex("A"))
	res, err := Closure(g, OWLRL)
	require.NoError(t, err)

	require.Equal(t, rounds+float64(res.Rounds), testutil.ToFloat64(mRounds.WithLabelValues(string(OWLRL))))
	require.Equal(t, inferred+float64(res.Inferred), testutil.ToFloat64(mInferred.WithLabelValues(string(OWLRL))))
}
