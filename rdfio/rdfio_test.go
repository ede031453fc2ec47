package rdfio_test

import (
	"bytes"
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/owlkit/owlkit/graph"
	"github.com/owlkit/owlkit/rdfio"
	"github.com/owlkit/owlkit/rdflist"
	"github.com/owlkit/owlkit/voc"
	"github.com/owlkit/owlkit/voc/owl"
	"github.com/owlkit/owlkit/voc/rdf"
	"github.com/owlkit/owlkit/voc/rdfs"
	"github.com/owlkit/owlkit/voc/xsd"
)

const ex = "http://example.org/zoo#"

func iri(local string) quad.IRI { return quad.IRI(ex + local) }

func testGraph() *graph.Store {
	g := graph.New()
	typ := quad.IRI(rdf.Type)
	g.Add(quad.IRI("http://example.org/zoo"), typ, quad.IRI(owl.Ontology))
	g.Add(iri("Animal"), typ, quad.IRI(owl.Class))
	g.Add(iri("Dog"), typ, quad.IRI(owl.Class))
	g.Add(iri("Dog"), quad.IRI(rdfs.SubClassOf), iri("Animal"))
	g.Add(iri("Dog"), quad.IRI(rdfs.Label), quad.LangString{Value: "Dog", Lang: "en"})
	g.Add(iri("Dog"), quad.IRI(rdfs.Label), quad.LangString{Value: "Hund", Lang: "de"})
	g.Add(iri("Dog"), quad.IRI(rdfs.Comment), quad.String("A \"good\" <boy> & friend\nsecond line"))

	r := quad.RandomBlankNode()
	g.Add(r, typ, quad.IRI(owl.Restriction))
	g.Add(r, quad.IRI(owl.OnProperty), iri("hasAge"))
	g.Add(r, quad.IRI(owl.Cardinality), quad.TypedString{Value: "1", Type: xsd.NonNegativeInteger})
	g.Add(iri("Dog"), quad.IRI(rdfs.SubClassOf), r)

	g.Add(iri("hasUncle"), typ, quad.IRI(owl.ObjectProperty))
	head := rdflist.Encode(g, []quad.Value{iri("hasParent"), iri("hasBrother")})
	g.Add(iri("hasUncle"), quad.IRI(owl.PropertyChainAxiom), head)
	return g
}

// canonical renders triples with anonymous nodes erased, so graphs that only
// differ in blank node labels compare equal.
func canonical(g *graph.Store) []string {
	var out []string
	it := g.Match(nil, nil, nil)
	for it.Next() {
		q := it.Result()
		for _, d := range []quad.Direction{quad.Subject, quad.Object} {
			if _, ok := q.Get(d).(quad.BNode); ok {
				q.Set(d, quad.BNode("x"))
			}
		}
		out = append(out, q.NQuad())
	}
	sort.Strings(out)
	return out
}

func testNamespaces() *voc.Namespaces {
	ns := voc.NewNamespaces()
	ns.Bind("", ex)
	ns.Bind("zoo", ex)
	return ns
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []string{"turtle", "xml", "n3", "nt", "json-ld"} {
		t.Run(format, func(t *testing.T) {
			g := testGraph()
			var buf bytes.Buffer
			n, err := rdfio.Dump(g, &buf, format, testNamespaces())
			require.NoError(t, err)
			require.Equal(t, g.Size(), n)

			g2 := graph.New()
			n, err = rdfio.Load(g2, bytes.NewReader(buf.Bytes()), format)
			require.NoError(t, err, buf.String())
			require.Equal(t, g.Size(), n)
			require.Equal(t, canonical(g), canonical(g2), buf.String())

			// list order survives
			var chains []quad.Value
			for _, h := range g2.Objects(iri("hasUncle"), quad.IRI(owl.PropertyChainAxiom)) {
				chains, err = rdflist.Decode(g2, h)
				require.NoError(t, err)
			}
			require.Equal(t, []quad.Value{iri("hasParent"), iri("hasBrother")}, chains)
		})
	}
}

func TestLoadFreshBlankNodes(t *testing.T) {
	const doc = `_:a <http://example.org/p> "x" .
`
	g := graph.New()
	_, err := rdfio.Load(g, strings.NewReader(doc), "nt")
	require.NoError(t, err)
	_, err = rdfio.Load(g, strings.NewReader(doc), "nt")
	require.NoError(t, err)
	require.Equal(t, 2, g.Size())
}

func TestLoadNormalizesStrings(t *testing.T) {
	const doc = `<http://example.org/s> <http://example.org/p> "x"^^<http://www.w3.org/2001/XMLSchema#string> .
`
	g := graph.New()
	_, err := rdfio.Load(g, strings.NewReader(doc), "ntriples")
	require.NoError(t, err)
	require.True(t, g.Contains(quad.IRI("http://example.org/s"), quad.IRI("http://example.org/p"), quad.String("x")))
}

func TestParseError(t *testing.T) {
	g := graph.New()
	g.Add(iri("a"), iri("b"), iri("c"))
	_, err := rdfio.Load(g, strings.NewReader("@prefix : <http://x#> .\n:a :b "), "turtle")
	require.Error(t, err)
	var perr *rdfio.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "turtle", perr.Format)
	require.Equal(t, 1, g.Size())

	_, err = rdfio.Load(g, strings.NewReader(""), "yaml")
	require.True(t, errors.Is(err, rdfio.ErrUnknownFormat))
}

func TestSerializeError(t *testing.T) {
	g := graph.New()
	g.Add(iri("a"), quad.IRI("http://example.org/123"), iri("c"))
	var buf bytes.Buffer
	_, err := rdfio.Dump(g, &buf, "xml", nil)
	var serr *rdfio.SerializeError
	require.True(t, errors.As(err, &serr))
	require.True(t, errors.Is(err, rdfio.ErrInvalidName))

	_, err = rdfio.Dump(g, &buf, "svg", nil)
	require.True(t, errors.Is(err, rdfio.ErrUnknownFormat))
}

func TestFormats(t *testing.T) {
	var names []string
	for _, f := range rdfio.Formats() {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"json-ld", "n3", "nt", "turtle", "xml"}, names)

	for ext, name := range map[string]string{
		".ttl": "turtle", ".owl": "xml", ".rdf": "xml", ".xml": "xml",
		".n3": "n3", ".nt": "nt", ".jsonld": "json-ld",
	} {
		f := rdfio.FormatByExt(ext)
		require.NotNil(t, f, ext)
		require.Equal(t, name, f.Name)
	}
	require.Equal(t, "turtle", rdfio.FormatByFileName("zoo.TTL.gz").Name)
	require.Equal(t, "xml", rdfio.FormatByName("rdfxml").Name)
	require.Equal(t, "json-ld", rdfio.FormatByMime("application/ld+json").Name)
	require.Nil(t, rdfio.FormatByName("csv"))
}

func TestExtractPrefixes(t *testing.T) {
	const doc = `@prefix owl: <http://www.w3.org/2002/07/owl#> .
@prefix : <http://example.org/zoo#> .
PREFIX ex: <http://example.org/>
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
`
	require.Equal(t, []voc.Binding{
		{Prefix: voc.DefaultPrefix, Namespace: "http://example.org/zoo#"},
		{Prefix: "ex", Namespace: "http://example.org/"},
		{Prefix: "owl", Namespace: "http://www.w3.org/2002/07/owl#"},
		{Prefix: "rdfs", Namespace: "http://www.w3.org/2000/01/rdf-schema#"},
	}, rdfio.ExtractPrefixes([]byte(doc)))
}

func TestTurtleDeclaresBoundPrefixesOnce(t *testing.T) {
	ns := voc.NewNamespaces()
	ns.Bind("", ex)
	ns.Bind("owl", owl.NS)
	ns.Bind("rdfs", rdfs.NS)
	ns.Bind("xsd", xsd.NS)

	g := testGraph()
	var buf bytes.Buffer
	_, err := rdfio.Dump(g, &buf, "turtle", ns)
	require.NoError(t, err)
	out := buf.String()

	require.Equal(t, 4, strings.Count(out, "@prefix "), out)
	require.Equal(t, 1, strings.Count(out, "@prefix rdfs:"), out)
	require.NotContains(t, out, "ns0:")
	require.Contains(t, out, "rdfs:subClassOf")
	require.Contains(t, out, ":Dog")
	require.Equal(t, []voc.Binding{
		{Prefix: voc.DefaultPrefix, Namespace: ex},
		{Prefix: "owl", Namespace: owl.NS},
		{Prefix: "rdfs", Namespace: rdfs.NS},
		{Prefix: "xsd", Namespace: xsd.NS},
	}, rdfio.ExtractPrefixes(buf.Bytes()))

	g2 := graph.New()
	_, err = rdfio.Load(g2, bytes.NewReader(buf.Bytes()), "turtle")
	require.NoError(t, err, out)
	require.Equal(t, canonical(g), canonical(g2))

	// namespaces without a binding are written as full IRIs
	buf.Reset()
	_, err = rdfio.Dump(g, &buf, "turtle", nil)
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "@prefix")
	require.Contains(t, buf.String(), "<"+rdfs.SubClassOf+">")
}

func TestJSONLDCompactsWithBindings(t *testing.T) {
	ns := voc.NewNamespaces()
	ns.Bind("", ex)
	ns.Bind("rdfs", rdfs.NS)

	g := testGraph()
	var buf bytes.Buffer
	_, err := rdfio.Dump(g, &buf, "json-ld", ns)
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"@context"`)
	require.Contains(t, buf.String(), `"rdfs:subClassOf"`)

	g2 := graph.New()
	n, err := rdfio.Load(g2, bytes.NewReader(buf.Bytes()), "json-ld")
	require.NoError(t, err, buf.String())
	require.Equal(t, g.Size(), n)
	require.Equal(t, canonical(g), canonical(g2))
}
