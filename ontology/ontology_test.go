package ontology_test

import (
	"strings"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"

	"github.com/owlkit/owlkit/ontology"
	"github.com/owlkit/owlkit/voc/owl"
	"github.com/owlkit/owlkit/voc/rdf"
	"github.com/owlkit/owlkit/voc/rdfs"
	"github.com/owlkit/owlkit/voc/xsd"
)

const base = "http://example.org/ontology#"

func iri(name string) quad.IRI { return quad.IRI(base + name) }

// triples returns the stored triples in N-Quads form.
func triples(o *ontology.Ontology) []string {
	var out []string
	it := o.Snapshot().Match(nil, nil, nil)
	for it.Next() {
		out = append(out, it.Result().NQuad())
	}
	return out
}

func mentions(o *ontology.Ontology, v quad.IRI) []string {
	var out []string
	it := o.Snapshot().Match(nil, nil, nil)
	for it.Next() {
		q := it.Result()
		if q.Subject == quad.Value(v) || q.Predicate == quad.Value(v) || q.Object == quad.Value(v) {
			out = append(out, q.NQuad())
		}
	}
	return out
}

func family() *ontology.Ontology {
	o := ontology.New("")
	o.AddClass("Person", ontology.ClassOptions{Label: "Person"})
	o.AddClass("Parent", ontology.ClassOptions{Parent: "Person", Label: "Parent"})
	o.AddObjectProperty("hasParent", ontology.ObjectPropertyOptions{Domain: "Person", Range: "Person"})
	o.AddObjectProperty("hasBrother", ontology.ObjectPropertyOptions{Domain: "Person", Range: "Person"})
	o.AddObjectProperty("hasUncle", ontology.ObjectPropertyOptions{Domain: "Person", Range: "Person"})
	o.AddDataProperty("hasAge", ontology.DataPropertyOptions{Domain: "Person", Range: ontology.Integer, Functional: true})
	o.AddIndividual("alice", "Person", ontology.IndividualOptions{Label: "Alice"})
	o.AddIndividual("bob", "Parent", ontology.IndividualOptions{})
	o.AddIndividualProperty("alice", "hasParent", "bob", true)
	o.AddIndividualValue("alice", "hasAge", "42", ontology.Integer)
	return o
}

func TestNew(t *testing.T) {
	o := ontology.New("")
	require.Equal(t, base, o.BaseURI())
	require.Equal(t, quad.IRI("http://example.org/ontology"), o.IRI())
	require.True(t, o.Contains(o.IRI(), quad.IRI(rdf.Type), quad.IRI(owl.Ontology)))
	require.Equal(t, 1, o.Size())
}

func TestResolve(t *testing.T) {
	o := ontology.New("http://ex.org/onto/")
	require.Equal(t, quad.IRI("http://ex.org/onto/Dog"), o.Resolve("Dog"))
	require.Equal(t, quad.IRI("https://other.org/x#Cat"), o.Resolve("https://other.org/x#Cat"))
	require.Equal(t, "Cat", ontology.LocalName("https://other.org/x#Cat"))
	require.Equal(t, "Dog", ontology.LocalName("http://ex.org/onto/Dog"))
}

func TestClassHierarchy(t *testing.T) {
	o := ontology.New("")
	o.AddClass("Animal", ontology.ClassOptions{})
	o.AddClass("Dog", ontology.ClassOptions{Parent: "Animal"})

	classes := o.Classes()
	require.Len(t, classes, 2)
	require.Equal(t, "Animal", classes[0].Name)
	require.Equal(t, []string{"Dog"}, classes[0].Children)
	require.Equal(t, []string{}, classes[0].Parents)
	require.Equal(t, "Dog", classes[1].Name)
	require.Equal(t, []string{"Animal"}, classes[1].Parents)
	require.Equal(t, string(iri("Dog")), classes[1].URI)

	require.Equal(t, map[string][]string{"Animal": {"Dog"}, "Dog": {}}, o.ClassHierarchy())
}

func TestClassesSortedByLocalName(t *testing.T) {
	o := ontology.New("")
	o.AddClass("b", ontology.ClassOptions{Label: "A"})
	o.AddClass("Z", ontology.ClassOptions{Label: "B"})
	o.AddClass("a", ontology.ClassOptions{})
	var got []string
	for _, c := range o.Classes() {
		got = append(got, c.Name)
	}
	require.Equal(t, []string{"Z", "a", "b"}, got)
}

func TestUpdateSentinels(t *testing.T) {
	o := ontology.New("")
	o.AddClass("Dog", ontology.ClassOptions{Label: "Dog", Comment: "A dog"})

	o.UpdateClass("Dog", ontology.ClassUpdate{Label: ontology.Str("Hound")})
	c := o.Classes()[0]
	require.Equal(t, "Hound", c.Label)
	require.Equal(t, "A dog", c.Comment)

	o.UpdateClass("Dog", ontology.ClassUpdate{Comment: ontology.Str("")})
	c = o.Classes()[0]
	require.Equal(t, "Hound", c.Label)
	require.Equal(t, "", c.Comment)

	o.UpdateClass("Dog", ontology.ClassUpdate{AddParent: "Animal"})
	require.Equal(t, []string{"Animal"}, o.Classes()[0].Parents)
	o.UpdateClass("Dog", ontology.ClassUpdate{RemoveParent: "Animal"})
	require.Equal(t, []string{}, o.Classes()[0].Parents)
}

func TestProperties(t *testing.T) {
	o := family()
	o.AddObjectProperty("hasSibling", ontology.ObjectPropertyOptions{
		Characteristics: []ontology.Characteristic{ontology.Symmetric, ontology.Transitive},
		InverseOf:       "hasSibling",
	})

	props := o.ObjectProperties()
	require.Len(t, props, 4)
	sib := props[2]
	require.Equal(t, "hasSibling", sib.Name)
	require.Equal(t, []string{"Transitive", "Symmetric"}, sib.Characteristics)
	require.Equal(t, "hasSibling", sib.InverseOf)
	require.Equal(t, "", sib.Domain)
	require.Equal(t, "Person", props[0].Domain)

	data := o.DataProperties()
	require.Len(t, data, 1)
	require.Equal(t, "integer", data[0].Range)
	require.True(t, data[0].Functional)

	o.UpdateProperty("hasAge", ontology.PropertyUpdate{Range: ontology.Str("decimal"), Domain: ontology.Str("")})
	data = o.DataProperties()
	require.Equal(t, "decimal", data[0].Range)
	require.Equal(t, "", data[0].Domain)

	o.UpdateProperty("hasParent", ontology.PropertyUpdate{Range: ontology.Str("Parent")})
	require.Equal(t, "Parent", o.ObjectProperties()[1].Range)
}

func TestDataPropertyDefaultRange(t *testing.T) {
	o := ontology.New("")
	o.AddDataProperty("name", ontology.DataPropertyOptions{})
	o.AddDataProperty("weird", ontology.DataPropertyOptions{Range: "notAType"})
	data := o.DataProperties()
	require.Equal(t, "string", data[0].Range)
	require.Equal(t, "string", data[1].Range)
}

func TestIndividuals(t *testing.T) {
	o := family()
	inds := o.Individuals()
	require.Len(t, inds, 2)
	alice := inds[0]
	require.Equal(t, "alice", alice.Name)
	require.Equal(t, "Alice", alice.Label)
	require.Equal(t, []string{"Person"}, alice.Classes)
	require.Equal(t, []ontology.Assertion{
		{Property: "hasParent", Value: "bob"},
		{Property: "hasAge", Value: "42"},
	}, alice.Properties)

	o.UpdateIndividual("bob", ontology.IndividualUpdate{AddClass: "Person", RemoveClass: "Parent"})
	require.Equal(t, []string{"Person"}, o.Individuals()[1].Classes)
}

func TestRenameClass(t *testing.T) {
	o := family()
	o.AddClass("Human", ontology.ClassOptions{})
	require.False(t, o.RenameClass("Person", "Human"))
	require.True(t, o.RenameClass("Person", "Person"))

	before := triples(o)
	require.True(t, o.RenameClass("Person", "Being"))
	var want []string
	for _, s := range before {
		want = append(want, strings.ReplaceAll(s, "<"+string(iri("Person"))+">", "<"+string(iri("Being"))+">"))
	}
	require.ElementsMatch(t, want, triples(o))
	require.Empty(t, mentions(o, iri("Person")))
}

func TestRenameSelfReference(t *testing.T) {
	o := ontology.New("")
	o.AddClass("Loop", ontology.ClassOptions{Parent: "Loop"})
	require.True(t, o.RenameClass("Loop", "Cycle"))
	require.True(t, o.Contains(iri("Cycle"), quad.IRI(rdfs.SubClassOf), iri("Cycle")))
	require.Empty(t, mentions(o, iri("Loop")))
}

func TestRenameProperty(t *testing.T) {
	o := family()
	require.False(t, o.RenameProperty("hasParent", "hasAge"))

	before := triples(o)
	require.True(t, o.RenameProperty("hasParent", "hasMother"))
	var want []string
	for _, s := range before {
		want = append(want, strings.ReplaceAll(s, "<"+string(iri("hasParent"))+">", "<"+string(iri("hasMother"))+">"))
	}
	require.ElementsMatch(t, want, triples(o))
	require.True(t, o.Contains(iri("alice"), iri("hasMother"), iri("bob")))
	require.Empty(t, mentions(o, iri("hasParent")))
}

func TestRenameIndividual(t *testing.T) {
	o := family()
	require.False(t, o.RenameIndividual("alice", "bob"))
	require.True(t, o.RenameIndividual("bob", "carol"))
	require.True(t, o.Contains(iri("alice"), iri("hasParent"), iri("carol")))
	require.Empty(t, mentions(o, iri("bob")))
}

func TestDelete(t *testing.T) {
	o := family()
	require.Positive(t, o.DeleteClass("Parent"))
	require.Empty(t, mentions(o, iri("Parent")))
	for _, c := range o.Classes() {
		require.NotEqual(t, "Parent", c.Name)
	}

	require.Positive(t, o.DeleteProperty("hasParent"))
	require.Empty(t, mentions(o, iri("hasParent")))
	require.Len(t, o.ObjectProperties(), 2)

	require.Positive(t, o.DeleteIndividual("alice"))
	require.Empty(t, mentions(o, iri("alice")))
	require.Len(t, o.Individuals(), 1)

	require.Zero(t, o.DeleteClass("Missing"))
}

func TestExists(t *testing.T) {
	o := family()
	ok, err := o.Exists(ontology.KindClass, "Person")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = o.Exists(ontology.KindObjectProperty, "hasAge")
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = o.Exists(ontology.KindDataProperty, "hasAge")
	require.NoError(t, err)
	require.True(t, ok)
	_, err = o.Exists("thing", "x")
	require.ErrorIs(t, err, ontology.ErrUnknownKind)
}

func TestSetBaseURI(t *testing.T) {
	o := family()
	o.AddClass("http://other.org/x#Thing", ontology.ClassOptions{})
	o.SetMetadata(ontology.Metadata{Label: "Family"})
	size := o.Size()

	o.SetBaseURI("http://new.org/fam")
	require.Equal(t, "http://new.org/fam#", o.BaseURI())
	require.Equal(t, quad.IRI("http://new.org/fam"), o.IRI())
	require.Equal(t, size, o.Size())
	require.True(t, o.Contains(quad.IRI("http://new.org/fam#alice"), quad.IRI("http://new.org/fam#hasParent"), quad.IRI("http://new.org/fam#bob")))
	require.True(t, o.Contains(quad.IRI("http://new.org/fam"), quad.IRI(rdf.Type), quad.IRI(owl.Ontology)))
	require.True(t, o.Contains(quad.IRI("http://other.org/x#Thing"), quad.IRI(rdf.Type), quad.IRI(owl.Class)))
	require.Equal(t, "Family", o.Metadata().Label)
	for _, s := range triples(o) {
		require.NotContains(t, s, base)
		require.NotContains(t, s, "<http://example.org/ontology>")
	}
	require.Equal(t, quad.IRI("http://new.org/fam#Dog"), o.Resolve("Dog"))

	o.SetBaseURI("")
	require.Equal(t, "http://new.org/fam#", o.BaseURI())

	o.SetBaseURI("http://slash.org/onto/")
	require.Equal(t, "http://slash.org/onto/", o.BaseURI())
	require.Equal(t, quad.IRI("http://slash.org/onto"), o.IRI())
	require.True(t, o.Contains(quad.IRI("http://slash.org/onto/alice"), quad.IRI(rdf.Type), quad.IRI(owl.NamedIndividual)))
}

func TestSetBaseURIRewritesPredicates(t *testing.T) {
	o := family()
	o.SetBaseURI("http://new.org/fam#")
	for _, s := range triples(o) {
		require.NotContains(t, s, base+"hasAge")
	}
	age := quad.IRI("http://new.org/fam#hasAge")
	require.True(t, o.Contains(quad.IRI("http://new.org/fam#alice"), age, quad.TypedString{Value: "42", Type: xsd.Integer}))
	require.Len(t, mentions(o, age), 5)

	// the property and its assertions move together
	require.NotZero(t, o.DeleteProperty("hasAge"))
	for _, s := range triples(o) {
		require.NotContains(t, s, "hasAge")
	}
}

func TestStatistics(t *testing.T) {
	o := family()
	o.SetMetadata(ontology.Metadata{Label: "Family", Creator: "me"})
	_, err := o.AddRestriction("Person", "hasAge", ontology.ExactCardinality, "1", "")
	require.NoError(t, err)

	st := o.Statistics()
	require.Equal(t, 2, st.Classes)
	require.Equal(t, 3, st.ObjectProperties)
	require.Equal(t, 1, st.DataProperties)
	require.Equal(t, 2, st.Individuals)
	require.Equal(t, 1, st.Restrictions)
	require.Equal(t, o.Size(), st.TotalTriples)
	require.Equal(t, st.TotalTriples-3, st.ContentTriples)
}
