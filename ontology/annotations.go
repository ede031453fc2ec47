package ontology

import (
	"sort"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/internal/mapset"
)

// Annotation is a non-structural statement about a resource.
type Annotation struct {
	Predicate         string `json:"predicate"`
	PredicateURI      string `json:"predicate_uri"`
	PredicatePrefixed string `json:"predicate_prefixed"`
	Value             string `json:"value"`
	Language          string `json:"language,omitempty"`
	Datatype          string `json:"datatype,omitempty"`
}

// AnnotationPredicate describes a predicate used for annotations.
type AnnotationPredicate struct {
	URI       string `json:"uri"`
	LocalName string `json:"local_name"`
	Prefix    string `json:"prefix"`
}

// annotationPredicate maps a shorthand such as "label" or "prefLabel" to its
// IRI. Absolute IRIs are kept and other names resolve against the base URI.
func (o *Ontology) annotationPredicate(name string) quad.IRI {
	if IsAbsolute(name) {
		return quad.IRI(name)
	}
	if p, ok := annotationPredicates[name]; ok {
		return p
	}
	return o.resolve(name)
}

// AddAnnotation adds a literal annotation to subject, with an optional
// language tag.
func (o *Ontology) AddAnnotation(subject, predicate, value, lang string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	var v quad.Value = quad.String(value)
	if lang != "" {
		v = quad.LangString{Value: quad.String(value), Lang: lang}
	}
	o.g.Add(o.resolve(subject), o.annotationPredicate(predicate), v)
}

// Annotations lists the annotations of subject sorted by predicate local name.
// Structural predicates and anonymous objects are skipped.
func (o *Ontology) Annotations(subject string) []Annotation {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := []Annotation{}
	it := o.g.Match(o.resolve(subject), nil, nil)
	for it.Next() {
		q := it.Result()
		if isStructural(q.Predicate) {
			continue
		}
		if _, ok := q.Object.(quad.BNode); ok {
			continue
		}
		p, ok := q.Predicate.(quad.IRI)
		if !ok {
			continue
		}
		a := Annotation{
			Predicate:    LocalName(p),
			PredicateURI: string(p),
			Value:        text(q.Object),
		}
		a.PredicatePrefixed = a.Predicate
		if pref, ok := o.ns.PrefixOf(string(p)); ok {
			a.PredicatePrefixed = pref + ":" + a.Predicate
		}
		switch v := q.Object.(type) {
		case quad.LangString:
			a.Language = v.Lang
		case quad.TypedString:
			a.Datatype = LocalName(v.Type)
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Predicate < out[j].Predicate })
	return out
}

// UsedAnnotationPredicates lists the distinct non-structural predicates that
// have a literal or IRI object anywhere in the ontology, sorted by local name
// ignoring case.
func (o *Ontology) UsedAnnotationPredicates() []AnnotationPredicate {
	o.mu.RLock()
	defer o.mu.RUnlock()
	seen := mapset.NewThreadUnsafeSet()
	out := []AnnotationPredicate{}
	it := o.g.Match(nil, nil, nil)
	for it.Next() {
		q := it.Result()
		p, ok := q.Predicate.(quad.IRI)
		if !ok || isStructural(p) {
			continue
		}
		if _, ok := q.Object.(quad.BNode); ok {
			continue
		}
		if !seen.Add(string(p)) {
			continue
		}
		out = append(out, AnnotationPredicate{
			URI:       string(p),
			LocalName: LocalName(p),
			Prefix:    o.prefixOf(string(p)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].LocalName) < strings.ToLower(out[j].LocalName)
	})
	return out
}

// DeleteAnnotation removes annotations of subject with the given predicate.
// With a non-empty value only literals with that lexical form are removed,
// whatever their language or datatype. It returns the number of removed triples.
func (o *Ontology) DeleteAnnotation(subject, predicate, value string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	s, p := o.resolve(subject), o.annotationPredicate(predicate)
	if value == "" {
		return o.g.Remove(s, p, nil)
	}
	n := 0
	for _, obj := range o.g.Objects(s, p) {
		switch obj.(type) {
		case quad.String, quad.LangString, quad.TypedString:
			if text(obj) == value {
				n += o.g.Remove(s, p, obj)
			}
		}
	}
	return n
}
