package ontology

import (
	"sort"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/voc/owl"
)

// Individual is the flattened view of a named individual.
type Individual struct {
	URI        string      `json:"uri"`
	Name       string      `json:"name"`
	Label      string      `json:"label"`
	Comment    string      `json:"comment"`
	Classes    []string    `json:"classes"`
	Properties []Assertion `json:"properties"`
}

// Assertion is a property value of an individual. Value is a local name for
// resources and the lexical form for literals.
type Assertion struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// IndividualOptions holds the optional parts of a new individual.
type IndividualOptions struct {
	Label   string
	Comment string
}

// IndividualUpdate changes an individual. Nil fields are left as is and
// pointers to "" clear them.
type IndividualUpdate struct {
	Label       *string
	Comment     *string
	AddClass    string
	RemoveClass string
}

// AddIndividual declares a named individual of the given class.
func (o *Ontology) AddIndividual(name, class string, opts IndividualOptions) quad.IRI {
	o.mu.Lock()
	defer o.mu.Unlock()
	ind := o.resolve(name)
	o.g.Add(ind, rdfType, owlNamedInd)
	if class != "" {
		o.g.Add(ind, rdfType, o.resolve(class))
	}
	o.addText(ind, rdfsLabel, opts.Label)
	o.addText(ind, rdfsComment, opts.Comment)
	return ind
}

// AddIndividualProperty asserts a property value. Object values are resolved
// as names, data values are stored as plain literals.
func (o *Ontology) AddIndividualProperty(individual, property, value string, isObject bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	var v quad.Value = quad.String(value)
	if isObject {
		v = o.resolve(value)
	}
	o.g.Add(o.resolve(individual), o.resolve(property), v)
}

// AddIndividualValue asserts a data value with an explicit datatype.
// String values are stored as plain literals.
func (o *Ontology) AddIndividualValue(individual, property, value string, dt Datatype) {
	o.mu.Lock()
	defer o.mu.Unlock()
	var v quad.Value = quad.String(value)
	if iri := dt.IRI(); iri != String.IRI() {
		v = quad.TypedString{Value: quad.String(value), Type: iri}
	}
	o.g.Add(o.resolve(individual), o.resolve(property), v)
}

// UpdateIndividual applies the non-nil fields of u.
func (o *Ontology) UpdateIndividual(name string, u IndividualUpdate) {
	o.mu.Lock()
	defer o.mu.Unlock()
	ind := o.resolve(name)
	o.replaceText(ind, rdfsLabel, u.Label)
	o.replaceText(ind, rdfsComment, u.Comment)
	if u.AddClass != "" {
		o.g.Add(ind, rdfType, o.resolve(u.AddClass))
	}
	if u.RemoveClass != "" {
		o.g.Remove(ind, rdfType, o.resolve(u.RemoveClass))
	}
}

// RenameIndividual replaces the individual IRI everywhere. It returns false
// without changes when an individual named newName already exists.
func (o *Ontology) RenameIndividual(oldName, newName string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rename(oldName, newName, false, owl.NamedIndividual)
}

// DeleteIndividual removes every triple with the individual as subject or object.
func (o *Ontology) DeleteIndividual(name string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.deleteEntity(o.resolve(name), false)
}

// Individuals lists the named individuals sorted by local name.
func (o *Ontology) Individuals() []Individual {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := []Individual{}
	for _, ind := range o.named(owl.NamedIndividual) {
		v := Individual{
			URI:        string(ind),
			Name:       LocalName(ind),
			Label:      text(o.g.Value(ind, rdfsLabel)),
			Comment:    text(o.g.Value(ind, rdfsComment)),
			Classes:    []string{},
			Properties: []Assertion{},
		}
		for _, c := range o.g.Objects(ind, rdfType) {
			if iri, ok := c.(quad.IRI); ok && iri != owlNamedInd {
				v.Classes = append(v.Classes, LocalName(iri))
			}
		}
		it := o.g.Match(ind, nil, nil)
		for it.Next() {
			q := it.Result()
			switch q.Predicate {
			case rdfType, rdfsLabel, rdfsComment:
				continue
			}
			v.Properties = append(v.Properties, Assertion{
				Property: localName(q.Predicate),
				Value:    localName(q.Object),
			})
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
