package ontology

import (
	"sort"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/voc/owl"
	"github.com/owlkit/owlkit/voc/rdfs"
)

var (
	rdfsDomain = quad.IRI(rdfs.Domain)
	rdfsRange  = quad.IRI(rdfs.Range)
)

// ObjectProperty is the flattened view of an object property.
type ObjectProperty struct {
	URI             string   `json:"uri"`
	Name            string   `json:"name"`
	Label           string   `json:"label"`
	Comment         string   `json:"comment"`
	Domain          string   `json:"domain"`
	Range           string   `json:"range"`
	Characteristics []string `json:"characteristics"`
	InverseOf       string   `json:"inverse_of,omitempty"`
}

// DataProperty is the flattened view of a datatype property.
type DataProperty struct {
	URI        string `json:"uri"`
	Name       string `json:"name"`
	Label      string `json:"label"`
	Comment    string `json:"comment"`
	Domain     string `json:"domain"`
	Range      string `json:"range"`
	Functional bool   `json:"functional"`
}

// ObjectPropertyOptions holds the optional parts of a new object property.
type ObjectPropertyOptions struct {
	Domain          string
	Range           string
	Label           string
	Comment         string
	Characteristics []Characteristic
	InverseOf       string
}

// DataPropertyOptions holds the optional parts of a new datatype property.
// An empty Range means xsd:string; unknown datatype names also map to it.
type DataPropertyOptions struct {
	Domain     string
	Range      Datatype
	Label      string
	Comment    string
	Functional bool
}

// PropertyUpdate changes a property. Nil fields are left as is and pointers
// to "" clear them. A Range that names a known datatype is stored as that
// datatype, anything else is resolved as a class.
type PropertyUpdate struct {
	Label   *string
	Comment *string
	Domain  *string
	Range   *string
}

// AddObjectProperty declares an object property.
func (o *Ontology) AddObjectProperty(name string, opts ObjectPropertyOptions) quad.IRI {
	o.mu.Lock()
	defer o.mu.Unlock()
	p := o.resolve(name)
	o.g.Add(p, rdfType, owlObjProp)
	if opts.Domain != "" {
		o.g.Add(p, rdfsDomain, o.resolve(opts.Domain))
	}
	if opts.Range != "" {
		o.g.Add(p, rdfsRange, o.resolve(opts.Range))
	}
	o.addText(p, rdfsLabel, opts.Label)
	o.addText(p, rdfsComment, opts.Comment)
	for _, c := range opts.Characteristics {
		if typ, ok := c.typ(); ok {
			o.g.Add(p, rdfType, typ)
		}
	}
	if opts.InverseOf != "" {
		o.g.Add(p, owlInverseOf, o.resolve(opts.InverseOf))
	}
	return p
}

// AddDataProperty declares a datatype property.
func (o *Ontology) AddDataProperty(name string, opts DataPropertyOptions) quad.IRI {
	o.mu.Lock()
	defer o.mu.Unlock()
	p := o.resolve(name)
	o.g.Add(p, rdfType, owlDataProp)
	if opts.Domain != "" {
		o.g.Add(p, rdfsDomain, o.resolve(opts.Domain))
	}
	o.g.Add(p, rdfsRange, opts.Range.IRI())
	o.addText(p, rdfsLabel, opts.Label)
	o.addText(p, rdfsComment, opts.Comment)
	if opts.Functional {
		o.g.Add(p, rdfType, quad.IRI(owl.FunctionalProperty))
	}
	return p
}

// UpdateProperty applies the non-nil fields of u to an object or data property.
func (o *Ontology) UpdateProperty(name string, u PropertyUpdate) {
	o.mu.Lock()
	defer o.mu.Unlock()
	p := o.resolve(name)
	o.replaceText(p, rdfsLabel, u.Label)
	o.replaceText(p, rdfsComment, u.Comment)
	if u.Domain != nil {
		o.g.Remove(p, rdfsDomain, nil)
		if *u.Domain != "" {
			o.g.Add(p, rdfsDomain, o.resolve(*u.Domain))
		}
	}
	if u.Range != nil {
		o.g.Remove(p, rdfsRange, nil)
		if r := *u.Range; r != "" {
			if dt, ok := lookupDatatype(r); ok {
				o.g.Add(p, rdfsRange, dt)
			} else {
				o.g.Add(p, rdfsRange, o.resolve(r))
			}
		}
	}
}

// RenameProperty replaces the property IRI everywhere, including its use as
// a predicate. It returns false without changes when an object or data
// property named newName already exists.
func (o *Ontology) RenameProperty(oldName, newName string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rename(oldName, newName, true, owl.ObjectProperty, owl.DatatypeProperty)
}

// DeleteProperty removes every triple mentioning the property in any position.
func (o *Ontology) DeleteProperty(name string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.deleteEntity(o.resolve(name), true)
}

// ObjectProperties lists the named object properties sorted by local name.
func (o *Ontology) ObjectProperties() []ObjectProperty {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := []ObjectProperty{}
	for _, p := range o.named(owl.ObjectProperty) {
		v := ObjectProperty{
			URI:             string(p),
			Name:            LocalName(p),
			Label:           text(o.g.Value(p, rdfsLabel)),
			Comment:         text(o.g.Value(p, rdfsComment)),
			Domain:          o.namedValue(p, rdfsDomain),
			Range:           o.namedValue(p, rdfsRange),
			Characteristics: []string{},
		}
		for _, c := range characteristics {
			if o.g.Contains(p, rdfType, c.typ) {
				v.Characteristics = append(v.Characteristics, string(c.name))
			}
		}
		if inv := o.g.Value(p, owlInverseOf); inv != nil {
			v.InverseOf = localName(inv)
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// namedValue returns the local name of the first object of (s, p) if it is an IRI.
func (o *Ontology) namedValue(s, p quad.Value) string {
	if iri, ok := o.g.Value(s, p).(quad.IRI); ok {
		return LocalName(iri)
	}
	return ""
}

// DataProperties lists the named datatype properties sorted by local name.
func (o *Ontology) DataProperties() []DataProperty {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := []DataProperty{}
	for _, p := range o.named(owl.DatatypeProperty) {
		out = append(out, DataProperty{
			URI:        string(p),
			Name:       LocalName(p),
			Label:      text(o.g.Value(p, rdfsLabel)),
			Comment:    text(o.g.Value(p, rdfsComment)),
			Domain:     o.namedValue(p, rdfsDomain),
			Range:      localName(o.g.Value(p, rdfsRange)),
			Functional: o.isA(p, owl.FunctionalProperty),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
