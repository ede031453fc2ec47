package ontology

import (
	"sort"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/clog"
	"github.com/owlkit/owlkit/graph"
	"github.com/owlkit/owlkit/voc/owl"
	"github.com/owlkit/owlkit/voc/rdf"
	"github.com/owlkit/owlkit/voc/rdfs"
)

var (
	rdfType      = quad.IRI(rdf.Type)
	rdfsLabel    = quad.IRI(rdfs.Label)
	rdfsComment  = quad.IRI(rdfs.Comment)
	subClassOf   = quad.IRI(rdfs.SubClassOf)
	owlClass     = quad.IRI(owl.Class)
	owlNamedInd  = quad.IRI(owl.NamedIndividual)
	owlObjProp   = quad.IRI(owl.ObjectProperty)
	owlDataProp  = quad.IRI(owl.DatatypeProperty)
	owlRestrict  = quad.IRI(owl.Restriction)
	owlOnProp    = quad.IRI(owl.OnProperty)
	owlOnClass   = quad.IRI(owl.OnClass)
	owlInverseOf = quad.IRI(owl.InverseOf)
)

// Str returns a pointer to s, for the optional fields of update requests.
func Str(s string) *string { return &s }

// Class is the flattened view of a named class.
type Class struct {
	URI      string   `json:"uri"`
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Comment  string   `json:"comment"`
	Parents  []string `json:"parents"`
	Children []string `json:"children"`
}

// ClassOptions holds the optional parts of a new class.
type ClassOptions struct {
	Parent  string
	Label   string
	Comment string
}

// ClassUpdate changes a class. A nil Label or Comment is left as is; a
// pointer to "" clears the field.
type ClassUpdate struct {
	Label        *string
	Comment      *string
	AddParent    string
	RemoveParent string
}

// AddClass declares a class. It does not check for an existing class of the
// same name; see Exists.
func (o *Ontology) AddClass(name string, opts ClassOptions) quad.IRI {
	o.mu.Lock()
	defer o.mu.Unlock()
	c := o.resolve(name)
	o.g.Add(c, rdfType, owlClass)
	if opts.Parent != "" {
		o.g.Add(c, subClassOf, o.resolve(opts.Parent))
	}
	o.addText(c, rdfsLabel, opts.Label)
	o.addText(c, rdfsComment, opts.Comment)
	return c
}

func (o *Ontology) addText(s, p quad.Value, v string) {
	if v != "" {
		o.g.Add(s, p, quad.String(v))
	}
}

// replaceText implements the update sentinel: nil leaves (s, p) alone, any
// other value replaces it and "" only clears it.
func (o *Ontology) replaceText(s, p quad.Value, v *string) {
	if v == nil {
		return
	}
	o.g.Remove(s, p, nil)
	o.addText(s, p, *v)
}

// UpdateClass applies the non-nil fields of u.
func (o *Ontology) UpdateClass(name string, u ClassUpdate) {
	o.mu.Lock()
	defer o.mu.Unlock()
	c := o.resolve(name)
	o.replaceText(c, rdfsLabel, u.Label)
	o.replaceText(c, rdfsComment, u.Comment)
	if u.RemoveParent != "" {
		o.g.Remove(c, subClassOf, o.resolve(u.RemoveParent))
	}
	if u.AddParent != "" {
		o.g.Add(c, subClassOf, o.resolve(u.AddParent))
	}
}

// RenameClass replaces the class IRI everywhere. It returns false without
// changes when a class named newName already exists.
func (o *Ontology) RenameClass(oldName, newName string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rename(oldName, newName, false, owl.Class)
}

// rename substitutes the IRI of oldName in subject and object positions, and
// in predicate position too when asPredicate is set. A same-kind entity at the
// new IRI, of any of the given types, blocks the rename.
func (o *Ontology) rename(oldName, newName string, asPredicate bool, types ...string) bool {
	if oldName == newName {
		return true
	}
	from, to := o.resolve(oldName), o.resolve(newName)
	if from == to {
		return true
	}
	for _, typ := range types {
		if o.isA(to, typ) {
			if clog.V(2) {
				clog.Infof("ontology: rename %s: %s already exists", from, to)
			}
			return false
		}
	}
	sub := func(v quad.Value) quad.Value {
		if iri, ok := v.(quad.IRI); ok && iri == from {
			return to
		}
		return v
	}
	tx := graph.NewTransaction()
	seen := make(map[quad.Quad]struct{})
	collect := func(qs []quad.Quad) {
		for _, q := range qs {
			if _, ok := seen[q]; ok {
				continue
			}
			seen[q] = struct{}{}
			nq := quad.Quad{Subject: sub(q.Subject), Predicate: q.Predicate, Object: sub(q.Object)}
			if asPredicate {
				nq.Predicate = sub(q.Predicate)
			}
			tx.RemoveQuad(q)
			tx.AddQuad(nq)
		}
	}
	collect(o.g.Quads(from, nil, nil))
	collect(o.g.Quads(nil, nil, from))
	if asPredicate {
		collect(o.g.Quads(nil, from, nil))
	}
	n, err := o.g.ApplyTransaction(tx)
	if err != nil {
		clog.Errorf("ontology: rename %s: %v", from, err)
	}
	if clog.V(2) {
		clog.Infof("ontology: renamed %s to %s (%d triples, size change %d)", from, to, len(seen), n)
	}
	return true
}

// DeleteClass removes every triple with the class as subject or object and
// returns the number of removed triples.
func (o *Ontology) DeleteClass(name string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.deleteEntity(o.resolve(name), false)
}

func (o *Ontology) deleteEntity(v quad.IRI, asPredicate bool) int {
	n := o.g.Remove(v, nil, nil)
	n += o.g.Remove(nil, nil, v)
	if asPredicate {
		n += o.g.Remove(nil, v, nil)
	}
	if clog.V(2) {
		clog.Infof("ontology: deleted %s (%d triples)", v, n)
	}
	return n
}

// Classes lists the named classes sorted by local name.
func (o *Ontology) Classes() []Class {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := []Class{}
	for _, c := range o.named(owl.Class) {
		out = append(out, Class{
			URI:      string(c),
			Name:     LocalName(c),
			Label:    text(o.g.Value(c, rdfsLabel)),
			Comment:  text(o.g.Value(c, rdfsComment)),
			Parents:  localNames(o.g.Objects(c, subClassOf)),
			Children: localNames(o.g.Subjects(subClassOf, c)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ClassHierarchy maps every named class to the local names of its named
// subclasses.
func (o *Ontology) ClassHierarchy() map[string][]string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	h := make(map[string][]string)
	for _, c := range o.named(owl.Class) {
		h[LocalName(c)] = localNames(o.g.Subjects(subClassOf, c))
	}
	return h
}

// Exists reports whether a named entity of the given kind is declared.
func (o *Ontology) Exists(kind Kind, name string) (bool, error) {
	typ, err := kind.typ()
	if err != nil {
		return false, err
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.isA(o.resolve(name), typ), nil
}
