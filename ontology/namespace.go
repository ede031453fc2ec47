package ontology

import (
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/clog"
	"github.com/owlkit/owlkit/graph"
	"github.com/owlkit/owlkit/voc"
	"github.com/owlkit/owlkit/voc/owl"
)

// IsAbsolute reports whether name is used as an IRI as is.
func IsAbsolute(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") ||
		strings.HasPrefix(name, "urn:")
}

// Resolve returns the IRI for a local name, or name itself when it is absolute.
func (o *Ontology) Resolve(name string) quad.IRI {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.resolve(name)
}

func (o *Ontology) resolve(name string) quad.IRI {
	if IsAbsolute(name) {
		return quad.IRI(name)
	}
	return quad.IRI(o.base + name)
}

// filterName is the local name listing filters compare against. Empty means
// no filter.
func (o *Ontology) filterName(class string) string {
	if class == "" {
		return ""
	}
	return LocalName(o.resolve(class))
}

// LocalName returns the part of iri after the last '#' or '/'.
func LocalName(iri quad.IRI) string {
	return voc.LocalName(string(iri))
}

// SetBaseURI moves every IRI under the current base to the new one, keeping
// local names, and relocates the ontology node. A base that ends in neither
// '#' nor '/' gets a '#' appended. An empty base is ignored.
func (o *Ontology) SetBaseURI(base string) {
	if base == "" {
		return
	}
	if !strings.HasSuffix(base, "#") && !strings.HasSuffix(base, "/") {
		base += "#"
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.setBaseURI(base)
}

func (o *Ontology) setBaseURI(base string) {
	oldBase, oldIRI := o.base, o.iri
	newIRI := ontologyIRI(base)
	rewrite := func(v quad.Value) quad.Value {
		iri, ok := v.(quad.IRI)
		if !ok {
			return v
		}
		if iri == oldIRI {
			return newIRI
		}
		if oldBase != base && strings.HasPrefix(string(iri), oldBase) {
			return quad.IRI(base + string(iri)[len(oldBase):])
		}
		return v
	}
	tx := graph.NewTransaction()
	it := o.g.Match(nil, nil, nil)
	for it.Next() {
		q := it.Result()
		s, p, obj := rewrite(q.Subject), rewrite(q.Predicate), rewrite(q.Object)
		if s == q.Subject && p == q.Predicate && obj == q.Object {
			continue
		}
		tx.RemoveQuad(q)
		tx.AddTriple(s, p, obj)
	}
	n, err := o.g.ApplyTransaction(tx)
	if err != nil {
		clog.Errorf("ontology: rebase to %s: %v", base, err)
	}
	o.base, o.iri = base, newIRI
	o.ns.Bind("", base)
	for i, b := range o.loaded {
		if b.Namespace == oldBase {
			o.loaded[i].Namespace = base
		}
	}
	if clog.V(1) {
		clog.Infof("ontology: base %s -> %s, %d deltas, size change %d", oldBase, base, tx.Len(), n)
	}
}

// deriveNamespace points the base URI at the ontology node of freshly loaded
// content. The separator is taken from the node itself or, failing that, from
// the first named class or object property under it.
func (o *Ontology) deriveNamespace() {
	var ont quad.IRI
	for _, s := range o.named(owl.Ontology) {
		ont = s
		break
	}
	if ont == "" {
		return
	}
	uri := string(ont)
	o.iri = ont
	switch {
	case strings.HasSuffix(uri, "#"), strings.HasSuffix(uri, "/"):
		o.base = uri
	default:
		sep := "#"
		var sample quad.IRI
		if cls := o.named(owl.Class); len(cls) > 0 {
			sample = cls[0]
		} else if props := o.named(owl.ObjectProperty); len(props) > 0 {
			sample = props[0]
		}
		if strings.HasPrefix(string(sample), uri+"/") {
			sep = "/"
		}
		o.base = uri + sep
	}
	o.ns.Bind("", o.base)
	if clog.V(1) {
		clog.Infof("ontology: derived base %s from %s", o.base, ont)
	}
}

// Prefixes returns the prefix declarations of the last loaded document, or the
// default namespace alone when it declared none.
func (o *Ontology) Prefixes() []voc.Binding {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if len(o.loaded) > 0 {
		return append([]voc.Binding(nil), o.loaded...)
	}
	return []voc.Binding{{Prefix: voc.DefaultPrefix, Namespace: o.base}}
}

// BindPrefix adds a prefix used when writing the ontology.
func (o *Ontology) BindPrefix(prefix, ns string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if prefix == voc.DefaultPrefix {
		prefix = ""
	}
	o.ns.Bind(prefix, ns)
}

// Namespaces returns a copy of the prefix bindings used for output.
func (o *Ontology) Namespaces() *voc.Namespaces {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.ns.Clone()
}

func (o *Ontology) prefixOf(iri string) string {
	p, ok := o.ns.PrefixOf(iri)
	if !ok {
		return ""
	}
	if p == "" {
		return voc.DefaultPrefix
	}
	return p
}
