package voc

import (
	"sort"
	"strings"
)

// DefaultPrefix is the display name of the empty prefix.
const DefaultPrefix = "(default)"

// Binding is a single prefix to namespace association.
type Binding struct {
	Prefix    string `json:"prefix"`
	Namespace string `json:"namespace"`
}

// Namespaces holds the prefix bindings of one document. Unlike the global
// registry it is owned by a single ontology and prefixes carry no colon.
// An empty prefix denotes the default namespace.
type Namespaces struct {
	byPrefix map[string]string
}

// NewNamespaces returns bindings seeded with every registered vocabulary.
func NewNamespaces() *Namespaces {
	n := &Namespaces{byPrefix: make(map[string]string)}
	for _, p := range List() {
		n.Bind(strings.TrimSuffix(p[0], ":"), p[1])
	}
	return n
}

// Bind associates prefix with ns, replacing an existing binding.
func (n *Namespaces) Bind(prefix, ns string) {
	if n.byPrefix == nil {
		n.byPrefix = make(map[string]string)
	}
	n.byPrefix[prefix] = ns
}

// Unbind removes a prefix.
func (n *Namespaces) Unbind(prefix string) {
	delete(n.byPrefix, prefix)
}

// Lookup returns the namespace bound to prefix.
func (n *Namespaces) Lookup(prefix string) (string, bool) {
	ns, ok := n.byPrefix[prefix]
	return ns, ok
}

// PrefixOf returns the prefix whose namespace is the longest match for iri.
func (n *Namespaces) PrefixOf(iri string) (string, bool) {
	best, bestNS, found := "", "", false
	for pref, ns := range n.byPrefix {
		if ns == "" || !strings.HasPrefix(iri, ns) {
			continue
		}
		if !found || len(ns) > len(bestNS) || (len(ns) == len(bestNS) && pref < best) {
			best, bestNS, found = pref, ns, true
		}
	}
	return best, found
}

// Shorten writes iri as a prefixed name when a binding covers it.
func (n *Namespaces) Shorten(iri string) string {
	pref, ok := n.PrefixOf(iri)
	if !ok {
		return iri
	}
	return pref + ":" + iri[len(n.byPrefix[pref]):]
}

// Bindings lists all bindings sorted by prefix, the default prefix first.
func (n *Namespaces) Bindings() []Binding {
	out := make([]Binding, 0, len(n.byPrefix))
	for pref, ns := range n.byPrefix {
		out = append(out, Binding{Prefix: pref, Namespace: ns})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}

// Len returns the number of bindings.
func (n *Namespaces) Len() int { return len(n.byPrefix) }

// Clone returns an independent copy.
func (n *Namespaces) Clone() *Namespaces {
	c := &Namespaces{byPrefix: make(map[string]string, len(n.byPrefix))}
	for k, v := range n.byPrefix {
		c.byPrefix[k] = v
	}
	return c
}
