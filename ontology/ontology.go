// Copyright 2024 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ontology edits an OWL ontology held in an in-memory triple store.
//
// Entities are addressed by local names resolved against the base URI of the
// ontology; absolute http(s) IRIs are accepted anywhere a name is. Every query
// is computed from the live triples, so the views always reflect the current
// state of the store.
//
// An Ontology is safe for concurrent use. Multi-triple edits such as renames
// and base URI changes are applied under one exclusive lock.
package ontology

import (
	"strings"
	"sync"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/graph"
	"github.com/owlkit/owlkit/voc"
	_ "github.com/owlkit/owlkit/voc/core"
	"github.com/owlkit/owlkit/voc/owl"
	"github.com/owlkit/owlkit/voc/rdf"
)

// DefaultBaseURI is used when New is called with an empty base.
const DefaultBaseURI = "http://example.org/ontology#"

// Ontology is one editing session over a single triple store.
type Ontology struct {
	mu sync.RWMutex

	g      *graph.Store
	base   string
	iri    quad.IRI
	ns     *voc.Namespaces
	loaded []voc.Binding
}

// New creates an empty ontology with the given base URI and declares the
// ontology node.
func New(baseURI string) *Ontology {
	if baseURI == "" {
		baseURI = DefaultBaseURI
	}
	o := &Ontology{
		g:    graph.New(),
		base: baseURI,
		iri:  ontologyIRI(baseURI),
		ns:   voc.NewNamespaces(),
	}
	o.ns.Bind("", baseURI)
	o.g.Add(o.iri, quad.IRI(rdf.Type), quad.IRI(owl.Ontology))
	return o
}

func ontologyIRI(base string) quad.IRI {
	return quad.IRI(strings.TrimSuffix(strings.TrimSuffix(base, "#"), "/"))
}

// BaseURI returns the namespace local names are resolved against.
func (o *Ontology) BaseURI() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.base
}

// IRI returns the identifier of the ontology node.
func (o *Ontology) IRI() quad.IRI {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.iri
}

// Snapshot returns an independent copy of the triples.
func (o *Ontology) Snapshot() *graph.Store {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.g.Clone()
}

// Size returns the number of triples.
func (o *Ontology) Size() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.g.Size()
}

// Contains reports whether the triple is stored.
func (o *Ontology) Contains(s, p, obj quad.Value) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.g.Contains(s, p, obj)
}

func (o *Ontology) isA(v quad.Value, typ string) bool {
	return o.g.Contains(v, quad.IRI(rdf.Type), quad.IRI(typ))
}

// named returns the IRI subjects of (*, rdf:type, typ).
func (o *Ontology) named(typ string) []quad.IRI {
	var out []quad.IRI
	for _, s := range o.g.Subjects(quad.IRI(rdf.Type), quad.IRI(typ)) {
		if iri, ok := s.(quad.IRI); ok {
			out = append(out, iri)
		}
	}
	return out
}

// text returns the lexical form of a term, or "" for nil.
func text(v quad.Value) string {
	switch v := v.(type) {
	case nil:
		return ""
	case quad.IRI:
		return string(v)
	case quad.BNode:
		return string(v)
	case quad.String:
		return string(v)
	case quad.LangString:
		return string(v.Value)
	case quad.TypedString:
		return string(v.Value)
	}
	return quad.StringOf(v)
}

// localName returns the local name of an IRI and the lexical form of anything else.
func localName(v quad.Value) string {
	if iri, ok := v.(quad.IRI); ok {
		return voc.LocalName(string(iri))
	}
	return text(v)
}

// localNames maps the IRIs in vs to local names, skipping other terms.
func localNames(vs []quad.Value) []string {
	out := []string{}
	for _, v := range vs {
		if iri, ok := v.(quad.IRI); ok {
			out = append(out, voc.LocalName(string(iri)))
		}
	}
	return out
}
