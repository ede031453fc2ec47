// Copyright 2014 The Cayley Authors. All rights reserved.
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

// Package graph implements an in-memory triple store with pattern lookup.
package graph

import (
	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/clog"
	"github.com/owlkit/owlkit/internal/mapset"
)

// number of triple positions; labels are not stored
const dirs = 3

type directionIndex struct {
	index [dirs]map[int64]mapset.Int64Set
}

func newDirectionIndex() directionIndex {
	return directionIndex{[...]map[int64]mapset.Int64Set{
		quad.Subject - 1:   make(map[int64]mapset.Int64Set),
		quad.Predicate - 1: make(map[int64]mapset.Int64Set),
		quad.Object - 1:    make(map[int64]mapset.Int64Set),
	}}
}

func (di directionIndex) Tree(d quad.Direction, id int64) mapset.Int64Set {
	if d < quad.Subject || d > quad.Object {
		panic("illegal direction")
	}
	tree, ok := di.index[d-1][id]
	if !ok {
		tree = mapset.NewInt64Set()
		di.index[d-1][id] = tree
	}
	return tree
}

func (di directionIndex) Get(d quad.Direction, id int64) (mapset.Int64Set, bool) {
	if d < quad.Subject || d > quad.Object {
		panic("illegal direction")
	}
	tree, ok := di.index[d-1][id]
	return tree, ok
}

func (di directionIndex) remove(d quad.Direction, id, qid int64) {
	tree, ok := di.index[d-1][id]
	if !ok {
		return
	}
	tree.Remove(qid)
	if tree.Size() == 0 {
		delete(di.index[d-1], id)
	}
}

// Store is a set of triples indexed by every position.
//
// Quads are numbered in insertion order and all iteration follows that order.
// Store is not safe for concurrent use; callers provide their own locking.
type Store struct {
	nextID     int64
	nextQuadID int64
	idMap      map[string]int64
	revIDMap   map[int64]quad.Value
	refs       map[int64]int
	quads      map[int64]quad.Quad
	all        mapset.Int64Set
	index      directionIndex
}

// New creates a store holding the given quads. Labels are dropped.
func New(quads ...quad.Quad) *Store {
	g := &Store{
		idMap:      make(map[string]int64),
		revIDMap:   make(map[int64]quad.Value),
		refs:       make(map[int64]int),
		quads:      make(map[int64]quad.Quad),
		all:        mapset.NewInt64Set(),
		index:      newDirectionIndex(),
		nextID:     1,
		nextQuadID: 1,
	}
	for _, q := range quads {
		g.AddQuad(q)
	}
	return g
}

func toTriple(q quad.Quad) quad.Quad {
	q.Label = nil
	return q
}

func key(v quad.Value) string {
	return quad.StringOf(v)
}

func (g *Store) indexOf(q quad.Quad) (int64, bool) {
	var (
		min  = -1
		tree mapset.Int64Set
	)
	for d := quad.Subject; d <= quad.Object; d++ {
		v := q.Get(d)
		if v == nil {
			return 0, false
		}
		id, ok := g.idMap[key(v)]
		// If we've never heard about a node, it must not exist
		if !ok {
			return 0, false
		}
		index, ok := g.index.Get(d, id)
		if !ok {
			return 0, false
		}
		if l := index.Size(); min < 0 || l < min {
			min, tree = l, index
		}
	}
	var (
		found int64
		ok    bool
	)
	tree.Each(func(qid int64) bool {
		if g.quads[qid] == q {
			found, ok = qid, true
			return false
		}
		return true
	})
	return found, ok
}

// AddQuad inserts q as a triple. It reports whether the store changed.
// Quads with a nil position or a literal subject or predicate are ignored.
func (g *Store) AddQuad(q quad.Quad) bool {
	q = toTriple(q)
	if !validTriple(q) {
		if clog.V(2) {
			clog.Infof("graph: ignoring invalid triple %v", q)
		}
		return false
	}
	if _, exists := g.indexOf(q); exists {
		return false
	}
	qid := g.nextQuadID
	g.nextQuadID++
	g.quads[qid] = q
	g.all.Add(qid)

	for dir := quad.Subject; dir <= quad.Object; dir++ {
		v := q.Get(dir)
		k := key(v)
		id, ok := g.idMap[k]
		if !ok {
			id = g.nextID
			g.idMap[k] = id
			g.revIDMap[id] = v
			g.nextID++
		}
		g.refs[id]++
		g.index.Tree(dir, id).Add(qid)
	}
	return true
}

// Add inserts the triple (s, p, o). Adding an existing triple is a no-op.
func (g *Store) Add(s, p, o quad.Value) bool {
	return g.AddQuad(quad.Quad{Subject: s, Predicate: p, Object: o})
}

func (g *Store) removeID(qid int64) {
	q := g.quads[qid]
	delete(g.quads, qid)
	g.all.Remove(qid)
	for dir := quad.Subject; dir <= quad.Object; dir++ {
		k := key(q.Get(dir))
		id := g.idMap[k]
		g.index.remove(dir, id, qid)
		if g.refs[id]--; g.refs[id] <= 0 {
			delete(g.refs, id)
			delete(g.idMap, k)
			delete(g.revIDMap, id)
		}
	}
}

// RemoveQuad deletes a single triple and reports whether it existed.
func (g *Store) RemoveQuad(q quad.Quad) bool {
	qid, ok := g.indexOf(toTriple(q))
	if !ok {
		return false
	}
	g.removeID(qid)
	return true
}

// Remove deletes all triples matching the pattern. Nil positions match anything.
// It returns the number of removed triples.
func (g *Store) Remove(s, p, o quad.Value) int {
	ids := g.match(s, p, o)
	for _, qid := range ids {
		g.removeID(qid)
	}
	return len(ids)
}

// Set replaces all objects of (s, p) with o.
func (g *Store) Set(s, p, o quad.Value) {
	g.Remove(s, p, nil)
	g.Add(s, p, o)
}

// Contains reports whether the exact triple is present.
func (g *Store) Contains(s, p, o quad.Value) bool {
	if s == nil || p == nil || o == nil {
		return len(g.match(s, p, o)) != 0
	}
	_, ok := g.indexOf(quad.Quad{Subject: s, Predicate: p, Object: o})
	return ok
}

// match returns ids of matching quads in insertion order.
func (g *Store) match(s, p, o quad.Value) []int64 {
	pattern := [dirs]quad.Value{s, p, o}
	var (
		tree  mapset.Int64Set
		bound bool
	)
	for i, v := range pattern {
		if v == nil {
			continue
		}
		bound = true
		id, ok := g.idMap[key(v)]
		if !ok {
			return nil
		}
		index, ok := g.index.Get(quad.Direction(i+1), id)
		if !ok {
			return nil
		}
		if tree == nil || index.Size() < tree.Size() {
			tree = index
		}
	}
	if !bound {
		return g.all.Keys()
	}
	var out []int64
	tree.Each(func(qid int64) bool {
		q := g.quads[qid]
		for i, v := range pattern {
			if v != nil && q.Get(quad.Direction(i+1)) != v {
				return true
			}
		}
		out = append(out, qid)
		return true
	})
	return out
}

// Match returns an iterator over a snapshot of the triples matching the pattern.
// Nil positions match anything.
func (g *Store) Match(s, p, o quad.Value) *Iterator {
	ids := g.match(s, p, o)
	quads := make([]quad.Quad, 0, len(ids))
	for _, qid := range ids {
		quads = append(quads, g.quads[qid])
	}
	return newIterator(quads)
}

// Quads returns the triples matching the pattern.
func (g *Store) Quads(s, p, o quad.Value) []quad.Quad {
	return g.Match(s, p, o).quads
}

// Value returns the first object of (s, p), or nil.
func (g *Store) Value(s, p quad.Value) quad.Value {
	ids := g.match(s, p, nil)
	if len(ids) == 0 {
		return nil
	}
	return g.quads[ids[0]].Object
}

// Objects returns the objects of (s, p) in insertion order.
func (g *Store) Objects(s, p quad.Value) []quad.Value {
	ids := g.match(s, p, nil)
	out := make([]quad.Value, 0, len(ids))
	for _, qid := range ids {
		out = append(out, g.quads[qid].Object)
	}
	return out
}

// Subjects returns the subjects of (*, p, o) in insertion order.
func (g *Store) Subjects(p, o quad.Value) []quad.Value {
	ids := g.match(nil, p, o)
	out := make([]quad.Value, 0, len(ids))
	for _, qid := range ids {
		out = append(out, g.quads[qid].Subject)
	}
	return out
}

// Has reports whether the value is used in any position.
func (g *Store) Has(v quad.Value) bool {
	if v == nil {
		return false
	}
	_, ok := g.idMap[key(v)]
	return ok
}

// Size returns the number of triples.
func (g *Store) Size() int {
	return len(g.quads)
}

// Clone returns an independent copy with the same iteration order.
func (g *Store) Clone() *Store {
	c := New()
	g.all.Each(func(qid int64) bool {
		c.AddQuad(g.quads[qid])
		return true
	})
	return c
}

// ApplyDeltas applies the deltas in order.
func (g *Store) ApplyDeltas(deltas []Delta, ignoreOpts IgnoreOpts) error {
	// Precheck the whole transaction (if required)
	if !ignoreOpts.IgnoreDup || !ignoreOpts.IgnoreMissing {
		for _, d := range deltas {
			switch d.Action {
			case Add:
				if !ignoreOpts.IgnoreDup {
					if _, exists := g.indexOf(toTriple(d.Quad)); exists {
						return &DeltaError{Delta: d, Err: ErrQuadExists}
					}
				}
			case Delete:
				if !ignoreOpts.IgnoreMissing {
					if _, exists := g.indexOf(toTriple(d.Quad)); !exists {
						return &DeltaError{Delta: d, Err: ErrQuadNotExist}
					}
				}
			default:
				return &DeltaError{Delta: d, Err: ErrInvalidAction}
			}
		}
	}
	for _, d := range deltas {
		switch d.Action {
		case Add:
			if !validTriple(toTriple(d.Quad)) {
				return &DeltaError{Delta: d, Err: ErrInvalidQuad}
			}
			g.AddQuad(d.Quad)
		case Delete:
			g.RemoveQuad(d.Quad)
		default:
			return &DeltaError{Delta: d, Err: ErrInvalidAction}
		}
	}
	return nil
}

// ApplyTransaction applies tx leniently: duplicates and missing triples are ignored.
// It returns the change in store size.
func (g *Store) ApplyTransaction(tx *Transaction) (int, error) {
	before := g.Size()
	err := g.ApplyDeltas(tx.Deltas, IgnoreOpts{IgnoreDup: true, IgnoreMissing: true})
	return g.Size() - before, err
}

// IsLiteral reports whether v is a literal term.
func IsLiteral(v quad.Value) bool {
	switch v.(type) {
	case quad.String, quad.LangString, quad.TypedString:
		return true
	case quad.IRI, quad.BNode:
		return false
	}
	// any other native value converts to a typed literal
	return v != nil
}

// IsResource reports whether v is a named or anonymous node.
func IsResource(v quad.Value) bool {
	switch v.(type) {
	case quad.IRI, quad.BNode:
		return true
	}
	return false
}

func validTriple(q quad.Quad) bool {
	if q.Subject == nil || q.Predicate == nil || q.Object == nil {
		return false
	}
	if !IsResource(q.Subject) {
		return false
	}
	_, ok := q.Predicate.(quad.IRI)
	return ok
}
