// Copyright 2019 The Cayley Authors. All rights reserved.
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

// Package rdflist encodes and decodes RDF collections (rdf:first / rdf:rest chains).
package rdflist

import (
	"errors"
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/owlkit/owlkit/internal/mapset"
	"github.com/owlkit/owlkit/voc/rdf"
)

var (
	first  = quad.IRI(rdf.First)
	rest   = quad.IRI(rdf.Rest)
	rdfNil = quad.IRI(rdf.Nil)
)

// Nil is the empty list.
var Nil quad.Value = rdfNil

// ErrMalformed is matched by every decode failure.
var ErrMalformed = errors.New("malformed rdf list")

// MalformedError describes where a chain stopped being a valid list.
type MalformedError struct {
	Cell   quad.Value
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v at %v: %s", ErrMalformed, e.Cell, e.Reason)
}

func (e *MalformedError) Unwrap() error { return ErrMalformed }

// Writer is the part of a store needed to build a list.
type Writer interface {
	Add(s, p, o quad.Value) bool
}

// Reader is the part of a store needed to walk a list.
type Reader interface {
	Objects(s, p quad.Value) []quad.Value
}

// Remover can walk and delete a list.
type Remover interface {
	Reader
	Remove(s, p, o quad.Value) int
}

// Encode writes values as a new chain of anonymous cells and returns its head.
// An empty slice encodes to rdf:nil and writes nothing.
func Encode(w Writer, values []quad.Value) quad.Value {
	if len(values) == 0 {
		return rdfNil
	}
	cells := make([]quad.BNode, len(values))
	for i := range cells {
		cells[i] = quad.RandomBlankNode()
	}
	for i, v := range values {
		w.Add(cells[i], first, v)
		if i+1 < len(cells) {
			w.Add(cells[i], rest, cells[i+1])
		} else {
			w.Add(cells[i], rest, rdfNil)
		}
	}
	return cells[0]
}

// IsNil reports whether v is the rdf:nil sentinel.
func IsNil(v quad.Value) bool {
	iri, ok := v.(quad.IRI)
	return ok && iri == rdfNil
}

// Cells returns the cell nodes of the chain starting at head, in order.
// On a malformed chain it returns the cells visited so far and a *MalformedError.
func Cells(r Reader, head quad.Value) ([]quad.Value, error) {
	var cells []quad.Value
	err := walk(r, head, func(cell, _ quad.Value) {
		cells = append(cells, cell)
	})
	return cells, err
}

// Decode returns the elements of the list starting at head.
//
// Decoding is lenient: on a malformed chain the elements read so far are
// returned together with a *MalformedError. Callers that only need a best-effort
// result may ignore the error; an empty result with a nil error is a real empty list.
func Decode(r Reader, head quad.Value) ([]quad.Value, error) {
	var out []quad.Value
	err := walk(r, head, func(_, v quad.Value) {
		out = append(out, v)
	})
	return out, err
}

func walk(r Reader, head quad.Value, fn func(cell, value quad.Value)) error {
	seen := mapset.NewThreadUnsafeSet()
	cur := head
	for {
		if cur == nil {
			return &MalformedError{Cell: cur, Reason: "no list head"}
		}
		if IsNil(cur) {
			return nil
		}
		switch cur.(type) {
		case quad.IRI, quad.BNode:
		default:
			return &MalformedError{Cell: cur, Reason: "literal in list position"}
		}
		if seen.Contains(quad.StringOf(cur)) {
			return &MalformedError{Cell: cur, Reason: "cycle"}
		}
		seen.Add(quad.StringOf(cur))

		firsts := r.Objects(cur, first)
		switch len(firsts) {
		case 0:
			return &MalformedError{Cell: cur, Reason: "missing rdf:first"}
		case 1:
		default:
			return &MalformedError{Cell: cur, Reason: "multiple rdf:first"}
		}
		fn(cur, firsts[0])

		rests := r.Objects(cur, rest)
		switch len(rests) {
		case 0:
			return &MalformedError{Cell: cur, Reason: "missing rdf:rest"}
		case 1:
		default:
			return &MalformedError{Cell: cur, Reason: "multiple rdf:rest"}
		}
		cur = rests[0]
	}
}

// Delete removes the cells of the list starting at head and returns the number
// of removed triples. Only anonymous cells are removed; a malformed tail is left as is.
func Delete(g Remover, head quad.Value) int {
	cells, _ := Cells(g, head)
	n := 0
	for _, c := range cells {
		if _, ok := c.(quad.BNode); !ok {
			continue
		}
		n += g.Remove(c, first, nil)
		n += g.Remove(c, rest, nil)
	}
	return n
}
