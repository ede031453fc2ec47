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

package graph

import (
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/stretchr/testify/require"
)

// This is a simple test graph.
//
//	+---+                        +---+
//	| A |-------               ->| F |<--
//	+---+       \------>+---+-/  +---+   \--+---+
//	             ------>|#B#|      |        | E |
//	+---+-------/      >+---+      |        +---+
//	| C |             /            v
//	+---+           -/           +---+
//	  ----    +---+/             |#G#|
//	      \-->|#D#|------------->+---+
//	          +---+
var simpleGraph = []quad.Quad{
	tr("A", "follows", "B"),
	tr("C", "follows", "B"),
	tr("C", "follows", "D"),
	tr("D", "follows", "B"),
	tr("B", "follows", "F"),
	tr("F", "follows", "G"),
	tr("D", "follows", "G"),
	tr("E", "follows", "F"),
	{Subject: quad.IRI("B"), Predicate: quad.IRI("status"), Object: quad.String("cool")},
	{Subject: quad.IRI("D"), Predicate: quad.IRI("status"), Object: quad.String("cool")},
	{Subject: quad.IRI("G"), Predicate: quad.IRI("status"), Object: quad.String("cool")},
}

func tr(s, p, o string) quad.Quad {
	return quad.Quad{Subject: quad.IRI(s), Predicate: quad.IRI(p), Object: quad.IRI(o)}
}

func TestStoreSize(t *testing.T) {
	g := New(simpleGraph...)
	require.Equal(t, len(simpleGraph), g.Size())

	// set semantics
	require.False(t, g.AddQuad(simpleGraph[0]))
	require.Equal(t, len(simpleGraph), g.Size())

	// labels are dropped
	q := simpleGraph[1]
	q.Label = quad.IRI("ctx")
	require.False(t, g.AddQuad(q))
}

func TestStoreRejectsInvalid(t *testing.T) {
	g := New()
	require.False(t, g.Add(quad.String("lit"), quad.IRI("p"), quad.IRI("o")))
	require.False(t, g.Add(quad.IRI("s"), quad.BNode("p"), quad.IRI("o")))
	require.False(t, g.Add(quad.IRI("s"), quad.IRI("p"), nil))
	require.Equal(t, 0, g.Size())
}

func TestMatch(t *testing.T) {
	g := New(simpleGraph...)

	var tests = []struct {
		name    string
		s, p, o quad.Value
		expect  []quad.Quad
	}{
		{
			name:   "subject",
			s:      quad.IRI("C"),
			expect: []quad.Quad{tr("C", "follows", "B"), tr("C", "follows", "D")},
		},
		{
			name:   "object",
			o:      quad.IRI("G"),
			expect: []quad.Quad{tr("F", "follows", "G"), tr("D", "follows", "G")},
		},
		{
			name:   "subject and predicate",
			s:      quad.IRI("D"),
			p:      quad.IRI("follows"),
			expect: []quad.Quad{tr("D", "follows", "B"), tr("D", "follows", "G")},
		},
		{
			name:   "exact",
			s:      quad.IRI("E"),
			p:      quad.IRI("follows"),
			o:      quad.IRI("F"),
			expect: []quad.Quad{tr("E", "follows", "F")},
		},
		{
			name: "unknown node",
			s:    quad.IRI("Z"),
		},
		{
			name: "literal object",
			o:    quad.String("cool"),
			expect: []quad.Quad{
				simpleGraph[8], simpleGraph[9], simpleGraph[10],
			},
		},
	}
	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			got := g.Quads(c.s, c.p, c.o)
			if len(c.expect) == 0 {
				require.Empty(t, got)
				return
			}
			require.Equal(t, c.expect, got)
		})
	}

	require.Len(t, g.Quads(nil, nil, nil), len(simpleGraph))
}

func TestIteratorSnapshot(t *testing.T) {
	g := New(simpleGraph...)
	it := g.Match(nil, quad.IRI("follows"), nil)
	require.Equal(t, 8, it.Len())

	// mutation during iteration is safe
	n := 0
	for it.Next() {
		g.RemoveQuad(it.Result())
		n++
	}
	require.Equal(t, 8, n)
	require.Equal(t, 3, g.Size())

	it.Reset()
	require.True(t, it.Next())
	require.Equal(t, simpleGraph[0], it.Result())
}

func TestRemove(t *testing.T) {
	g := New(simpleGraph...)

	require.Equal(t, 0, g.Remove(quad.IRI("Z"), nil, nil))
	require.False(t, g.RemoveQuad(tr("A", "follows", "Z")))

	require.Equal(t, 3, g.Remove(nil, quad.IRI("status"), nil))
	require.False(t, g.Has(quad.String("cool")))
	require.False(t, g.Has(quad.IRI("status")))

	require.True(t, g.RemoveQuad(tr("E", "follows", "F")))
	require.False(t, g.Contains(quad.IRI("E"), quad.IRI("follows"), quad.IRI("F")))
	require.False(t, g.Has(quad.IRI("E")))
	require.True(t, g.Has(quad.IRI("F")))
	require.Equal(t, len(simpleGraph)-4, g.Size())
}

func TestSetAndValue(t *testing.T) {
	g := New()
	s, p := quad.IRI("s"), quad.IRI("label")
	require.Nil(t, g.Value(s, p))

	g.Add(s, p, quad.String("one"))
	g.Add(s, p, quad.String("two"))
	require.Equal(t, quad.String("one"), g.Value(s, p))
	require.Equal(t, []quad.Value{quad.String("one"), quad.String("two")}, g.Objects(s, p))

	g.Set(s, p, quad.LangString{Value: "three", Lang: "en"})
	require.Equal(t, []quad.Value{quad.LangString{Value: "three", Lang: "en"}}, g.Objects(s, p))
	require.Equal(t, []quad.Value{s}, g.Subjects(p, nil))
}

func TestClone(t *testing.T) {
	g := New(simpleGraph...)
	c := g.Clone()
	c.Remove(nil, nil, quad.IRI("B"))
	require.Equal(t, len(simpleGraph), g.Size())
	require.Equal(t, len(simpleGraph)-3, c.Size())
	require.Equal(t, g.Quads(quad.IRI("F"), nil, nil), c.Quads(quad.IRI("F"), nil, nil))
}

func TestApplyDeltas(t *testing.T) {
	g := New(simpleGraph...)

	err := g.ApplyDeltas([]Delta{{Quad: simpleGraph[0], Action: Add}}, IgnoreOpts{})
	require.True(t, IsQuadExist(err))

	err = g.ApplyDeltas([]Delta{{Quad: tr("X", "follows", "Y"), Action: Delete}}, IgnoreOpts{})
	require.True(t, IsQuadNotExist(err))

	err = g.ApplyDeltas([]Delta{{Quad: tr("X", "follows", "Y")}}, IgnoreOpts{IgnoreDup: true, IgnoreMissing: true})
	require.True(t, IsInvalidAction(err))

	tx := NewTransaction()
	tx.AddTriple(quad.IRI("X"), quad.IRI("follows"), quad.IRI("Y"))
	tx.RemoveQuad(simpleGraph[0])
	tx.AddQuad(simpleGraph[1])
	n, err := g.ApplyTransaction(tx)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.True(t, g.Contains(quad.IRI("X"), quad.IRI("follows"), quad.IRI("Y")))
	require.False(t, g.Contains(quad.IRI("A"), quad.IRI("follows"), quad.IRI("B")))
}
