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
	"fmt"

	"github.com/cayleygraph/quad"
)

// Iterator walks a materialized list of triples. Mutating the store does not
// affect an iterator that was already created.
type Iterator struct {
	quads []quad.Quad
	cur   int
}

func newIterator(quads []quad.Quad) *Iterator {
	return &Iterator{quads: quads, cur: -1}
}

// Next advances the iterator and reports whether a result is available.
func (it *Iterator) Next() bool {
	if it.cur+1 >= len(it.quads) {
		it.cur = len(it.quads)
		return false
	}
	it.cur++
	return true
}

// Result returns the current triple.
func (it *Iterator) Result() quad.Quad {
	if it.cur < 0 || it.cur >= len(it.quads) {
		return quad.Quad{}
	}
	return it.quads[it.cur]
}

// Reset restarts the iteration.
func (it *Iterator) Reset() { it.cur = -1 }

// Len returns the total number of results.
func (it *Iterator) Len() int { return len(it.quads) }

func (it *Iterator) String() string {
	return fmt.Sprintf("Snapshot(%d)", len(it.quads))
}
