// Copyright 2015 The Cayley Authors. All rights reserved.
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
)

func TestTransaction(t *testing.T) {
	var tx *Transaction

	// simples adds / removes
	tx = NewTransaction()

	tx.AddQuad(tr("E", "follows", "F"))
	tx.AddQuad(tr("F", "follows", "G"))
	tx.RemoveQuad(tr("A", "follows", "Z"))
	if len(tx.Deltas) != 3 {
		t.Errorf("Expected 3 Deltas, have %d delta(s)", len(tx.Deltas))
	}

	// add, remove -> nothing
	tx = NewTransaction()
	tx.AddQuad(tr("E", "follows", "G"))
	tx.RemoveQuad(tr("E", "follows", "G"))
	if len(tx.Deltas) != 0 {
		t.Errorf("Expected [add, remove]->[], have %d Deltas", len(tx.Deltas))
	}

	// remove, add -> nothing
	tx = NewTransaction()
	tx.RemoveQuad(tr("E", "follows", "G"))
	tx.AddQuad(tr("E", "follows", "G"))
	if len(tx.Deltas) != 0 {
		t.Errorf("Expected [add, remove]->[], have %d delta(s)", len(tx.Deltas))
	}

	// add x2 -> add x1
	tx = NewTransaction()
	tx.AddQuad(tr("E", "follows", "G"))
	tx.AddQuad(tr("E", "follows", "G"))
	if len(tx.Deltas) != 1 {
		t.Errorf("Expected [add, add]->[add], have %d delta(s)", len(tx.Deltas))
	}

	// remove x2 -> remove x1
	tx = NewTransaction()
	tx.RemoveQuad(tr("E", "follows", "G"))
	tx.RemoveQuad(tr("E", "follows", "G"))
	if len(tx.Deltas) != 1 {
		t.Errorf("Expected [remove, remove]->[remove], have %d delta(s)", len(tx.Deltas))
	}

	// add, remove x2 -> remove x1
	tx = NewTransaction()
	tx.AddQuad(tr("E", "follows", "G"))
	tx.RemoveQuad(tr("E", "follows", "G"))
	tx.RemoveQuad(tr("E", "follows", "G"))
	if len(tx.Deltas) != 1 {
		t.Errorf("Expected [add, remove, remove]->[remove], have %d delta(s)", len(tx.Deltas))
	}

	// labels are ignored
	tx = NewTransaction()
	q := tr("E", "follows", "G")
	q.Label = quad.IRI("ctx")
	tx.AddQuad(q)
	tx.RemoveQuad(tr("E", "follows", "G"))
	if tx.Len() != 0 {
		t.Errorf("Expected labelled add to cancel, have %d delta(s)", tx.Len())
	}
}
