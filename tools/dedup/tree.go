// Copyright 2026 The jsgen Authors
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

// Package dedup compacts syntax trees by hoisting repeated array and object
// literals into shared variables.
//
// Candidate subtrees are compared by their printed form: two subtrees are
// considered equal if and only if they print to the same text. Groups of
// equal subtrees are processed greedily, shortest text first by default.
// Each group that pays off is replaced by references to a single binding,
// and all bindings are declared in one statement prepended to the root.
//
// The engine is generic over the node representation. The AST type adapts
// it to js/ast trees.
package dedup

// Kind classifies nodes for deduplication.
type Kind int

const (
	// Other nodes are never hoisted, but their children are searched.
	Other Kind = iota

	// Array marks array literals.
	Array

	// Object marks object literals.
	Object
)

// A Tree gives the deduplication engine access to a tree of nodes of type
// N. Nodes are compared by identity with ==.
type Tree[N comparable] interface {
	// Kind reports the kind of n.
	Kind(n N) Kind

	// Children returns the direct children of n in order.
	Children(n N) []N

	// Text returns the serialized form of n. It must be deterministic and
	// depend only on the structure of n.
	Text(n N) string

	// Replace replaces the direct child old of parent with new and reports
	// whether old was found.
	Replace(parent, old, new N) bool

	// Ref returns a new node referring to the variable with the given name.
	Ref(name string) N

	// Clone returns a deep copy of n that shares no nodes with the tree.
	Clone(n N) N

	// Declare prepends a single declaration of the given bindings, in
	// order, to the top level of root.
	Declare(root N, b []Binding[N])
}

// A Binding associates a hoisted value with the name of its variable.
type Binding[N comparable] struct {
	Name  string
	Value N
}
