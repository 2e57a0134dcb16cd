// Copyright 2024 The langparse Authors
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

package ast

import "fmt"

// Walk traverses an AST in depth-first order: it calls before(node)
// first; node must not be nil. If before returns true (or is nil), Walk
// recurses into node's non-nil children, then calls after. Both
// functions may be nil, matching cue/ast.Walk's shape.
func Walk(node Node, before func(Node) bool, after func(Node)) {
	if before != nil && !before(node) {
		return
	}

	switch n := node.(type) {
	case *Leaf:
		// no children

	case *Call:
		Walk(n.Head, before, after)
		for _, a := range n.Args {
			Walk(a, before, after)
		}

	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	if after != nil {
		after(node)
	}
}

// A Visitor's Before method is invoked for each node Walk encounters.
// If the returned Visitor w is non-nil, Walk visits node's children
// with w, then calls w's After.
type Visitor interface {
	Before(node Node) (w Visitor)
	After(node Node)
}

// WalkVisitor traverses an AST in depth-first order using a Visitor.
func WalkVisitor(node Node, visitor Visitor) {
	v := &stackVisitor{stack: []Visitor{visitor}}
	Walk(node, v.Before, v.After)
}

type stackVisitor struct {
	stack []Visitor
}

func (v *stackVisitor) Before(node Node) bool {
	current := v.stack[len(v.stack)-1]
	next := current.Before(node)
	if next == nil {
		return false
	}
	v.stack = append(v.stack, next)
	return true
}

func (v *stackVisitor) After(node Node) {
	v.stack[len(v.stack)-1] = nil
	v.stack = v.stack[:len(v.stack)-1]
}
