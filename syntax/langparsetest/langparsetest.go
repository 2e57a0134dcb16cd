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

// Package langparsetest provides golden-fixture test tooling shared by
// the package-level test suites: txtar fixtures (one source text plus
// its expected dump, the way cue's own test suite stores CUE inputs
// alongside their expected output) and a pretty-printer for failure
// messages.
package langparsetest

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"
	"github.com/rogpeppe/go-internal/txtar"

	"github.com/exprsyntax/langparse/syntax/cst"
	"github.com/exprsyntax/langparse/syntax/token"
)

// Fixture is one golden test case loaded from a txtar archive: an
// "input" file holding source text and a "want" file holding its
// expected dump.
type Fixture struct {
	Name  string
	Input string
	Want  string
}

// Load parses a txtar archive into Fixtures, one per name: the file
// "name/input" holds the source text and "name/want" the expected dump.
// Files named any other way are skipped.
func Load(data []byte) []Fixture {
	arc := txtar.Parse(data)
	byName := map[string]*Fixture{}
	var order []string
	for _, f := range arc.Files {
		name, kind, ok := splitFixtureName(f.Name)
		if !ok {
			continue
		}
		fx, exists := byName[name]
		if !exists {
			fx = &Fixture{Name: name}
			byName[name] = fx
			order = append(order, name)
		}
		text := string(f.Data)
		switch kind {
		case "input":
			fx.Input = text
		case "want":
			fx.Want = text
		}
	}
	out := make([]Fixture, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}

func splitFixtureName(path string) (name, kind string, ok bool) {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return "", "", false
	}
	name, kind = path[:i], path[i+1:]
	switch kind {
	case "input", "want":
		return name, kind, true
	default:
		return "", "", false
	}
}

// Dump renders a one-line summary of a CST node for comparison against a
// Fixture's Want text: the node's Go type followed by the span it
// covers, formatted with kr/pretty. Child nodes are not rendered.
func Dump(n cst.Node) string {
	if n == nil {
		return "<nil>"
	}
	return strings.TrimRight(pretty.Sprint(stripPositions(n)), "\n")
}

// stripPositions formats n as its Go type followed by its span's start
// and end positions. The positions are kept, and children are not
// visited.
func stripPositions(n cst.Node) interface{} {
	if n == nil {
		return nil
	}
	return fmt.Sprintf("%T%s", n, summarize(n))
}

func summarize(n cst.Node) string {
	return "@[" + n.Span().Start.String() + "," + n.Span().End.String() + "]"
}

// SpanText returns the literal source text a span covers, for
// fixture-writing convenience.
func SpanText(src []byte, sp token.Span) string {
	f := sp.Start.File()
	if f == nil {
		return ""
	}
	return string(src[f.Offset(sp.Start):f.Offset(sp.End)])
}
