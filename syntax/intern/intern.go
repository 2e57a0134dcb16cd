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

// Package intern provides an optional string interner for operator and
// symbol text produced while parsing (spec.md §5, §6). It is never
// required for correctness — two parses never need to agree on which
// *string value backs an identical piece of text — so the public parser
// API never exposes interned identity; this exists purely so a host
// embedding many short-lived parses can reduce allocation if it wants
// to, the same opt-in role cue/internal/pkg's string tables play
// relative to cue/parser's main path.
package intern

import "sync"

// Table is a read-mostly string interner safe for concurrent use. The
// zero value is ready to use.
type Table struct {
	mu sync.RWMutex
	m  map[string]string
}

// Intern returns a canonical string equal to s, reusing a previously
// interned value when one exists.
func (t *Table) Intern(s string) string {
	t.mu.RLock()
	v, ok := t.m[s]
	t.mu.RUnlock()
	if ok {
		return v
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.m[s]; ok {
		return v
	}
	if t.m == nil {
		t.m = make(map[string]string)
	}
	t.m[s] = s
	return s
}

// Local is a non-concurrent interner scoped to a single parse, cheaper
// than Table when the caller already serializes access.
type Local struct {
	m map[string]string
}

// Intern returns a canonical string equal to s, reusing a previously
// interned value within this Local's lifetime.
func (l *Local) Intern(s string) string {
	if l.m == nil {
		l.m = make(map[string]string)
	}
	if v, ok := l.m[s]; ok {
		return v
	}
	l.m[s] = s
	return s
}
