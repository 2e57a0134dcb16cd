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

package token

// Flags carries lexical hints attached to a token that the parser and
// aggregator need but that aren't part of its Kind (spec.md §3).
type Flags uint16

const (
	// FollowedBySpace marks a token that whitespace, a newline or a
	// comment separates from the previous significant token (the scanner
	// sets it from the gap before the token) — used to tell a named
	// pattern `x_` from the implicit multiplication `x _`.
	FollowedBySpace Flags = 1 << iota
	// StartsLine marks a token that is the first non-trivia token on its
	// source line. The scanner does not set this flag.
	StartsLine
	// ContainsLineContinuation marks a String token whose text contained
	// a `\<newline>` line continuation (spec.md §4.3).
	ContainsLineContinuation
	// ContainsComplexLineContinuation marks a String token whose line
	// continuation was followed by leading whitespace on the next line
	// (distinguished from a "simple" continuation, spec.md §4.3).
	ContainsComplexLineContinuation
	// Unterminated marks an Error_Unterminated* token whose span runs to
	// end of input (spec.md §4.5).
	Unterminated
	// Synthetic marks a token with no corresponding source text, such as
	// the Fake_ImplicitTimes token inserted between juxtaposed operands
	// (spec.md §4.5) or the empty element inserted before a leading or
	// repeated comma in a group. A trailing comma inserts no element.
	Synthetic
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// Token is one lexical unit produced by the tokenizer (spec.md §3). Text is
// a borrowed view into the scanner's input buffer; Token itself owns
// nothing.
type Token struct {
	Kind  Kind
	Text  string
	Span  Span
	Flags Flags
}

// IsZero reports whether t is the unset Token value.
func (t Token) IsZero() bool { return t.Kind == Illegal && t.Text == "" && !t.Span.IsValid() }

// NewImplicitTimes builds the synthetic token the parser inserts between
// two juxtaposed operands (spec.md §4.5). It carries no source text and is
// flagged Synthetic so the aggregator and abstracter can tell it apart
// from an explicit `*`.
func NewImplicitTimes(at Pos) Token {
	return Token{Kind: FakeImplicitTimes, Span: Span{Start: at, End: at}, Flags: Synthetic}
}
