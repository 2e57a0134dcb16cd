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

// Package charclass provides the pure, immutable character-classification
// tables the tokenizer (syntax/scanner) builds on: digit/letterlike/
// operator/whitespace/newline/sign classes, plus the long-named character
// table mapping `\[Name]` escapes to a canonical rune and a token.Kind
// hint (spec.md §4.2).
//
// Classification tables are assembled as *unicode.RangeTable values via
// golang.org/x/text/unicode/rangetable, the same approach Go's own
// unicode package uses internally for its category tables — the
// idiomatic way to get O(log N) range lookups over a handful of
// disjoint rune sets without hand-rolling a binary search.
package charclass

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"

	"github.com/exprsyntax/langparse/syntax/token"
)

// letterlikeExtra covers source-level identifier characters beyond
// unicode.L: '$' and the ASCII digits are handled separately since they
// may not start an identifier.
var letterlikeExtra = rangetable.New('$')

// IsLetterlikeStart reports whether r may start a Symbol token.
func IsLetterlikeStart(r rune) bool {
	return unicode.In(r, unicode.L) || unicode.Is(letterlikeExtra, r)
}

// IsLetterlikeContinue reports whether r may continue a Symbol token
// after its first character.
func IsLetterlikeContinue(r rune) bool {
	return IsLetterlikeStart(r) || unicode.In(r, unicode.Nd) || r == '`'
}

// IsDigit reports whether r is a decimal digit.
func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsBaseDigit reports whether r is a valid digit in the given base
// (2..36), per the `base^^digits` number syntax (spec.md §4.3).
func IsBaseDigit(r rune, base int) bool {
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'z':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		v = int(r-'A') + 10
	default:
		return false
	}
	return v < base
}

// whitespaceTable covers space, tab, and the handful of Unicode
// space-separator characters treated as ordinary whitespace (not
// newlines).
var whitespaceTable = rangetable.Merge(unicode.Zs, rangetable.New(' ', '\t'))

// IsWhitespace reports whether r is trivia whitespace (not a newline).
func IsWhitespace(r rune) bool { return unicode.In(r, whitespaceTable) }

// IsNewline reports whether r is one of the newline characters the
// source reader normalizes (spec.md §4.1): '\n', '\r'.
func IsNewline(r rune) bool { return r == '\n' || r == '\r' }

// IsSign reports whether r is a leading sign character for a number.
func IsSign(r rune) bool { return r == '+' || r == '-' }

// operatorRunes lists the ASCII punctuation runes the scanner's
// maximal-munch operator table (syntax/scanner) starts from.
var operatorRunes = []rune{
	'=', '!', '<', '>', '+', '-', '*', '/', '^', '&', '|', '~', '?',
	'@', '#', '%', '.', ':', ';', ',', '_', '`',
	'(', ')', '[', ']', '{', '}',
}

var operatorTable = rangetable.New(operatorRunes...)

// IsOperatorStart reports whether r can begin an ASCII operator
// spelling.
func IsOperatorStart(r rune) bool { return unicode.In(r, operatorTable) }

// LongNameEntry is one row of the long-named character table: the
// canonical rune a `\[Name]` escape decodes to, and the token.Kind it
// should be tokenized as when it stands alone as an operator.
//
// Entries whose Kind is token.Illegal are long-named characters that
// decode to a codepoint (used inside strings/symbols, e.g.
// `\[Alpha]`) but never act as their own operator token.
type LongNameEntry struct {
	Rune rune
	Kind token.Kind
}

// LongNames maps escape name (without the surrounding `\[` `]`) to its
// LongNameEntry. In the full language this table has on the order of
// 1000 rows, generated offline from Unicode named-character data
// (spec.md §9); this is a representative slice covering every
// LongName* token.Kind plus a handful of decode-only letterlike names,
// enough to exercise every parselet and desugaring path that depends on
// long-named input.
var LongNames = map[string]LongNameEntry{
	"Plus":                  {'+', token.LongNamePlus},
	"Times":                 {'×', token.LongNameTimes},
	"And":                   {'∧', token.LongNameAnd},
	"Or":                    {'∨', token.LongNameOr},
	"Not":                   {'¬', token.LongNameNot},
	"Equal":                 {'=', token.LongNameEqual},
	"NotEqual":              {'≠', token.LongNameNotEqual},
	"LessEqual":             {'≤', token.LongNameLessEqual},
	"GreaterEqual":          {'≥', token.LongNameGreaterEqual},
	"Element":               {'∈', token.LongNameElement},
	"NotElement":            {'∉', token.LongNameNotElement},
	"Union":                 {'∪', token.LongNameUnion},
	"Intersection":          {'∩', token.LongNameIntersection},
	"ForAll":                {'∀', token.LongNameForAll},
	"Exists":                {'∃', token.LongNameExists},
	"NotExists":             {'∄', token.LongNameNotExists},
	"RuleDelayed":           {'⧴', token.LongNameRuleDelayed},
	"Rule":                  {'→', token.LongNameRule},
	"CircleTimes":           {'⊗', token.LongNameCircleTimes},
	"CirclePlus":            {'⊕', token.LongNameCirclePlus},
	"Infinity":              {'∞', token.LongNameInfinity},
	"Pi":                    {'π', token.LongNamePi},
	"Degree":                {'°', token.LongNameDegree},
	"Sqrt":                  {'√', token.LongNameSqrt},
	"DifferentialD":         {'ⅆ', token.LongNameDifferentialD},
	"CapitalDifferentialD":  {'ⅅ', token.LongNameCapitalDifferentialD},
	"Integral":              {'∫', token.LongNameIntegral},
	"PartialD":              {'∂', token.LongNamePartialD},
	"Del":                   {'∇', token.LongNameDel},
	"Sum":                   {'∑', token.LongNameSum},
	"Product":               {'∏', token.LongNameProduct},
	"PlusMinus":             {'±', token.LongNamePlusMinus},
	"MinusPlus":             {'∓', token.LongNameMinusPlus},
	"InvisibleTimes":        {'⁢', token.LongNameInvisibleTimes},
	"InvisibleComma":        {'⁣', token.LongNameInvisibleComma},
	"Limit":                 {'░', token.LongNameLimit},
	"MaxLimit":              {'▒', token.LongNameMaxLimit},
	"MinLimit":              {'▓', token.LongNameMinLimit},
	"AutoLeftMatch":         {'', token.LongNameAutoLeftMatch},
	"AutoRightMatch":        {'', token.LongNameAutoRightMatch},
	"LeftAngleBracket":      {'〈', token.LeftAngleBracketLong},
	"RightAngleBracket":     {'〉', token.RightAngleBracketLong},
	"LeftCeiling":           {'⌈', token.LeftCeilingLong},
	"RightCeiling":          {'⌉', token.RightCeilingLong},
	"LeftFloor":             {'⌊', token.LeftFloorLong},
	"RightFloor":            {'⌋', token.RightFloorLong},
	"LeftDoubleBracket":     {'〚', token.LeftDoubleBracketLong},
	"RightDoubleBracket":    {'〛', token.RightDoubleBracketLong},
	"LeftBracketingBar":     {'⦃', token.LeftBracketingBarLong},
	"RightBracketingBar":    {'⦄', token.RightBracketingBarLong},
	"LeftDoubleBracketingBar":  {'⦅', token.LeftDoubleBracketingBarLong},
	"RightDoubleBracketingBar": {'⦆', token.RightDoubleBracketingBarLong},
	"LeftAssociation":       {'', token.LeftAssociationLong},
	"RightAssociation":      {'', token.RightAssociationLong},

	// Decode-only: appear inside strings/symbols, never stand alone as
	// an operator token.
	"Alpha": {'α', token.Illegal},
	"Beta":  {'β', token.Illegal},
	"Gamma": {'γ', token.Illegal},
	"Delta": {'δ', token.Illegal},
	"Mu":    {'μ', token.Illegal},
}

// LookupLongName resolves the text between `\[` and `]` to its entry,
// reporting ok=false for an unrecognized name.
func LookupLongName(name string) (LongNameEntry, bool) {
	e, ok := LongNames[name]
	return e, ok
}
