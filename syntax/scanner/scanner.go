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

// Package scanner implements the tokenizer: lexical recognition over a
// byte source producing a stream of typed tokens with spans (spec.md
// §4.3, component C3).
//
// It follows cue/scanner's shape — a single Scanner struct holding
// immutable input state and mutable scan position, driven by next()
// rune-at-a-time — but is built on syntax/source.Reader for character
// decoding and dispatches by lexical family (number/string/symbol/
// operator/long-name) rather than CUE's fixed keyword/operator set.
package scanner

import (
	"strings"

	"github.com/exprsyntax/langparse/syntax/charclass"
	"github.com/exprsyntax/langparse/syntax/errors"
	"github.com/exprsyntax/langparse/syntax/literal"
	"github.com/exprsyntax/langparse/syntax/source"
	"github.com/exprsyntax/langparse/syntax/token"
)

// StringifyMode switches how the next atomic run is tokenized,
// requested by the parser mid-stream (spec.md §4.3).
type StringifyMode int

const (
	// NoStringify is normal tokenization.
	NoStringify StringifyMode = iota
	// TagStringify consumes the next atomic run as a String, requested
	// after `::` or `#`.
	TagStringify
	// FileStringify consumes until whitespace as a path-shaped String,
	// requested after `<<`, `>>`, `>>>`.
	FileStringify
)

// asciiOperators lists every ASCII operator spelling this tokenizer
// recognizes, longest first so maximal munch is a simple linear scan
// (spec.md §4.3: "encodes a prefix trie ... emits the longest match").
// Keeping it data, sorted once at package init, documents the full
// disambiguation table in one place instead of scattering it across
// nested switch statements.
var asciiOperators = buildOperatorTable()

type opEntry struct {
	text string
	kind token.Kind
}

func buildOperatorTable() []opEntry {
	raw := map[string]token.Kind{
		"===": token.EqualEqualEqual,
		"//=": token.SlashSlashEqual,
		"@@=": token.AtAtEqual,
		">>>": token.GreaterGreaterGreater,
		"==":  token.EqualEqual,
		"!=":  token.BangEqual,
		":=":  token.ColonEqual,
		"+=":  token.PlusEqual,
		"-=":  token.MinusEqual,
		"*=":  token.StarEqual,
		"/=":  token.SlashEqual,
		"=.":  token.EqualDot,
		"->":  token.Arrow,
		":>":  token.RuleDelayed,
		"<=":  token.LessEqual,
		">=":  token.GreaterEqual,
		"&&":  token.AmpAmp,
		"||":  token.BarBar,
		"!!":  token.BangBang,
		"++":  token.PlusPlus,
		"--":  token.MinusMinus,
		"**":  token.StarStar,
		"//":  token.SlashSlash,
		"/.":  token.SlashDot,
		"/@":  token.SlashAt,
		"/;":  token.SlashSemi,
		"/:":  token.SlashColon,
		"@@":  token.AtAt,
		"__":  token.UnderUnder, // two-char case; three-char ___ checked first
		"_.":  token.UnderDot,
		"##":  token.HashHash,
		"%%":  token.PercentPercent,
		"..":  token.DotDot,
		"::":  token.ColonColon,
		"<<":  token.LessLess,
		">>":  token.GreaterGreater,
		"<|":  token.LessBar,
		"|>":  token.BarGreater,
		";;":  token.SemiSemi,
		"??":  token.QuestionQuestion,
		"___": token.UnderUnderUnder,
		"=":   token.Equal,
		"!":   token.Bang,
		"<":   token.Less,
		">":   token.Greater,
		"+":   token.Plus,
		"-":   token.Minus,
		"*":   token.Star,
		"/":   token.Slash,
		"^":   token.Caret,
		"_":   token.Under,
		"#":   token.Hash,
		"%":   token.Percent,
		".":   token.Dot,
		":":   token.Colon,
		";":   token.Semi,
		",":   token.Comma,
		"~":   token.Tilde,
		"?":   token.Question,
		"`":   token.Backtick,
		"(":   token.OpenParen,
		")":   token.CloseParen,
		"[":   token.OpenSquare,
		"]":   token.CloseSquare,
		"{":   token.OpenCurly,
		"}":   token.CloseCurly,
	}
	entries := make([]opEntry, 0, len(raw))
	for text, kind := range raw {
		entries = append(entries, opEntry{text, kind})
	}
	// Longest spellings first so the linear scan in scanOperatorOrPattern
	// is a correct maximal-munch implementation.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && len(entries[j].text) > len(entries[j-1].text); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	return entries
}

// A Scanner holds the scanner's state while processing source text. It
// must be initialized via Init before use.
type Scanner struct {
	file    *token.File
	src     []byte
	issues  *errors.List
	reader  *source.Reader
	options source.Options

	groupDepth int // incremented/decremented by the parser via EnterGroup/LeaveGroup

	stringify StringifyMode

	peeked  bool
	peekTok token.Token
	lastEnd int // byte offset just past the previous non-trivia token, for FollowedBySpace
}

// Init prepares s to tokenize src, associated with file for position
// reporting. issues receives every diagnostic the scanner raises.
func (s *Scanner) Init(file *token.File, src []byte, issues *errors.List, opts source.Options) {
	s.file = file
	s.src = src
	s.issues = issues
	s.options = opts
	s.reader = source.NewReader(file, src, opts)
	s.groupDepth = 0
	s.stringify = NoStringify
	s.peeked = false
}

// EnterGroup tells the scanner a group/call/ternary frame was pushed,
// so subsequent newlines are tokenized as InternalNewline rather than
// ToplevelNewline (spec.md §4.3's internal/toplevel newline
// distinction is driven by the parser's bracket nesting).
func (s *Scanner) EnterGroup() { s.groupDepth++ }

// LeaveGroup is the inverse of EnterGroup.
func (s *Scanner) LeaveGroup() {
	if s.groupDepth > 0 {
		s.groupDepth--
	}
}

// RequestTagStringify switches the next token to tag-stringify mode
// (spec.md §4.3), consumed by the parselets for `::` and `#`.
func (s *Scanner) RequestTagStringify() { s.stringify = TagStringify }

// RequestFileStringify switches the next token to file-stringify mode,
// consumed by the parselets for `<<`, `>>`, `>>>`.
func (s *Scanner) RequestFileStringify() { s.stringify = FileStringify }

// UnsafeEncoding reports whether the underlying reader ever observed an
// unsafe character encoding, and its message.
func (s *Scanner) UnsafeEncoding() (bool, string) { return s.reader.Unsafe, s.reader.UnsafeMsg }

// PeekRune returns the next undecoded rune without consuming it or
// tokenizing anything, for parselets that must choose a lexical mode
// (e.g. whether to request stringify) before the scanner commits to
// one. It only gives a meaningful answer when no token has been peeked
// yet; callers that already hold a peeked token should decide from its
// Kind instead.
func (s *Scanner) PeekRune() rune { return s.reader.PeekChar() }

// PeekToken returns the next token without consuming it. Repeated calls
// with no intervening NextToken return the same token (spec.md §4.3).
func (s *Scanner) PeekToken() token.Token {
	if !s.peeked {
		s.peekTok = s.scan()
		s.peeked = true
	}
	return s.peekTok
}

// NextToken consumes and returns the next token.
func (s *Scanner) NextToken() token.Token {
	t := s.PeekToken()
	s.peeked = false
	if !t.Kind.IsTrivia() {
		s.lastEnd = s.file.Offset(t.Span.End)
	}
	return t
}

func (s *Scanner) pos() token.Pos { return s.reader.Pos() }

func (s *Scanner) addIssue(tag string, sev errors.Severity, span token.Span, format string, args ...interface{}) {
	if s.issues == nil {
		return
	}
	s.issues.AddNewf(tag, sev, span, format, args...)
}

// scan recognizes exactly one token starting at the reader's current
// position, per the lexical family it belongs to.
func (s *Scanner) scan() token.Token {
	if s.stringify != NoStringify {
		return s.scanStringify()
	}

	startOffset := s.file.Offset(s.pos())
	ch := s.reader.PeekChar()

	switch {
	case ch < 0:
		return token.Token{Kind: token.EndOfFile, Span: token.Span{Start: s.pos(), End: s.pos()}}

	case charclass.IsWhitespace(ch):
		return s.scanWhitespace()

	case charclass.IsNewline(ch):
		return s.scanNewline()

	case ch == '(' && s.peekByteAt(1) == '*':
		return s.scanComment()

	case ch == '"':
		return s.scanString()

	case charclass.IsDigit(ch):
		return s.scanNumber()

	case charclass.IsLetterlikeStart(ch):
		return s.scanSymbol()

	case ch == '\\':
		return s.scanBackslashEscape()

	case charclass.IsOperatorStart(ch):
		return s.scanOperatorOrPattern(startOffset)

	default:
		start := s.pos()
		_, span := s.reader.AdvanceChar()
		t := token.Token{Kind: token.ErrorUnhandledCharacter, Text: string(s.src[startOffset:s.file.Offset(span.End)]), Span: token.Span{Start: start, End: span.End}}
		s.addIssue("unhandled-character", errors.Error, t.Span, "unhandled character %q", ch)
		return t
	}
}

func (s *Scanner) peekByteAt(n int) byte {
	off := s.file.Offset(s.pos()) + n
	if off < 0 || off >= len(s.src) {
		return 0
	}
	return s.src[off]
}

func (s *Scanner) makeFlags(startOffset int) token.Flags {
	var f token.Flags
	if startOffset > s.lastEnd {
		f |= token.FollowedBySpace
	}
	return f
}

// --- trivia -----------------------------------------------------------

func (s *Scanner) scanWhitespace() token.Token {
	start := s.pos()
	for charclass.IsWhitespace(s.reader.PeekChar()) {
		s.reader.AdvanceChar()
	}
	end := s.pos()
	return token.Token{Kind: token.Whitespace, Text: s.slice(start, end), Span: token.Span{Start: start, End: end}}
}

func (s *Scanner) scanNewline() token.Token {
	start := s.pos()
	_, span := s.reader.AdvanceChar() // normalizes \r\n and \r to one logical newline
	kind := token.InternalNewline
	if s.groupDepth == 0 {
		kind = token.ToplevelNewline
	}
	return token.Token{Kind: kind, Text: s.slice(start, span.End), Span: token.Span{Start: start, End: span.End}}
}

func (s *Scanner) scanComment() token.Token {
	start := s.pos()
	depth := 0
	for {
		ch := s.reader.PeekChar()
		if ch < 0 {
			end := s.pos()
			t := token.Token{Kind: token.ErrorUnterminatedComment, Text: s.slice(start, end), Span: token.Span{Start: start, End: end}, Flags: token.Unterminated}
			s.addIssue("unterminated-comment", errors.Error, t.Span, "comment starting at %s is not terminated", start)
			return t
		}
		if ch == '(' && s.peekByteAt(1) == '*' {
			s.reader.AdvanceChar()
			s.reader.AdvanceChar()
			depth++
			continue
		}
		if ch == '*' && s.peekByteAt(1) == ')' {
			s.reader.AdvanceChar()
			s.reader.AdvanceChar()
			depth--
			if depth == 0 {
				end := s.pos()
				return token.Token{Kind: token.Comment, Text: s.slice(start, end), Span: token.Span{Start: start, End: end}}
			}
			continue
		}
		s.reader.AdvanceChar()
	}
}

func (s *Scanner) slice(start, end token.Pos) string {
	return string(s.src[s.file.Offset(start):s.file.Offset(end)])
}

// --- numbers ------------------------------------------------------------

// scanNumber recognizes the full number grammar (spec.md §4.3):
// optional `base^^digits`, optional decimal point, optional precision
// `` `prec `` or ``acc``, optional exponent `*^n`.
func (s *Scanner) scanNumber() token.Token {
	start := s.pos()
	startOffset := s.file.Offset(start)

	for charclass.IsDigit(s.reader.PeekChar()) {
		s.reader.AdvanceChar()
	}

	base := 10
	hasBase := false
	if s.reader.PeekChar() == '^' && s.peekByteAt(1) == '^' {
		mantissaSoFar := s.slice(start, s.pos())
		if n, ok := parseSmallInt(mantissaSoFar); ok && n >= 2 && n <= 36 {
			hasBase = true
			base = n
			s.reader.AdvanceChar()
			s.reader.AdvanceChar()
			for isBaseDigitOrDot(s.reader.PeekChar(), base) {
				s.reader.AdvanceChar()
			}
		}
	}

	if !hasBase && s.reader.PeekChar() == '.' && !isDotDotStart(s) {
		s.reader.AdvanceChar()
		for charclass.IsDigit(s.reader.PeekChar()) {
			s.reader.AdvanceChar()
		}
	}

	if s.reader.PeekChar() == '`' {
		s.reader.AdvanceChar()
		if s.reader.PeekChar() == '`' {
			s.reader.AdvanceChar()
		}
		if s.reader.PeekChar() == '-' {
			s.reader.AdvanceChar()
		}
		for charclass.IsDigit(s.reader.PeekChar()) {
			s.reader.AdvanceChar()
		}
	}

	if s.reader.PeekChar() == '*' && s.peekByteAt(1) == '^' {
		s.reader.AdvanceChar()
		s.reader.AdvanceChar()
		if s.reader.PeekChar() == '+' || s.reader.PeekChar() == '-' {
			s.reader.AdvanceChar()
		}
		for charclass.IsDigit(s.reader.PeekChar()) {
			s.reader.AdvanceChar()
		}
	}

	end := s.pos()
	text := s.slice(start, end)
	kind := classifyNumber(text, base)
	t := token.Token{Kind: kind, Text: text, Span: token.Span{Start: start, End: end}, Flags: s.makeFlags(startOffset)}
	if kind == token.ErrorNumber {
		s.addIssue("invalid-number", errors.Error, t.Span, "malformed number literal %q", text)
	}
	return t
}

func isDotDotStart(s *Scanner) bool {
	return s.peekByteAt(1) == '.'
}

func isBaseDigitOrDot(ch rune, base int) bool {
	if ch == '.' {
		return true
	}
	return ch >= 0 && charclass.IsBaseDigit(ch, base)
}

func parseSmallInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		if n > 36 {
			return n, true
		}
	}
	return n, true
}

func classifyNumber(text string, base int) token.Kind {
	body := text
	if i := strings.Index(body, "*^"); i >= 0 && !literal.ValidExponent(body[i+2:]) {
		return token.ErrorNumber
	}
	if idx := strings.Index(body, "^^"); idx >= 0 {
		mantissa := body[:idx]
		digits := stripNumberSuffixes(body[idx+2:])
		if _, ok := parseSmallInt(mantissa); !ok || !literal.ValidBaseDigits(strings.TrimSuffix(digits, "."), base) {
			return token.ErrorNumber
		}
		if strings.Contains(digits, ".") {
			return token.Real
		}
		return token.Integer
	}
	mantissa := stripNumberSuffixes(body)
	if !literal.ValidMantissa(strings.TrimSuffix(mantissa, ".")) {
		return token.ErrorNumber
	}
	if strings.Contains(mantissa, ".") || strings.Contains(body, "*^") {
		return token.Real
	}
	return token.Integer
}

func stripNumberSuffixes(s string) string {
	if i := strings.Index(s, "*^"); i >= 0 {
		s = s[:i]
	}
	if i := strings.IndexByte(s, '`'); i >= 0 {
		s = s[:i]
	}
	return s
}

// --- strings --------------------------------------------------------

func (s *Scanner) scanString() token.Token {
	start := s.pos()
	startOffset := s.file.Offset(start)
	s.reader.AdvanceChar() // opening quote
	var continuation token.Flags
	for {
		ch := s.reader.PeekChar()
		switch {
		case ch < 0:
			end := s.pos()
			t := token.Token{Kind: token.ErrorUnterminatedString, Text: s.slice(start, end), Span: token.Span{Start: start, End: end}, Flags: token.Unterminated | continuation}
			s.addIssue("unterminated-string", errors.Error, t.Span, "string starting at %s is not terminated", start)
			return t
		case ch == '"':
			s.reader.AdvanceChar()
			end := s.pos()
			return token.Token{Kind: token.String, Text: s.slice(start, end), Span: token.Span{Start: start, End: end}, Flags: s.makeFlags(startOffset) | continuation}
		case ch == '\\':
			s.reader.AdvanceChar()
			next := s.reader.PeekChar()
			if charclass.IsNewline(next) {
				s.reader.AdvanceChar()
				continuation |= token.ContainsLineContinuation
				if charclass.IsWhitespace(s.reader.PeekChar()) {
					continuation |= token.ContainsComplexLineContinuation
				}
				continue
			}
			s.scanStringEscape()
		default:
			s.reader.AdvanceChar()
		}
	}
}

// scanStringEscape consumes one escape body after the backslash has
// already been consumed (spec.md §4.3: \\, \n, \t, \", \[Name], \:hhhh,
// \.hh, \nnn octal, \|hhhhhh).
func (s *Scanner) scanStringEscape() {
	ch := s.reader.PeekChar()
	switch {
	case ch == '[':
		s.reader.AdvanceChar()
		for s.reader.PeekChar() != ']' && s.reader.PeekChar() >= 0 {
			s.reader.AdvanceChar()
		}
		if s.reader.PeekChar() == ']' {
			s.reader.AdvanceChar()
		}
	case ch == ':':
		s.reader.AdvanceChar()
		for i := 0; i < 4 && isHexDigit(s.reader.PeekChar()); i++ {
			s.reader.AdvanceChar()
		}
	case ch == '.':
		s.reader.AdvanceChar()
		for i := 0; i < 2 && isHexDigit(s.reader.PeekChar()); i++ {
			s.reader.AdvanceChar()
		}
	case ch == '|':
		s.reader.AdvanceChar()
		for i := 0; i < 6 && isHexDigit(s.reader.PeekChar()); i++ {
			s.reader.AdvanceChar()
		}
	case ch >= '0' && ch <= '7':
		for i := 0; i < 3 && s.reader.PeekChar() >= '0' && s.reader.PeekChar() <= '7'; i++ {
			s.reader.AdvanceChar()
		}
	default:
		if ch >= 0 {
			s.reader.AdvanceChar()
		}
	}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// --- symbols ----------------------------------------------------------

func (s *Scanner) scanSymbol() token.Token {
	start := s.pos()
	startOffset := s.file.Offset(start)
	s.reader.AdvanceChar()
	for charclass.IsLetterlikeContinue(s.reader.PeekChar()) {
		s.reader.AdvanceChar()
	}
	end := s.pos()
	return token.Token{Kind: token.Symbol, Text: s.slice(start, end), Span: token.Span{Start: start, End: end}, Flags: s.makeFlags(startOffset)}
}

// --- long-named characters -------------------------------------------

// scanBackslashEscape recognizes a standalone `\[Name]` operator (not
// inside a string, where scanStringEscape handles it instead).
func (s *Scanner) scanBackslashEscape() token.Token {
	start := s.pos()
	startOffset := s.file.Offset(start)
	s.reader.AdvanceChar() // backslash
	if s.reader.PeekChar() != '[' {
		end := s.pos()
		t := token.Token{Kind: token.ErrorUnhandledCharacter, Text: s.slice(start, end), Span: token.Span{Start: start, End: end}}
		s.addIssue("unhandled-character", errors.Error, t.Span, "stray backslash not followed by '['")
		return t
	}
	s.reader.AdvanceChar()
	nameStart := s.pos()
	for s.reader.PeekChar() != ']' && s.reader.PeekChar() >= 0 {
		s.reader.AdvanceChar()
	}
	name := s.slice(nameStart, s.pos())
	if s.reader.PeekChar() == ']' {
		s.reader.AdvanceChar()
	}
	end := s.pos()
	text := s.slice(start, end)
	entry, ok := charclass.LookupLongName(name)
	if !ok {
		t := token.Token{Kind: token.ErrorUnsupportedToken, Text: text, Span: token.Span{Start: start, End: end}, Flags: s.makeFlags(startOffset)}
		s.addIssue("unsupported-operator", errors.Error, t.Span, "unrecognized long name \\[%s]", name)
		return t
	}
	if entry.Kind == token.Illegal {
		t := token.Token{Kind: token.ErrorUnsupportedToken, Text: text, Span: token.Span{Start: start, End: end}, Flags: s.makeFlags(startOffset)}
		s.addIssue("unsupported-operator", errors.Error, t.Span, "\\[%s] is not a standalone operator", name)
		return t
	}
	return token.Token{Kind: entry.Kind, Text: text, Span: token.Span{Start: start, End: end}, Flags: s.makeFlags(startOffset)}
}

// --- operators and patterns -------------------------------------------

// scanOperatorOrPattern matches the longest known ASCII operator
// spelling starting here (spec.md §4.3's maximal munch), special-casing
// the trailing-dot optional pattern `x_.` so the tokenizer never eats
// `_.` as one lexeme when it's actually the start of `_..`/`_...`
// (SPEC_FULL.md §3).
func (s *Scanner) scanOperatorOrPattern(startOffset int) token.Token {
	start := s.pos()
	remaining := s.src[startOffset:]

	for _, e := range asciiOperators {
		if len(e.text) > len(remaining) {
			continue
		}
		if string(remaining[:len(e.text)]) != e.text {
			continue
		}
		if e.text == "_." && len(remaining) >= 3 && remaining[2] == '.' {
			continue // "_.." belongs to Under + DotDot, not UnderDot + Dot
		}
		for i := 0; i < len(e.text); i++ {
			s.reader.AdvanceChar()
		}
		end := s.pos()
		return token.Token{Kind: e.kind, Text: e.text, Span: token.Span{Start: start, End: end}, Flags: s.makeFlags(startOffset)}
	}

	// Reached for an operator-start rune with no entry of its own here,
	// such as a lone '&', '|' or '@'.
	ch, span := s.reader.AdvanceChar()
	t := token.Token{Kind: token.ErrorUnhandledCharacter, Text: string(ch), Span: span}
	s.addIssue("unhandled-character", errors.Error, t.Span, "unhandled operator character %q", ch)
	return t
}

// --- stringify modes ----------------------------------------------------

// scanStringify consumes the next atomic run in tag- or file-stringify
// mode, bypassing normal lexical rules (spec.md §4.3).
func (s *Scanner) scanStringify() token.Token {
	mode := s.stringify
	s.stringify = NoStringify
	start := s.pos()
	startOffset := s.file.Offset(start)

	switch mode {
	case TagStringify:
		if s.reader.PeekChar() < 0 {
			end := s.pos()
			t := token.Token{Kind: token.ErrorExpectedTag, Span: token.Span{Start: start, End: end}}
			s.addIssue("expected-tag", errors.Error, t.Span, "expected a tag after '::' or '#'")
			return t
		}
		for isAtomicRunChar(s.reader.PeekChar()) {
			s.reader.AdvanceChar()
		}
	case FileStringify:
		if s.reader.PeekChar() < 0 {
			end := s.pos()
			t := token.Token{Kind: token.ErrorExpectedFile, Span: token.Span{Start: start, End: end}}
			s.addIssue("expected-file", errors.Error, t.Span, "expected a file path after '<<'/'>>'/'>>>'")
			return t
		}
		for s.reader.PeekChar() >= 0 && !charclass.IsWhitespace(s.reader.PeekChar()) && !charclass.IsNewline(s.reader.PeekChar()) {
			s.reader.AdvanceChar()
		}
	}
	end := s.pos()
	return token.Token{Kind: token.String, Text: s.slice(start, end), Span: token.Span{Start: start, End: end}, Flags: s.makeFlags(startOffset)}
}

func isAtomicRunChar(r rune) bool {
	return charclass.IsLetterlikeContinue(r) || r == '$' || r == '`'
}

// --- tail reparse -------------------------------------------------------

// ReparseUnterminated extends an unterminated string/comment token's
// span to end-of-input and re-materializes its text, preserving the
// "every byte appears in exactly one leaf" invariant (spec.md §4.5,
// §8 property 1). Nothing in this module calls it; syntax/parser's
// Tokenize applies its own tail pass.
func ReparseUnterminated(file *token.File, src []byte, t token.Token) token.Token {
	switch t.Kind {
	case token.ErrorUnterminatedString, token.ErrorUnterminatedComment, token.ErrorUnterminatedFileString:
	default:
		return t
	}
	end := file.Pos(len(src))
	t.Span.End = end
	t.Text = string(src[file.Offset(t.Span.Start):len(src)])
	return t
}
