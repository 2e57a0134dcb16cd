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

// Package parser implements the precedence-climbing CST parser
// (component C4/C5, spec.md §4.4-§4.5) on top of syntax/scanner's token
// stream, and the CST aggregation pass (component C6, spec.md §4.6).
//
// The parser's shape — a context stack of open groupers bounding
// recursion depth, a table of parselets dispatched by token.Kind rather
// than a type-switch cascade, explicit recovery nodes instead of panics
// — is grounded on cue/parser.parser, generalized from CUE's
// value-literal grammar to this package's operator-precedence grammar.
package parser

import (
	"github.com/exprsyntax/langparse/syntax/charclass"
	"github.com/exprsyntax/langparse/syntax/cst"
	"github.com/exprsyntax/langparse/syntax/errors"
	"github.com/exprsyntax/langparse/syntax/scanner"
	"github.com/exprsyntax/langparse/syntax/source"
	"github.com/exprsyntax/langparse/syntax/token"
)

// maxContextDepth bounds the context stack pushed by groupers (a call's
// argument list included), so a pathological input like a run of ten thousand
// open parens is recovered as a single StackOverflow node instead of
// exhausting the Go call stack (spec.md §4.5, §7 scenario 6).
const maxContextDepth = 512

// frameKind distinguishes the context stack's entries for diagnostics.
type frameKind int

const (
	frameGroup frameKind = iota
	frameCall
	frameTernary
)

type frame struct {
	kind frameKind
	open token.Token
}

// parser holds state for one parse. It is not reentrant; callers needing
// concurrent parses create one per goroutine, same as cue/parser.
type parser struct {
	scan   *scanner.Scanner
	file   *token.File
	issues *errors.List
	opts   *config

	stack []frame

	abortCheck func() bool
}

func newParser(file *token.File, src []byte, issues *errors.List, opts *config) *parser {
	s := &scanner.Scanner{}
	s.Init(file, src, issues, source.Options{
		TabWidth:  opts.tabWidth,
		FirstLine: opts.firstLine,
	})
	return &parser{
		scan:       s,
		file:       file,
		issues:     issues,
		opts:       opts,
		abortCheck: opts.abortCheck,
	}
}

func (p *parser) pushFrame(k frameKind, open token.Token) bool {
	if len(p.stack) >= maxContextDepth {
		return false
	}
	p.stack = append(p.stack, frame{k, open})
	p.scan.EnterGroup()
	return true
}

func (p *parser) popFrame() {
	if len(p.stack) == 0 {
		return
	}
	p.stack = p.stack[:len(p.stack)-1]
	p.scan.LeaveGroup()
}

func (p *parser) aborted() bool {
	return p.abortCheck != nil && p.abortCheck()
}

func (p *parser) addIssue(tag string, sev errors.Severity, span token.Span, format string, args ...interface{}) {
	if p.issues == nil {
		return
	}
	p.issues.AddNewf(tag, sev, span, format, args...)
}

// reportUnsafeEncoding appends a fatal issue if the reader flagged the
// input unsafe anywhere while scanning, not just at the first byte.
// Callers check this only after scanning has run to completion, since
// the condition (a mid-stream BOM, invalid UTF-8 past the first rune)
// can surface arbitrarily far into the input (spec.md §4.1, §7).
func (p *parser) reportUnsafeEncoding() {
	if unsafe, msg := p.scan.UnsafeEncoding(); unsafe {
		p.addIssue("unsafe-character-encoding", errors.Fatal, token.Span{}, "unsafe character encoding: %s", msg)
	}
}

// peekSignificant returns the next token that isn't whitespace, a
// comment, or an internal newline, without consuming it; those carry no
// CST shape of their own once aggregation runs (spec.md §4.6), but the
// scanner doesn't drop them on its own since a lossless caller may want
// them (Tokenize returns them, see interface.go).
func (p *parser) peekSignificant() token.Token {
	for {
		t := p.scan.PeekToken()
		switch t.Kind {
		case token.Whitespace, token.Comment, token.InternalNewline:
			p.scan.NextToken()
			continue
		}
		return t
	}
}

func (p *parser) nextSignificant() token.Token {
	t := p.peekSignificant()
	p.scan.NextToken()
	return t
}

// parseExpr is the precedence-climbing core (spec.md §4.4): parse a
// prefix term, then repeatedly fold in infix/postfix operators whose
// precedence is at least minPrec, inserting implicit multiplication
// between two juxtaposed operands that have no operator of their own
// (spec.md §4.5).
func (p *parser) parseExpr(minPrec Precedence) cst.Node {
	if p.aborted() {
		return p.errorNode(cst.ExpectedOperand, nil, p.here())
	}

	lead := p.nextSignificant()
	left := p.parsePrefix(lead)

	for {
		if p.aborted() {
			return left
		}
		op := p.peekSignificant()

		if p.isAdjacentPattern(left, op) {
			p.scan.NextToken()
			left = namedPatternParselet(p, left, op)
			continue
		}

		if entry, ok := infixParselets[op.Kind]; ok {
			if entry.prec < minPrec {
				break
			}
			p.scan.NextToken()
			left = entry.parselet(p, left, op)
			continue
		}

		if p.startsImplicitOperand(op) {
			if PrecTimes < minPrec {
				break
			}
			at := left.End()
			synth := token.NewImplicitTimes(at)
			right := p.parseExpr(PrecTimes + 1)
			left = &cst.Infix{Op: synth, Children: []cst.Node{left, right}, Bounds: cst.Cover(left, right)}
			continue
		}

		break
	}
	return left
}

// startsImplicitOperand reports whether tok can begin a new operand with
// no operator joining it to the previous one — the condition under
// which implicit multiplication is inserted (spec.md §4.5). Only a
// prefix-capable, non-infix token juxtaposed without an intervening
// operator qualifies; a token that is itself exclusively infix (like a
// bare `,`) never does.
func (p *parser) startsImplicitOperand(tok token.Token) bool {
	if tok.Kind == token.EndOfFile || tok.Kind.IsCloser() || tok.Kind == token.Comma || tok.Kind == token.Semi || tok.Kind == token.ToplevelNewline {
		return false
	}
	_, isInfix := infixParselets[tok.Kind]
	_, isPrefix := prefixParselets[tok.Kind]
	return isPrefix && !isInfix
}

// isAdjacentPattern reports whether left is a bare symbol immediately
// followed (no intervening whitespace) by an underscore pattern marker
// — `x_`, `x__`, `x___` — which names the pattern rather than implicitly
// multiplying the symbol by a separate blank (SPEC_FULL.md §3). Only
// adjacency distinguishes `x_` (one named pattern) from `x _` (implicit
// multiplication of x and a blank), so this checks FollowedBySpace on
// the underscore token itself.
func (p *parser) isAdjacentPattern(left cst.Node, tok token.Token) bool {
	switch tok.Kind {
	case token.Under, token.UnderUnder, token.UnderUnderUnder:
	default:
		return false
	}
	if tok.Flags.Has(token.FollowedBySpace) {
		return false
	}
	leaf, ok := left.(*cst.Leaf)
	return ok && leaf.Tok.Kind == token.Symbol
}

// namedPatternParselet consumes the underscore marker (already peeked,
// not yet matched against a prefix table entry) and wraps it with the
// symbol name already parsed into left, producing the same Compound
// shape patternParselet builds for a bare blank but carrying the name
// as an extra leading child (SPEC_FULL.md §3).
func namedPatternParselet(p *parser, left cst.Node, under token.Token) cst.Node {
	tokens := []token.Token{under}
	children := []cst.Node{left}
	peek := p.scan.PeekToken()
	if peek.Kind == token.Symbol {
		head := p.nextSignificant()
		tokens = append(tokens, head)
		children = append(children, &cst.Leaf{Tok: head})
	}
	tag := "NamedBlank"
	switch under.Kind {
	case token.UnderUnder:
		tag = "NamedBlankSequence"
	case token.UnderUnderUnder:
		tag = "NamedBlankNullSequence"
	}
	return &cst.Compound{Tag: tag, Tokens: tokens, Children: children, Bounds: cst.Cover(children...)}
}

func (p *parser) here() token.Span {
	t := p.scan.PeekToken()
	return token.Span{Start: t.Span.Start, End: t.Span.Start}
}

func (p *parser) parsePrefix(lead token.Token) cst.Node {
	if fn, ok := prefixParselets[lead.Kind]; ok {
		return fn(p, lead)
	}
	if lead.Kind.IsError() {
		return &cst.Leaf{Tok: lead}
	}
	switch lead.Kind {
	case token.LongNameLimit, token.LongNameMaxLimit, token.LongNameMinLimit, token.LongNameAutoLeftMatch, token.LongNameAutoRightMatch:
		p.addIssue("unsupported-operator", errors.Error, lead.Span, "unsupported token %q", lead.Text)
		return &cst.SyntaxError{Kind: cst.UnsupportedToken, Children: []cst.Node{&cst.Leaf{Tok: lead}}, Bounds: lead.Span}
	}
	if lead.Kind.IsCloser() {
		p.addIssue("unexpected-closer", errors.Error, lead.Span, "unexpected closing token %q", lead.Text)
		return &cst.SyntaxError{Kind: cst.UnexpectedCloser, Bounds: lead.Span}
	}
	if lead.Kind == token.EndOfFile {
		p.addIssue("expected-operand", errors.Error, lead.Span, "expected an expression, found end of input")
		return &cst.SyntaxError{Kind: cst.ExpectedOperand, Bounds: lead.Span}
	}
	p.addIssue("expected-operand", errors.Error, lead.Span, "expected an expression, found %q", lead.Text)
	return &cst.SyntaxError{Kind: cst.ExpectedOperand, Children: []cst.Node{&cst.Leaf{Tok: lead}}, Bounds: lead.Span}
}

func (p *parser) errorNode(kind cst.SyntaxErrorKind, children []cst.Node, span token.Span) cst.Node {
	return &cst.SyntaxError{Kind: kind, Children: children, Bounds: span}
}

// -----------------------------------------------------------------------
// leaf, groups, calls

func leafParselet(p *parser, lead token.Token) cst.Node {
	return &cst.Leaf{Tok: lead}
}

// groupParselet returns a prefixParselet for a balanced bracket pair
// opened by the token that triggered it, matching close. Recovery
// follows spec.md §4.5: a premature closer belonging to an outer frame
// yields GroupMissingCloser; running out of input yields
// UnterminatedGroup.
func groupParselet(close token.Kind) prefixParselet {
	return func(p *parser, open token.Token) cst.Node {
		if !p.pushFrame(frameGroup, open) {
			p.addIssue("stack-overflow", errors.Fatal, open.Span, "maximum nesting depth exceeded")
			return &cst.SyntaxError{Kind: cst.StackOverflow, Bounds: open.Span}
		}
		defer p.popFrame()

		var children []cst.Node
		var commas []token.Token

		for {
			peek := p.peekSignificant()
			if peek.Kind == close {
				closeTok := p.nextSignificant()
				return &cst.Group{Open: open, Children: children, Commas: commas, Close: closeTok, Bounds: token.Span{Start: open.Span.Start, End: closeTok.Span.End}}
			}
			if peek.Kind == token.EndOfFile {
				bounds := token.Span{Start: open.Span.Start, End: peek.Span.Start}
				p.addIssue("unterminated-group", errors.Fatal, bounds, "group opened with %q is never closed", open.Text)
				return &cst.UnterminatedGroup{Open: open, Children: children, Commas: commas, Bounds: bounds}
			}
			if peek.Kind.IsCloser() {
				bounds := token.Span{Start: open.Span.Start, End: peek.Span.Start}
				p.addIssue("mismatched-closer", errors.Error, peek.Span, "expected closing %q before %q", close.String(), peek.Text)
				return &cst.GroupMissingCloser{Open: open, Children: children, Commas: commas, Bounds: bounds}
			}
			if peek.Kind == token.Comma {
				// leading/repeated comma: synthesize an empty element so
				// `{1,,2}` preserves an arg vector slot per spec.md §4.6.
				children = append(children, &cst.Leaf{Tok: token.Token{Kind: token.Illegal, Span: token.Span{Start: peek.Span.Start, End: peek.Span.Start}, Flags: token.Synthetic}})
				commas = append(commas, p.nextSignificant())
				continue
			}

			children = append(children, p.parseExpr(LowestPrecedence))

			next := p.peekSignificant()
			if next.Kind == token.Comma {
				commas = append(commas, p.nextSignificant())
				continue
			}
		}
	}
}

// callParselet handles `head[args]`: the argument list is
// itself a Group so separators stay lossless, wrapped in a Call that
// remembers the head (spec.md §3).
func callParselet(close token.Kind) infixParselet {
	return func(p *parser, head cst.Node, open token.Token) cst.Node {
		argsNode := groupParselet(close)(p, open)
		group, ok := argsNode.(*cst.Group)
		if !ok {
			// recovery node in place of the group; still wrap it so the
			// head/child relationship is visible to the aggregator.
			return &cst.Call{Head: head, Args: &cst.Group{Open: open, Bounds: argsNode.Span()}, Bounds: cst.Cover(head, argsNode)}
		}
		return &cst.Call{Head: head, Args: group, Bounds: cst.Cover(head, group)}
	}
}

// -----------------------------------------------------------------------
// prefix operators

func prefixOperatorParselet(prec Precedence) prefixParselet {
	return func(p *parser, op token.Token) cst.Node {
		child := p.parseExpr(prec)
		return &cst.Prefix{Op: op, Child: child, Bounds: cst.Cover(&cst.Leaf{Tok: op}, child)}
	}
}

// integralParselet handles `\[Integral] f \[DifferentialD] x`: the
// differential operator binds its operand tighter than the surrounding
// addition so `\[Integral] x + 1 \[DifferentialD] x` parses as
// `\[Integral] (x+1) \[DifferentialD] x`, matching the original
// notation's convention (SPEC_FULL.md §3, grounded on
// original_source/src/parse/token_parselets.rs's IntegralParselet).
func integralParselet(p *parser, lead token.Token) cst.Node {
	body := p.parseExpr(PrecPlus)
	peek := p.peekSignificant()
	if peek.Kind == token.LongNameDifferentialD {
		dTok := p.nextSignificant()
		variable := p.parseExpr(PrecUnary)
		dNode := &cst.Prefix{Op: dTok, Child: variable, Bounds: cst.Cover(&cst.Leaf{Tok: dTok}, variable)}
		return &cst.Compound{Tag: "Integrate", Tokens: []token.Token{lead, dTok}, Children: []cst.Node{body, dNode}, Bounds: cst.Cover(&cst.Leaf{Tok: lead}, dNode)}
	}
	return &cst.Prefix{Op: lead, Child: body, Bounds: cst.Cover(&cst.Leaf{Tok: lead}, body)}
}

// -----------------------------------------------------------------------
// patterns, slots, percent, message names

// patternParselet recognizes `_`, `__`, `___`, optionally followed by a
// head symbol (`_Integer`), producing one Compound node
// (SPEC_FULL.md §3).
func patternParselet(p *parser, lead token.Token) cst.Node {
	tokens := []token.Token{lead}
	var children []cst.Node
	peek := p.scan.PeekToken()
	if peek.Kind == token.Symbol {
		head := p.nextSignificant()
		tokens = append(tokens, head)
		children = append(children, &cst.Leaf{Tok: head})
	}
	bounds := token.Span{Start: lead.Span.Start, End: tokens[len(tokens)-1].Span.End}
	tag := "Blank"
	switch lead.Kind {
	case token.UnderUnder:
		tag = "BlankSequence"
	case token.UnderUnderUnder:
		tag = "BlankNullSequence"
	}
	return &cst.Compound{Tag: tag, Tokens: tokens, Children: children, Bounds: bounds}
}

// slotParselet recognizes `#`, `#n`, `#name`, `##`, `##n` (SPEC_FULL.md
// §3). A name argument is tag-stringified the same way `::`'s tag is
// (spec.md §4.3, §4.7: `#name` desugars to `Slot["name"]`, a string,
// not a bare symbol). The decision between the numeric and named forms
// has to happen before either is scanned, since requesting
// tag-stringify mode only affects the scanner's next token.
func slotParselet(p *parser, lead token.Token) cst.Node {
	tokens := []token.Token{lead}
	var children []cst.Node
	switch next := p.scan.PeekRune(); {
	case charclass.IsDigit(next):
		arg := p.nextSignificant()
		tokens = append(tokens, arg)
		children = append(children, &cst.Leaf{Tok: arg})
	case charclass.IsLetterlikeStart(next):
		p.scan.RequestTagStringify()
		arg := p.nextSignificant()
		tokens = append(tokens, arg)
		children = append(children, &cst.Leaf{Tok: arg})
	}
	tag := "Slot"
	if lead.Kind == token.HashHash {
		tag = "SlotSequence"
	}
	return &cst.Compound{Tag: tag, Tokens: tokens, Children: children, Bounds: token.Span{Start: lead.Span.Start, End: tokens[len(tokens)-1].Span.End}}
}

func outParselet(p *parser, lead token.Token) cst.Node {
	tokens := []token.Token{lead}
	var children []cst.Node
	peek := p.scan.PeekToken()
	if peek.Kind == token.Integer {
		arg := p.nextSignificant()
		tokens = append(tokens, arg)
		children = append(children, &cst.Leaf{Tok: arg})
	}
	tag := "Out"
	if lead.Kind == token.PercentPercent {
		tag = "Out2"
	}
	return &cst.Compound{Tag: tag, Tokens: tokens, Children: children, Bounds: token.Span{Start: lead.Span.Start, End: tokens[len(tokens)-1].Span.End}}
}

func contextSymbolParselet(p *parser, lead token.Token) cst.Node {
	return &cst.Leaf{Tok: lead}
}

func spanPrefixParselet(p *parser, lead token.Token) cst.Node {
	right := p.parseExpr(PrecSpan + 1)
	return &cst.Prefix{Op: lead, Child: right, Bounds: cst.Cover(&cst.Leaf{Tok: lead}, right)}
}

// messageNameParselet recognizes `sym::tag` (SPEC_FULL.md §3's
// MessageName desugaring target).
func messageNameParselet(p *parser, left cst.Node, op token.Token) cst.Node {
	p.scan.RequestTagStringify()
	tag := p.nextSignificant()
	return &cst.Compound{Tag: "MessageName", Tokens: []token.Token{op, tag}, Children: []cst.Node{left, &cst.Leaf{Tok: tag}}, Bounds: cst.Cover(left, &cst.Leaf{Tok: tag})}
}

// -----------------------------------------------------------------------
// binary / infix-chain / comparison-chain

func binaryParselet(p *parser, left cst.Node, op token.Token) cst.Node {
	entry := infixParselets[op.Kind]
	minRight := entry.prec
	if entry.assoc == LeftAssoc {
		minRight++
	}
	right := p.parseExpr(minRight)
	return &cst.Binary{Op: op, LHS: left, RHS: right, Bounds: cst.Cover(left, right)}
}

// infixChainParselet flattens a run of the same associative operator
// into one n-ary Infix node (spec.md §4.5): `a+b+c` becomes one Infix
// with three children rather than nested Binary nodes, so the
// abstracter doesn't have to re-flatten a left-leaning tree.
func infixChainParselet(p *parser, left cst.Node, op token.Token) cst.Node {
	entry := infixParselets[op.Kind]
	children := []cst.Node{left}
	for {
		right := p.parseExpr(entry.prec + 1)
		children = append(children, right)
		peek := p.peekSignificant()
		if peek.Kind != op.Kind {
			break
		}
		p.scan.NextToken()
	}
	return &cst.Infix{Op: op, Children: children, Bounds: cst.Cover(children...)}
}

// comparisonChainParselet implements inequality chaining (spec.md
// §4.5): `a < b <= c` parses as one Infix node recording each operator
// between its neighbors in Ops, rather than `(a<b) <= c`, so later
// abstraction can decide the chain's overall truth-combinator shape.
func comparisonChainParselet(p *parser, left cst.Node, op token.Token) cst.Node {
	children := []cst.Node{left}
	ops := []token.Token{op}
	for {
		right := p.parseExpr(PrecComparison + 1)
		children = append(children, right)
		peek := p.peekSignificant()
		entry, ok := infixParselets[peek.Kind]
		if !ok || entry.prec != PrecComparison {
			break
		}
		ops = append(ops, p.nextSignificant())
	}
	return &cst.Infix{Ops: ops, Children: children, Bounds: cst.Cover(children...)}
}

// minusParselet special-cases subtraction so a chain `a-b-c` still
// flattens via infixChainParselet; the abstracter is what turns each
// non-leading term into `Times(-1, term)` (spec.md §4.7).
func minusParselet(p *parser, left cst.Node, op token.Token) cst.Node {
	return infixChainParselet(p, left, op)
}

func divideParselet(p *parser, left cst.Node, op token.Token) cst.Node {
	return binaryParselet(p, left, op)
}

func postfixParselet(p *parser, left cst.Node, op token.Token) cst.Node {
	return &cst.Postfix{Op: op, Child: left, Bounds: cst.Cover(left, &cst.Leaf{Tok: op})}
}

func spanInfixParselet(p *parser, left cst.Node, op token.Token) cst.Node {
	return infixChainParselet(p, left, op)
}

// -----------------------------------------------------------------------
// assignment, ternary colon, tag-set three-way continuation

func assignParselet(tag string) infixParselet {
	return func(p *parser, left cst.Node, op token.Token) cst.Node {
		right := p.parseExpr(PrecCompoundAssign)
		return &cst.Compound{Tag: tag, Tokens: []token.Token{op}, Children: []cst.Node{left, right}, Bounds: cst.Cover(left, right)}
	}
}

// ternaryColonParselet handles the pattern-default `a:b` two-operand
// form and, when a second `:` follows, the three-operand `a:b:c`
// alternative-pattern continuation (SPEC_FULL.md §3).
func ternaryColonParselet(p *parser, left cst.Node, op token.Token) cst.Node {
	mid := p.parseExpr(PrecAlternative + 1)
	peek := p.peekSignificant()
	if peek.Kind != token.Colon {
		return &cst.Binary{Op: op, LHS: left, RHS: mid, Bounds: cst.Cover(left, mid)}
	}
	p.nextSignificant()
	last := p.parseExpr(PrecAlternative + 1)
	return &cst.Ternary{Op: op, A: left, B: mid, C: last, Bounds: cst.Cover(left, last)}
}

// tagSetParselet handles the three-way `/:lhs=rhs`, `/:lhs:=rhs`,
// `/:lhs=.` continuations that desugar to TagSet/TagSetDelayed/TagUnset;
// a `/:lhs` followed by none of the three also becomes TagUnset
// (SPEC_FULL.md §3, grounded on
// original_source/src/parse/token_parselets.rs's TagParselet).
func tagSetParselet(p *parser, left cst.Node, op token.Token) cst.Node {
	tagExpr := p.parseExpr(PrecAlternative + 1)
	peek := p.peekSignificant()
	switch peek.Kind {
	case token.Equal:
		eq := p.nextSignificant()
		rhs := p.parseExpr(PrecCompoundAssign)
		return &cst.Compound{Tag: "TagSet", Tokens: []token.Token{op, eq}, Children: []cst.Node{left, tagExpr, rhs}, Bounds: cst.Cover(left, rhs)}
	case token.ColonEqual:
		eq := p.nextSignificant()
		rhs := p.parseExpr(PrecCompoundAssign)
		return &cst.Compound{Tag: "TagSetDelayed", Tokens: []token.Token{op, eq}, Children: []cst.Node{left, tagExpr, rhs}, Bounds: cst.Cover(left, rhs)}
	case token.EqualDot:
		dot := p.nextSignificant()
		return &cst.Compound{Tag: "TagUnset", Tokens: []token.Token{op, dot}, Children: []cst.Node{left, tagExpr}, Bounds: cst.Cover(left, &cst.Leaf{Tok: dot})}
	default:
		return &cst.Compound{Tag: "TagUnset", Tokens: []token.Token{op}, Children: []cst.Node{left, tagExpr}, Bounds: cst.Cover(left, tagExpr)}
	}
}

// unsetParselet handles the bare `x =.` form (spec.md §4.4's
// Equal/ColonEqual "=. trailing dot" handling): no right-hand side
// follows the trailing-dot equals, unlike ordinary `x = y`.
func unsetParselet(p *parser, left cst.Node, op token.Token) cst.Node {
	return &cst.Compound{Tag: "Unset", Tokens: []token.Token{op}, Children: []cst.Node{left}, Bounds: cst.Cover(left, &cst.Leaf{Tok: op})}
}

// fileStringifyPrefixParselet handles `<<path` (Get): the path runs to
// the next whitespace and is tokenized as a string regardless of its
// characters (spec.md §4.3's file-stringify mode).
func fileStringifyPrefixParselet(tag string) prefixParselet {
	return func(p *parser, lead token.Token) cst.Node {
		p.scan.RequestFileStringify()
		path := p.nextSignificant()
		return &cst.Compound{Tag: tag, Tokens: []token.Token{lead, path}, Children: []cst.Node{&cst.Leaf{Tok: path}}, Bounds: cst.Cover(&cst.Leaf{Tok: lead}, &cst.Leaf{Tok: path})}
	}
}

// fileStringifyInfixParselet handles `expr>>path` (Put) and
// `expr>>>path` (PutAppend), the written forms of file-stringify mode.
func fileStringifyInfixParselet(tag string) infixParselet {
	return func(p *parser, left cst.Node, op token.Token) cst.Node {
		p.scan.RequestFileStringify()
		path := p.nextSignificant()
		return &cst.Compound{Tag: tag, Tokens: []token.Token{op, path}, Children: []cst.Node{left, &cst.Leaf{Tok: path}}, Bounds: cst.Cover(left, &cst.Leaf{Tok: path})}
	}
}
