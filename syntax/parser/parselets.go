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

// Parselets are data, not a cascade of type switches: prefixParselets and
// infixParselets map a token.Kind to the function that knows how to
// consume it. This mirrors how a Pratt parser is conventionally
// structured (cue/parser dispatches on token kind in a similar,
// if flatter, fashion via its own exprLevel table) and keeps
// precedence.go's table and this file's dispatch table as the two
// places the grammar's shape lives, rather than scattered across a
// single parseExpr mega-switch.
package parser

import (
	"github.com/exprsyntax/langparse/syntax/cst"
	"github.com/exprsyntax/langparse/syntax/token"
)

// prefixParselet consumes a token.Kind that can start an expression. p is
// the already-recognized leading token.
type prefixParselet func(p *parser, lead token.Token) cst.Node

// infixParselet continues parsing given a left-hand side already parsed
// and the operator token just peeked (not yet consumed). It returns the
// combined node.
type infixParselet func(p *parser, left cst.Node, op token.Token) cst.Node

// infixEntry pairs an infixParselet with the precedence the
// precedence-climbing loop compares against.
type infixEntry struct {
	prec     Precedence
	assoc    Associativity
	parselet infixParselet
}

var prefixParselets map[token.Kind]prefixParselet
var infixParselets map[token.Kind]infixEntry

func init() {
	prefixParselets = map[token.Kind]prefixParselet{
		token.Integer:  leafParselet,
		token.Real:     leafParselet,
		token.Rational: leafParselet,
		token.String:   leafParselet,
		token.Symbol:   leafParselet,

		token.OpenParen: groupParselet(token.CloseParen),
		token.OpenSquare: groupParselet(token.CloseSquare),
		token.OpenCurly:  groupParselet(token.CloseCurly),
		token.LessBar:    groupParselet(token.BarGreater),
		token.LeftAngleBracketLong:        groupParselet(token.RightAngleBracketLong),
		token.LeftCeilingLong:             groupParselet(token.RightCeilingLong),
		token.LeftFloorLong:               groupParselet(token.RightFloorLong),
		token.LeftDoubleBracketLong:       groupParselet(token.RightDoubleBracketLong),
		token.LeftBracketingBarLong:       groupParselet(token.RightBracketingBarLong),
		token.LeftDoubleBracketingBarLong: groupParselet(token.RightDoubleBracketingBarLong),
		token.LeftAssociationLong:         groupParselet(token.RightAssociationLong),

		token.Plus:     prefixOperatorParselet(PrecUnary),
		token.Minus:    prefixOperatorParselet(PrecUnary),
		token.Bang:     prefixOperatorParselet(PrecUnary),
		token.LongNameNot: prefixOperatorParselet(PrecUnary),
		token.PlusPlus:  prefixOperatorParselet(PrecUnary),
		token.MinusMinus: prefixOperatorParselet(PrecUnary),
		token.LongNameSqrt: prefixOperatorParselet(PrecUnary),
		token.LongNameMinusPlus: prefixOperatorParselet(PrecUnary),
		token.LongNamePlusMinus: prefixOperatorParselet(PrecUnary),
		token.LongNameDel:       prefixOperatorParselet(PrecUnary),
		token.LongNameIntegral:  integralParselet,

		token.Under:           patternParselet,
		token.UnderUnder:      patternParselet,
		token.UnderUnderUnder: patternParselet,
		token.Hash:            slotParselet,
		token.HashHash:        slotParselet,
		token.Percent:         outParselet,
		token.PercentPercent:  outParselet,
		token.SemiSemi:        spanPrefixParselet,

		token.Backtick: contextSymbolParselet,

		token.LessLess: fileStringifyPrefixParselet("Get"),
	}

	infixParselets = map[token.Kind]infixEntry{
		token.Equal:           {PrecCompoundAssign, RightAssoc, assignParselet("Set")},
		token.ColonEqual:      {PrecCompoundAssign, RightAssoc, assignParselet("SetDelayed")},
		token.PlusEqual:       {PrecCompoundAssign, RightAssoc, assignParselet("AddTo")},
		token.MinusEqual:      {PrecCompoundAssign, RightAssoc, assignParselet("SubtractFrom")},
		token.StarEqual:       {PrecCompoundAssign, RightAssoc, assignParselet("TimesBy")},
		token.SlashEqual:      {PrecCompoundAssign, RightAssoc, assignParselet("DivideBy")},

		token.Arrow:         {PrecRuleDelayed, RightAssoc, binaryParselet},
		token.RuleDelayed:   {PrecRuleDelayed, RightAssoc, binaryParselet},
		token.LongNameRule:        {PrecRuleDelayed, RightAssoc, binaryParselet},
		token.LongNameRuleDelayed: {PrecRuleDelayed, RightAssoc, binaryParselet},

		token.SlashDot: {PrecReplaceAll, LeftAssoc, binaryParselet},
		token.SlashAt:  {PrecReplaceAll, RightAssoc, binaryParselet},

		token.Colon: {PrecAlternative, NonAssoc, ternaryColonParselet},
		token.SlashColon: {PrecAlternative, NonAssoc, tagSetParselet},

		token.AmpAmp:      {PrecAnd, LeftAssoc, infixChainParselet},
		token.LongNameAnd: {PrecAnd, LeftAssoc, infixChainParselet},
		token.BarBar:      {PrecOr, LeftAssoc, infixChainParselet},
		token.LongNameOr:  {PrecOr, LeftAssoc, infixChainParselet},

		token.EqualEqual:     {PrecComparison, NonAssoc, comparisonChainParselet},
		token.BangEqual:      {PrecComparison, NonAssoc, comparisonChainParselet},
		token.Less:           {PrecComparison, NonAssoc, comparisonChainParselet},
		token.LessEqual:      {PrecComparison, NonAssoc, comparisonChainParselet},
		token.Greater:        {PrecComparison, NonAssoc, comparisonChainParselet},
		token.GreaterEqual:   {PrecComparison, NonAssoc, comparisonChainParselet},
		token.EqualEqualEqual: {PrecComparison, NonAssoc, comparisonChainParselet},
		token.LongNameNotEqual:      {PrecComparison, NonAssoc, comparisonChainParselet},
		token.LongNameLessEqual:     {PrecComparison, NonAssoc, comparisonChainParselet},
		token.LongNameGreaterEqual:  {PrecComparison, NonAssoc, comparisonChainParselet},

		token.LongNameElement:       {PrecSetRelation, NonAssoc, binaryParselet},
		token.LongNameNotElement:    {PrecSetRelation, NonAssoc, binaryParselet},
		token.LongNameUnion:         {PrecSetRelation, LeftAssoc, infixChainParselet},
		token.LongNameIntersection:  {PrecSetRelation, LeftAssoc, infixChainParselet},
		token.LongNameForAll:        {PrecSetRelation, NonAssoc, binaryParselet},
		token.LongNameExists:        {PrecSetRelation, NonAssoc, binaryParselet},
		token.LongNameNotExists:     {PrecSetRelation, NonAssoc, binaryParselet},

		token.SemiSemi: {PrecSpan, LeftAssoc, spanInfixParselet},

		token.Plus:  {PrecPlus, LeftAssoc, infixChainParselet},
		token.Minus: {PrecPlus, LeftAssoc, minusParselet},
		token.LongNamePlusMinus: {PrecPlus, LeftAssoc, infixChainParselet},
		token.LongNameMinusPlus: {PrecPlus, LeftAssoc, infixChainParselet},

		token.Star:  {PrecTimes, LeftAssoc, infixChainParselet},
		token.Slash: {PrecTimes, LeftAssoc, divideParselet},
		token.LongNameInvisibleTimes: {PrecTimes, LeftAssoc, infixChainParselet},
		token.LongNameCircleTimes:    {PrecTimes, LeftAssoc, infixChainParselet},
		token.LongNameCirclePlus:     {PrecTimes, LeftAssoc, infixChainParselet},

		token.Caret: {PrecPower, RightAssoc, binaryParselet},

		token.PlusPlus:   {PrecPostfix, NonAssoc, postfixParselet},
		token.MinusMinus: {PrecPostfix, NonAssoc, postfixParselet},
		token.Bang:       {PrecPostfix, NonAssoc, postfixParselet},
		token.BangBang:   {PrecPostfix, NonAssoc, postfixParselet},

		token.OpenSquare: {PrecCall, NonAssoc, callParselet(token.CloseSquare)},

		token.ColonColon: {PrecCall, NonAssoc, messageNameParselet},

		token.EqualDot: {PrecCompoundAssign, NonAssoc, unsetParselet},

		token.GreaterGreater:        {PrecCompoundAssign, NonAssoc, fileStringifyInfixParselet("Put")},
		token.GreaterGreaterGreater: {PrecCompoundAssign, NonAssoc, fileStringifyInfixParselet("PutAppend")},
	}
}

// infixPrecedence reports whether kind has an infix/postfix meaning and,
// if so, the precedence the climbing loop should compare against.
func infixPrecedence(kind token.Kind) (Precedence, bool) {
	e, ok := infixParselets[kind]
	if !ok {
		return 0, false
	}
	return e.prec, true
}
