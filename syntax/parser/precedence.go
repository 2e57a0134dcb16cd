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

package parser

// Precedence orders the binding power of infix/postfix operators, used by
// the precedence-climbing loop in parser.go (spec.md §4.4). Higher binds
// tighter. Levels are spaced by 10 so a later table-data change can
// insert an intermediate level without renumbering everything else —
// the same spacing trick cue/parser's own token-to-precedence table
// uses for its operator classes.
type Precedence int

const (
	LowestPrecedence Precedence = 0

	PrecCompoundAssign Precedence = 10 // = := += -= *= /= =. >> >>>
	PrecRuleDelayed    Precedence = 20 // :> ->
	PrecReplaceAll     Precedence = 30 // /. /@
	PrecAlternative    Precedence = 40 // : /:
	PrecOr             Precedence = 50 // || \[Or]
	PrecAnd            Precedence = 60 // && \[And]
	PrecNot            Precedence = 70 // ! \[Not] (prefix, but reserved for symmetry)
	PrecComparison     Precedence = 80 // == != < <= > >= === chains
	PrecSetRelation    Precedence = 90 // \[Element] \[NotElement] \[Union] \[Intersection]
	PrecSpan           Precedence = 100 // ;;
	PrecPlus           Precedence = 110 // + - \[PlusMinus] \[MinusPlus]
	PrecTimes          Precedence = 120 // * / \[InvisibleTimes] implicit multiplication
	PrecPower          Precedence = 130 // ^
	PrecUnary          Precedence = 140 // unary - + !
	PrecPostfix        Precedence = 150 // ++ -- ! (factorial) !!
	PrecCall           Precedence = 160 // f[...] :: highest: applied before any infix reading
)

// Associativity distinguishes how a chain of the same operator nests.
type Associativity int

const (
	// LeftAssoc means `a op b op c` flattens left to right, and is what
	// chain flattening (spec.md §4.5) folds into one Infix node.
	LeftAssoc Associativity = iota
	// RightAssoc means `a op b op c` groups as `a op (b op c)` — used
	// by the compound-assignment family (binding the rightmost
	// assignment first), by the rule arrows, and by `/@` and `^`.
	RightAssoc
	// NonAssoc means the operator is never flattened into a chain.
	// binaryParselet parses a NonAssoc operator's right operand at the
	// operator's own precedence, so a second occurrence nests to the
	// right, the same as RightAssoc; no issue is raised for it.
	NonAssoc
)
