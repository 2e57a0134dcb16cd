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

// Package literal validates the text of number tokens the scanner
// recognizes. Numeric evaluation is explicitly out of scope (spec.md
// §9: "parsing into a numeric value is out of scope"); this package
// only decides whether a candidate mantissa/exponent is well-formed
// enough for the scanner to emit Integer/Real/Rational rather than
// Error_Number. The token's Text remains the source of truth.
package literal

import (
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// decimalCtx is used purely as a validator: NewFromString reports a
// parse error for a malformed decimal without this package ever
// reading back the resulting value. Precision 0 means unlimited, since
// validation never rounds.
var decimalCtx = func() *apd.Context {
	c := apd.BaseContext
	c.Precision = 0
	return &c
}()

// ValidMantissa reports whether mantissa is a syntactically valid
// decimal mantissa (an optional sign, digits, an optional '.', more
// digits) with underscores already stripped by the caller. An empty
// mantissa is invalid.
func ValidMantissa(mantissa string) bool {
	if mantissa == "" {
		return false
	}
	for i, r := range mantissa {
		if i == 0 && (r == '+' || r == '-') {
			continue
		}
		if r != '.' && (r < '0' || r > '9') {
			return false
		}
	}
	d, _, err := decimalCtx.NewFromString(mantissa)
	if err != nil {
		return false
	}
	return d.Form != apd.NaNSignaling && d.Form != apd.NaN
}

// ValidBaseDigits reports whether digits are all valid in the given
// base (2..36), per the `base^^digits` number syntax (spec.md §4.3).
// base must already have been range-checked by the caller (2 <= base
// <= 36); out-of-range bases are rejected outright.
func ValidBaseDigits(digits string, base int) bool {
	if digits == "" || base < 2 || base > 36 {
		return false
	}
	for _, r := range digits {
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
		if v >= base {
			return false
		}
	}
	return true
}

// ValidExponent reports whether a `*^n` exponent's digit run n (with an
// optional leading sign) is syntactically a valid integer exponent and
// doesn't overflow a reasonable range for this implementation.
func ValidExponent(exp string) bool {
	exp = strings.TrimPrefix(exp, "+")
	neg := strings.HasPrefix(exp, "-")
	if neg {
		exp = exp[1:]
	}
	if exp == "" {
		return false
	}
	for _, r := range exp {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(exp) <= 9 // generous bound; apd itself handles the real range
}

// ValidPrecisionOrAccuracy reports whether a backtick-precision or
// double-backtick-accuracy marker's digit run is a valid non-negative
// decimal (spec.md §4.3's `` `prec `` / `` ``acc ``).
func ValidPrecisionOrAccuracy(digits string) bool {
	if digits == "" {
		return false
	}
	d, _, err := decimalCtx.NewFromString(digits)
	if err != nil {
		return false
	}
	return !d.Negative
}
