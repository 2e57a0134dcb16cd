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

package literal

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestValidMantissa(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"123", true},
		{"123.456", true},
		{"0", true},
		{"", false},
		{"12.34.56", false},
		{"-5", true},
	}
	for _, c := range cases {
		qt.Check(t, qt.Equals(ValidMantissa(c.in), c.want), qt.Commentf("input %q", c.in))
	}
}

func TestValidBaseDigits(t *testing.T) {
	qt.Check(t, qt.IsTrue(ValidBaseDigits("ff", 16)))
	qt.Check(t, qt.IsFalse(ValidBaseDigits("fg", 16)))
	qt.Check(t, qt.IsTrue(ValidBaseDigits("101", 2)))
	qt.Check(t, qt.IsFalse(ValidBaseDigits("2", 2)))
	qt.Check(t, qt.IsFalse(ValidBaseDigits("", 10)))
	qt.Check(t, qt.IsFalse(ValidBaseDigits("0", 37)))
}

func TestValidExponent(t *testing.T) {
	qt.Check(t, qt.IsTrue(ValidExponent("10")))
	qt.Check(t, qt.IsTrue(ValidExponent("-10")))
	qt.Check(t, qt.IsTrue(ValidExponent("+10")))
	qt.Check(t, qt.IsFalse(ValidExponent("")))
	qt.Check(t, qt.IsFalse(ValidExponent("1.5")))
}

func TestValidPrecisionOrAccuracy(t *testing.T) {
	qt.Check(t, qt.IsTrue(ValidPrecisionOrAccuracy("20")))
	qt.Check(t, qt.IsFalse(ValidPrecisionOrAccuracy("-20")))
	qt.Check(t, qt.IsFalse(ValidPrecisionOrAccuracy("")))
}
