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

// Package quirks declares the abstraction-stage settings that pick
// between a strict desugaring and a legacy-compatible variant (spec.md
// §6's Configuration section). Settings is loaded from YAML with
// gopkg.in/yaml.v3, the same library the teacher uses for its own
// layered configuration loading.
package quirks

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Settings switches individual abstraction-stage behaviors. The zero
// value turns every switch off; Default returns the settings described
// in spec.md §4.7.
type Settings struct {
	// AllowLegacyMessageName is loaded and stored but read by no code in
	// this module, so setting it changes nothing: a `::` at the end of
	// the input always yields an ErrorExpectedTag token.
	AllowLegacyMessageName bool `yaml:"allowLegacyMessageName"`

	// CollapseRedundantInequality is loaded and stored but read by no
	// code in this module, so setting it changes nothing: a chain such as
	// `a<b<b<c` keeps every operand.
	CollapseRedundantInequality bool `yaml:"collapseRedundantInequality"`

	// TreatUnderDotAsOptionalDefault selects how the two-operand pattern
	// form `a:b` desugars: Optional[a,b] when true, Pattern[a,b] when
	// false. The `x_.` form itself is not parsed as a pattern: the parser
	// has no parselet for the `_.` token.
	TreatUnderDotAsOptionalDefault bool `yaml:"treatUnderDotAsOptionalDefault"`
}

// Default returns the strict settings spec.md §4.7 describes, with
// TreatUnderDotAsOptionalDefault on, so `a:b` desugars to Optional[a,b].
func Default() Settings {
	return Settings{TreatUnderDotAsOptionalDefault: true}
}

// Load parses YAML-encoded settings, starting from Default() so an
// input that only overrides a couple of fields still gets sane values
// for the rest.
func Load(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("quirks: parsing settings: %w", err)
	}
	return s, nil
}
