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

package intern

import (
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/go-quicktest/qt"
)

func TestTableInternReturnsSameBackingString(t *testing.T) {
	var tbl Table
	a := tbl.Intern(strings.Clone("Plus"))
	b := tbl.Intern(strings.Clone("Plus"))
	qt.Assert(t, qt.Equals(a, b))
	qt.Assert(t, qt.Equals(unsafe.StringData(a), unsafe.StringData(b)))
}

func TestTableInternSafeForConcurrentUse(t *testing.T) {
	var tbl Table
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tbl.Intern("Times")
		}()
	}
	wg.Wait()
	qt.Assert(t, qt.Equals(tbl.Intern("Times"), "Times"))
}

func TestLocalInternReusesValue(t *testing.T) {
	var l Local
	a := l.Intern(strings.Clone("x"))
	b := l.Intern(strings.Clone("x"))
	qt.Assert(t, qt.Equals(a, b))
}
