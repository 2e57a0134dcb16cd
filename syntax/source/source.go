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

// Package source implements the byte/codepoint reader the tokenizer is
// built on: UTF-8 decoding, tab expansion, newline normalization, a
// leading-shebang policy, and unsafe-encoding detection (spec.md §4.1).
//
// It follows the shape of cue/scanner's rune-at-a-time next() loop
// (offset/rdOffset/ch fields, AddLine bookkeeping) but factors that loop
// out from token recognition so the tokenizer in syntax/scanner can
// stay focused on lexical families.
package source

import (
	"unicode/utf8"

	"github.com/exprsyntax/langparse/syntax/token"
)

const bom = 0xFEFF

// FirstLineBehavior governs how a leading `#!` shebang line is treated
// (spec.md §4.1, §6).
type FirstLineBehavior int

const (
	// NotScript treats a leading `#!` as ordinary source text.
	NotScript FirstLineBehavior = iota
	// Script unconditionally consumes and discards the first line.
	Script
	// Check consumes the first line only if it starts with `#!`.
	Check
)

// OOBEvent records one out-of-band occurrence noticed while reading,
// when Options.ComputeOutOfBand is enabled (spec.md §9).
type OOBEvent struct {
	Kind string // always "embedded-tab"; line continuations and embedded newlines are not recorded
	Pos  token.Pos
}

// OOBInfo accumulates OOBEvents for one Reader. No parse semantics
// depend on its contents either way; it exists purely for tooling that
// wants to know where these occurred.
type OOBInfo struct {
	Events []OOBEvent
}

func (o *OOBInfo) record(kind string, pos token.Pos) {
	if o == nil {
		return
	}
	o.Events = append(o.Events, OOBEvent{Kind: kind, Pos: pos})
}

// Options configures a Reader (spec.md §6).
type Options struct {
	TabWidth          int // ≥ 1, default 4
	FirstLine         FirstLineBehavior
	ComputeOutOfBand  bool
}

// DefaultOptions returns the spec's documented defaults.
func DefaultOptions() Options {
	return Options{TabWidth: 4, FirstLine: NotScript}
}

// Reader decodes a byte source one Unicode codepoint at a time,
// tracking line/column position and flagging unsafe encodings. It
// mirrors cue/scanner.Scanner's next()/ch/offset/rdOffset shape, split
// out as its own type so the tokenizer built on top of it only has to
// reason about characters, not bytes.
type Reader struct {
	file *token.File
	src  []byte
	opts Options
	oob  *OOBInfo

	ch       rune // current character, -1 at EOF
	offset   int  // byte offset of ch
	rdOffset int  // byte offset just past ch

	line   int // 1-based
	column int // 1-based

	// Unsafe is set the first time an UnsafeCharacterEncoding condition
	// is observed (invalid UTF-8, mid-stream BOM, stray surrogate).
	Unsafe    bool
	UnsafeMsg string
}

// NewReader builds a Reader over src, associated with file for position
// reporting. file.Size() must equal len(src).
func NewReader(file *token.File, src []byte, opts Options) *Reader {
	if opts.TabWidth < 1 {
		opts.TabWidth = 1
	}
	r := &Reader{
		file:   file,
		src:    src,
		opts:   opts,
		line:   1,
		column: 1,
	}
	if opts.ComputeOutOfBand {
		r.oob = &OOBInfo{}
	}
	r.next()
	if r.ch == bom {
		r.next() // BOM at very start of file is not unsafe.
	}
	r.consumeShebang()
	return r
}

// OutOfBand returns the accumulated OOBInfo, or nil if
// Options.ComputeOutOfBand was false.
func (r *Reader) OutOfBand() *OOBInfo { return r.oob }

func (r *Reader) consumeShebang() {
	if r.opts.FirstLine == NotScript {
		return
	}
	if r.opts.FirstLine == Check && !(r.ch == '#' && r.peekByte() == '!') {
		return
	}
	for r.ch != '\n' && r.ch >= 0 {
		r.next()
	}
	if r.ch == '\n' {
		r.next()
	}
}

func (r *Reader) peekByte() byte {
	if r.rdOffset < len(r.src) {
		return r.src[r.rdOffset]
	}
	return 0
}

// next decodes the next rune into r.ch, advancing offset/rdOffset and
// line/column, expanding tabs per spec.md §4.1:
// tab_width - (col-1) mod tab_width.
func (r *Reader) next() {
	if r.ch == '\n' {
		r.file.AddLine(r.offset + 1)
	}
	if r.rdOffset >= len(r.src) {
		r.offset = len(r.src)
		r.ch = -1
		return
	}
	r.offset = r.rdOffset
	ru, w := rune(r.src[r.rdOffset]), 1
	switch {
	case ru == 0:
		r.flagUnsafe("NUL byte in source")
	case ru >= utf8.RuneSelf:
		ru, w = utf8.DecodeRune(r.src[r.rdOffset:])
		switch {
		case ru == utf8.RuneError && w == 1:
			r.flagUnsafe("invalid UTF-8 encoding")
		case ru == bom && r.offset > 0:
			r.flagUnsafe("byte order mark mid-stream")
		case ru >= 0xD800 && ru <= 0xDFFF:
			r.flagUnsafe("stray UTF-16 surrogate fragment")
		}
	}
	r.rdOffset += w
	r.advancePosition(ru)
	r.ch = ru
}

func (r *Reader) advancePosition(ru rune) {
	switch ru {
	case '\n':
		r.line++
		r.column = 1
	case '\t':
		width := r.opts.TabWidth
		r.column += width - ((r.column - 1) % width)
		r.oob.record("embedded-tab", r.Pos())
	case '\r':
		// consumed as part of a \r\n pair by the caller's newline
		// handling; on its own it still resets the column.
		r.column = 1
	default:
		r.column++
	}
}

func (r *Reader) flagUnsafe(msg string) {
	if !r.Unsafe {
		r.Unsafe = true
		r.UnsafeMsg = msg
	}
}

// Pos returns the position of the current character.
func (r *Reader) Pos() token.Pos { return r.file.Pos(r.offset) }

// PeekChar returns the current character without advancing, and -1 at
// end of input.
func (r *Reader) PeekChar() rune { return r.ch }

// AdvanceChar returns the current character and its span, then
// advances to the next one, normalizing \r\n and lone \r to a single
// logical newline the same way the rest of the pipeline expects.
func (r *Reader) AdvanceChar() (rune, token.Span) {
	start := r.Pos()
	ch := r.ch
	if ch == '\r' {
		r.next()
		if r.ch == '\n' {
			r.next()
		}
		return '\n', token.Span{Start: start, End: r.Pos()}
	}
	r.next()
	return ch, token.Span{Start: start, End: r.Pos()}
}

// Position returns the reader's current offset as a Pos.
func (r *Reader) Position() token.Pos { return r.Pos() }

// AtEOF reports whether the reader has no more characters.
func (r *Reader) AtEOF() bool { return r.ch < 0 }
