package tclscan

import "fmt"

// StateID names the lexical state the scanner resumes in at the start of a
// line. This grammar has no multi-line constructs, so StateInitial is its
// only state, but the engine stays parameterized for lexers that need more.
type StateID int

const StateInitial StateID = 0

func stateMask(id StateID) uint32 { return 1 << uint(id) }

// Scanner is the line lexer. It holds the per-call cursor state as fields
// and is reset, not recreated, by every Scan call; one call must finish
// before the next starts, and concurrent lines need separate Scanners.
//
// The scanner never copies or mutates the line buffer. The returned tokens
// alias it, so the buffer must outlive every consumer of the list, and the
// list itself is recycled by the next Scan call on the same Scanner.
type Scanner struct {
	state       StateID
	buf         []byte
	windowStart int
	windowEnd   int
	pos         int
	marked      int
	atLineStart bool

	builder ListBuilder
}

func NewScanner() *Scanner {
	return &Scanner{}
}

// ScanLine lexes one full line (no trailing newline) and returns the head of
// its token list, ending in the End sentinel. docOffset is the absolute
// position of text[0] in the document and is baked into every token's Offset.
// An empty line yields the sentinel alone.
func (s *Scanner) ScanLine(text []byte, state StateID, docOffset int) *Token {
	return s.ScanWindow(text, 0, len(text), state, docOffset)
}

// ScanWindow is ScanLine over buf[start:end), for callers whose line is a
// sub-range of a larger backing array. It panics on a window outside the
// buffer's bounds: that is a caller bug, not scannable input.
func (s *Scanner) ScanWindow(buf []byte, start, end int, state StateID, docOffset int) *Token {
	if err := s.builder.StartLine(buf, start, end, docOffset-start); err != nil {
		panic(err)
	}
	s.state = state
	s.buf = buf
	s.windowStart = start
	s.windowEnd = end
	s.pos = start
	s.marked = start
	s.atLineStart = true

	active := stateMask(state)
	for s.pos < s.windowEnd {
		var best match
		for _, r := range ruleTable {
			if r.states&active == 0 {
				continue
			}
			// strictly greater keeps the earliest declared rule on ties
			if m := r.apply(s.buf, s.pos, s.windowEnd); m.n > best.n {
				best = m
			}
		}
		if best.n <= 0 {
			panic(fmt.Sprintf("tclscan: no rule matched at offset %d (state %d)", s.pos, s.state))
		}
		s.marked = s.pos + best.n
		s.builder.Emit(best.kind, s.pos, s.marked)
		s.atLineStart = false
		if best.act == actTerminateLine {
			break
		}
		s.pos = s.marked
	}
	return s.builder.Finish()
}
