package tclscan

import "errors"

// ErrInvalidWindow is returned by StartLine when the scan window does not
// fit inside the line buffer. Hitting it means a caller bug, not bad input.
var ErrInvalidWindow = errors.New("tclscan: scan window out of buffer bounds")

const tokensPerChunk = 64

// ListBuilder accumulates one line worth of tokens into a singly linked
// list. Token records live in fixed-size chunks that the builder keeps
// between lines, so once the chunks are warm Emit does not allocate.
// A returned list is valid until the next StartLine on the same builder.
type ListBuilder struct {
	buf   []byte
	shift int
	end   int // end of the last emitted token, where Finish puts the sentinel

	head *Token
	tail *Token

	chunks [][]Token
	chunk  int
	used   int
}

// StartLine resets the builder for a new line. shift translates line-local
// offsets into document offsets and is added to every token's Offset.
func (b *ListBuilder) StartLine(buf []byte, winStart, winEnd, shift int) error {
	if winStart > winEnd || winStart < 0 || winEnd > len(buf) {
		return ErrInvalidWindow
	}
	b.buf = buf
	b.shift = shift
	b.end = winStart
	b.head = nil
	b.tail = nil
	b.chunk = 0
	b.used = 0
	return nil
}

func (b *ListBuilder) alloc() *Token {
	if b.chunk == len(b.chunks) {
		b.chunks = append(b.chunks, make([]Token, tokensPerChunk))
	}
	t := &b.chunks[b.chunk][b.used]
	b.used++
	if b.used == tokensPerChunk {
		b.chunk++
		b.used = 0
	}
	return t
}

func (b *ListBuilder) append(t *Token) {
	if b.tail == nil {
		b.head = t
	} else {
		b.tail.Next = t
	}
	b.tail = t
}

// Emit appends one token of kind covering buf[start:end). Zero-width spans
// mean a broken rule table and panic rather than risk a scan that never
// advances.
func (b *ListBuilder) Emit(kind Kind, start, end int) *Token {
	if end <= start {
		panic("tclscan: zero-width token emitted")
	}
	t := b.alloc()
	*t = Token{Kind: kind, Start: start, End: end, Offset: start + b.shift, buf: b.buf}
	b.append(t)
	b.end = end
	return t
}

// Finish appends the End sentinel and returns the head of the list.
// An empty line yields the sentinel alone.
func (b *ListBuilder) Finish() *Token {
	t := b.alloc()
	*t = Token{Kind: End, Start: b.end, End: b.end, Offset: b.end + b.shift, buf: b.buf}
	b.append(t)
	return b.head
}
