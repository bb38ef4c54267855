package tclscan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StartLineInvalidWindow(t *testing.T) {
	var b ListBuilder
	buf := []byte("abc")
	assert.ErrorIs(t, b.StartLine(buf, 2, 1, 0), ErrInvalidWindow)
	assert.ErrorIs(t, b.StartLine(buf, -1, 2, 0), ErrInvalidWindow)
	assert.ErrorIs(t, b.StartLine(buf, 0, 4, 0), ErrInvalidWindow)
	assert.NoError(t, b.StartLine(buf, 0, 3, 0))
	assert.NoError(t, b.StartLine(buf, 3, 3, 0))
}

func Test_EmitZeroWidthPanics(t *testing.T) {
	var b ListBuilder
	assert.NoError(t, b.StartLine([]byte("abc"), 0, 3, 0))
	assert.Panics(t, func() { b.Emit(Identifier, 1, 1) })
	assert.Panics(t, func() { b.Emit(Identifier, 2, 1) })
}

func Test_FinishEmptyLine(t *testing.T) {
	var b ListBuilder
	assert.NoError(t, b.StartLine([]byte("abc"), 1, 1, 10))
	head := b.Finish()
	assert.Equal(t, End, head.Kind)
	assert.Nil(t, head.Next)
	assert.Equal(t, 1, head.Start)
	assert.Equal(t, 11, head.Offset)
}

func Test_ChunkStability(t *testing.T) {
	// emit well past one chunk and make sure earlier links survive the
	// growth of the arena
	n := tokensPerChunk*3 + 5
	buf := bytes.Repeat([]byte("a"), n)
	var b ListBuilder
	assert.NoError(t, b.StartLine(buf, 0, n, 0))
	for i := 0; i < n; i++ {
		b.Emit(Identifier, i, i+1)
	}
	head := b.Finish()

	count := 0
	prev := 0
	tok := head
	for ; tok.Next != nil; tok = tok.Next {
		assert.Equal(t, prev, tok.Start)
		assert.Equal(t, prev+1, tok.End)
		assert.Equal(t, Identifier, tok.Kind)
		prev = tok.End
		count++
	}
	assert.Equal(t, n, count)
	assert.Equal(t, End, tok.Kind)
	assert.Equal(t, n, tok.Start)
}

func Test_ShiftAppliedToOffsets(t *testing.T) {
	var b ListBuilder
	buf := []byte("word more")
	assert.NoError(t, b.StartLine(buf, 0, 9, 500))
	b.Emit(Identifier, 0, 4)
	b.Emit(Whitespace, 4, 5)
	head := b.Finish()
	assert.Equal(t, 500, head.Offset)
	assert.Equal(t, 504, head.Next.Offset)
}
