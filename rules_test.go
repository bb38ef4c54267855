package tclscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RuleTableOrder(t *testing.T) {
	// declaration order breaks length ties, so it is part of the grammar:
	// identifiers before the run catch-all, number errors before identifier
	// errors, decimal before hex/octal for the lone 0
	var names []string
	for _, r := range ruleTable {
		names = append(names, r.name)
	}
	assert.Equal(t, []string{
		"identifier", "whitespace", "string", "comment", "separator",
		"punctuation", "operator", "decimal", "hexoctal", "float",
		"badnumber", "badident", "catchall",
	}, names)
}

func Test_AllRulesActiveInInitial(t *testing.T) {
	for _, r := range ruleTable {
		assert.NotZero(t, r.states&stateMask(StateInitial), "rule %s", r.name)
	}
}

func Test_ReservedWordSet(t *testing.T) {
	assert.Equal(t, 121, len(commandList))
	assert.True(t, IsReservedWord("puts"))
	assert.True(t, IsReservedWord("auto_mkindex"))
	assert.True(t, IsReservedWord("wm"))
	// the historical misspelling is the reserved one
	assert.True(t, IsReservedWord("unkown"))
	assert.False(t, IsReservedWord("unknown"))
	// case-sensitive
	assert.False(t, IsReservedWord("Puts"))
	assert.False(t, IsReservedWord(""))
}

func Test_MatchString(t *testing.T) {
	m := matchString([]byte(`"ab"x`), 0, 5)
	assert.Equal(t, match{n: 4, kind: StringLiteral}, m)

	m = matchString([]byte(`"a\\"`), 0, 5)
	assert.Equal(t, 5, m.n)
	assert.Equal(t, StringLiteral, m.kind)

	m = matchString([]byte(`"ab`), 0, 3)
	assert.Equal(t, UnterminatedStringError, m.kind)
	assert.Equal(t, actTerminateLine, m.act)
	assert.Equal(t, 3, m.n)

	m = matchString([]byte(`x"`), 0, 2)
	assert.Zero(t, m.n)
}

func Test_MatchCatchAllAlwaysAdvances(t *testing.T) {
	for b := 0; b < 256; b++ {
		m := matchCatchAll([]byte{byte(b)}, 0, 1)
		assert.Equal(t, 1, m.n)
		assert.Equal(t, IdentifierFormatError, m.kind)
	}
}

func Test_NonSeparatorClass(t *testing.T) {
	for _, b := range []byte(" \t\f(){}[];,.\"=!+-*/><%&|^~") {
		assert.False(t, isNonSeparator(b), "byte %q", b)
	}
	for _, b := range []byte("aZ09_$#\\@?'`") {
		assert.True(t, isNonSeparator(b), "byte %q", b)
	}
}

func Test_CommentDelimiters(t *testing.T) {
	start, end := CommentDelimiters()
	assert.Equal(t, []byte("#"), start)
	assert.Nil(t, end)

	start, end = TclFileType.CommentDelimiters()
	assert.Equal(t, []byte("#"), start)
	assert.Nil(t, end)
}

func Test_KindString(t *testing.T) {
	assert.Equal(t, "ReservedWord", ReservedWord.String())
	assert.Equal(t, "End", End.String())
	assert.True(t, NumberFormatError.IsError())
	assert.True(t, UnterminatedStringError.IsError())
	assert.False(t, Identifier.IsError())
}
