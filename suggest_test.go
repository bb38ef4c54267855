package tclscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SuggestMisspelledCommand(t *testing.T) {
	got := Suggest("putz", 3)
	assert.NotEmpty(t, got)
	assert.Equal(t, "puts", got[0])
}

func Test_SuggestFoldsCase(t *testing.T) {
	got := Suggest("PUTS", 3)
	assert.NotEmpty(t, got)
	assert.Equal(t, "puts", got[0])
}

func Test_SuggestExactCommandIsQuiet(t *testing.T) {
	assert.Nil(t, Suggest("set", 5))
	assert.Nil(t, Suggest("", 5))
}

func Test_SuggestNothingClose(t *testing.T) {
	assert.Empty(t, Suggest("xyzzyxyzzy", 5))
}

func Test_SuggestHonorsMax(t *testing.T) {
	got := Suggest("cosa", 2)
	assert.LessOrEqual(t, len(got), 2)
	// cos and cosh are both within distance 2, nearest first
	assert.Equal(t, "cos", got[0])
}
