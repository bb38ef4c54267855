package tclscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DumpList(t *testing.T) {
	head := NewScanner().ScanLine([]byte("set x"), StateInitial, 0)
	out := DumpList(head)
	assert.Contains(t, out, "ReservedWord [0:3) @0 \"set\"")
	assert.Contains(t, out, "Identifier [4:5) @4 \"x\"")
	assert.Contains(t, out, "End [5:5)")

	raw := DumpListRaw(head)
	assert.Contains(t, raw, "Kind")
}
