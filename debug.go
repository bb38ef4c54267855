package tclscan

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// DumpList renders a token list one token per line with its kind, span,
// document offset and text. Handy when changing the rule table.
func DumpList(head *Token) string {
	var sb strings.Builder
	for t := head; t != nil; t = t.Next {
		fmt.Fprintf(&sb, "%s [%d:%d) @%d %q\n", t.Kind, t.Start, t.End, t.Offset, t.Text())
	}
	return sb.String()
}

// DumpListRaw dumps the raw token records, Next links included.
func DumpListRaw(head *Token) string {
	return spew.Sdump(head)
}
