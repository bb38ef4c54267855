package tclscan

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// commandList is reservedWords flattened and sorted once for ranking.
var commandList = func() []string {
	cmds := make([]string, 0, len(reservedWords))
	for w := range reservedWords {
		cmds = append(cmds, w)
	}
	sort.Strings(cmds)
	return cmds
}()

const maxSuggestDistance = 2

// Suggest returns up to max reserved words closest to word by edit distance,
// nearest first, for a "did you mean" hint next to a token the scanner could
// not classify as a known command. Ties keep alphabetical order. An exact
// reserved word suggests nothing.
func Suggest(word string, max int) []string {
	if word == "" || IsReservedWord(word) {
		return nil
	}
	lower := strings.ToLower(word)
	type candidate struct {
		cmd  string
		dist int
	}
	var candidates []candidate
	for _, cmd := range commandList {
		d := fuzzy.LevenshteinDistance(lower, cmd)
		if d <= maxSuggestDistance {
			candidates = append(candidates, candidate{cmd, d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	if max > 0 && len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.cmd
	}
	return out
}
