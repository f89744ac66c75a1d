package debug

import (
	"strings"

	"github.com/signadot/go-serial/tree"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line diff between the renderings of from and to, with
// "-", "+" and " " line prefixes. It returns "" when the renderings are
// equal.
func Diff(from, to *tree.Value) string {
	fromLines := strings.Split(SprintLines(from), "\n")
	toLines := strings.Split(SprintLines(to), "\n")

	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, fromLines)
	toRunes := mapLinesTo(lineMap, runeMap, toLines)

	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	changed := false
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
			changed = true
		case diffpatch.DiffInsert:
			prefix = "+"
			changed = true
		}
		for _, r := range diff.Text {
			buf.WriteString(prefix)
			buf.WriteString(runeMap[r])
			buf.WriteByte('\n')
		}
	}
	if !changed {
		return ""
	}
	return buf.String()
}

func mapLinesTo(m map[string]rune, im map[rune]string, lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			// stay clear of the surrogate range, which does not survive
			// the string conversions inside the differ
			r = rune(len(m))
			if r >= 0xD800 {
				r += 0x800
			}
			m[ln] = r
			im[r] = ln
		}
		rs[i] = r
	}
	return rs
}
