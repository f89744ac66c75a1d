package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/go-serial/tree"
)

// Logf writes a formatted message to stderr. *tree.Value arguments are
// rendered with Sprint (colored when Color is on) and generic JSON
// shaped arguments are indented.
func Logf(msg string, args ...any) {
	var colors *Colors
	if Color() {
		colors = NewColors()
	}
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *tree.Value:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = SprintColor(x, colors)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
