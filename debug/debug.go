package debug

import (
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type debug struct {
	Bind  bool
	Color bool
}

var d *debug

func init() {
	d = &debug{}
	d.Bind = boolEnv("SERIAL_DEBUG_BIND")
	if boolEnv("SERIAL_DEBUG_COLOR") {
		d.Color = true
	} else {
		d.Color = isatty.IsTerminal(os.Stderr.Fd())
	}
	// color decides from stdout by default, Logf writes to stderr
	color.NoColor = !d.Color
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Bind reports whether field binding should log its decisions.
func Bind() bool {
	return d.Bind
}

// Color reports whether diagnostics written to stderr are colored.
func Color() bool {
	return d.Color
}
