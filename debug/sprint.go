package debug

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/go-serial/tree"
)

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	KeyColor
	SepColor
	TagColor
)

type Colorable struct {
	Kind tree.Kind
	Attr ColorAttr
}

// Colors maps a kind and the role of a piece of text to a color
// function. Missing entries fall back to Default.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: fmt.Sprintf,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range tree.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: TagColor}] = color.RGB(74, 92, 138).SprintfFunc()
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}
	able.Kind = tree.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Kind = tree.BoolKind
	colors.Map[able] = color.CyanString
	for _, k := range []tree.Kind{tree.Int32Kind, tree.UInt32Kind, tree.Int64Kind, tree.UInt64Kind, tree.DoubleKind} {
		able.Kind = k
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	able.Kind = tree.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able = Colorable{Kind: tree.ObjectKind, Attr: KeyColor}
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = SepColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()
	return colors
}

func (c *Colors) Color(k tree.Kind, attr ColorAttr) func(string, ...any) string {
	if f, ok := c.Map[Colorable{Kind: k, Attr: attr}]; ok {
		return f
	}
	return c.Default
}

// Sprint renders v on a single line for diagnostics. Integers other than
// Int32 carry a !u32, !i64 or !u64 tag so that kinds survive the
// rendering; doubles always show a decimal point or exponent.
func Sprint(v *tree.Value) string {
	return SprintColor(v, nil)
}

// SprintColor is Sprint with colors; a nil c renders plain text.
func SprintColor(v *tree.Value, c *Colors) string {
	p := &printer{colors: c}
	p.value(v, -1)
	return p.buf.String()
}

// SprintLines renders v with one array element or object member per
// line.
func SprintLines(v *tree.Value) string {
	p := &printer{}
	p.value(v, 0)
	return p.buf.String()
}

type printer struct {
	colors *Colors
	buf    strings.Builder
}

func (p *printer) paint(k tree.Kind, attr ColorAttr, s string) {
	if p.colors == nil {
		p.buf.WriteString(s)
		return
	}
	p.buf.WriteString(p.colors.Color(k, attr)("%s", s))
}

// depth < 0 renders on one line.
func (p *printer) value(v *tree.Value, depth int) {
	k := v.Kind()
	switch k {
	case tree.ArrayKind:
		p.paint(k, SepColor, "[")
		i := 0
		v.ForEachArray(func(c *tree.Value) {
			p.sep(k, i, depth)
			p.value(c, next(depth))
			i++
		})
		p.close(k, i, depth, "]")
	case tree.ObjectKind:
		p.paint(k, SepColor, "{")
		i := 0
		v.ForEachObject(func(key string, c *tree.Value) {
			p.sep(k, i, depth)
			p.paint(k, KeyColor, strconv.Quote(key))
			p.paint(k, SepColor, ": ")
			p.value(c, next(depth))
			i++
		})
		p.close(k, i, depth, "}")
	default:
		if tag := scalarTag(k); tag != "" {
			p.paint(k, TagColor, tag)
			p.buf.WriteByte(' ')
		}
		p.paint(k, ValueColor, scalarText(v))
	}
}

func next(depth int) int {
	if depth < 0 {
		return depth
	}
	return depth + 1
}

func (p *printer) sep(k tree.Kind, i, depth int) {
	if i > 0 {
		p.paint(k, SepColor, ",")
		if depth < 0 {
			p.buf.WriteByte(' ')
		}
	}
	if depth >= 0 {
		p.buf.WriteByte('\n')
		p.buf.WriteString(strings.Repeat("  ", depth+1))
	}
}

func (p *printer) close(k tree.Kind, n, depth int, s string) {
	if depth >= 0 && n > 0 {
		p.buf.WriteByte('\n')
		p.buf.WriteString(strings.Repeat("  ", depth))
	}
	p.paint(k, SepColor, s)
}

func scalarTag(k tree.Kind) string {
	switch k {
	case tree.UInt32Kind:
		return "!u32"
	case tree.Int64Kind:
		return "!i64"
	case tree.UInt64Kind:
		return "!u64"
	}
	return ""
}

func scalarText(v *tree.Value) string {
	switch v.Kind() {
	case tree.NullKind:
		return "null"
	case tree.BoolKind:
		return strconv.FormatBool(v.AsBool())
	case tree.Int32Kind, tree.Int64Kind:
		return strconv.FormatInt(v.AsInt64(), 10)
	case tree.UInt32Kind, tree.UInt64Kind:
		return strconv.FormatUint(v.AsUint64(), 10)
	case tree.DoubleKind:
		return formatDouble(v.AsDouble())
	case tree.StringKind:
		return strconv.Quote(v.AsString())
	}
	return "<" + v.Kind().String() + ">"
}

func formatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
