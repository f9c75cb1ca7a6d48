// Package toolbar models the rich-text formatting toolbar.
//
// The toolbar owns no document state: font and size are externally owned
// values it mirrors, and every control invokes an injected dispatcher with a
// fixed command name. How formatting is applied to the editor surface is the
// dispatcher's business entirely.
package toolbar

import "strconv"

// Formatting commands passed to the dispatcher.
const (
	CmdFontName  = "fontName"
	CmdFontSize  = "setFontSizePx"
	CmdBold      = "bold"
	CmdItalic    = "italic"
	CmdUnderline = "underline"
	CmdForeColor = "foreColor"
)

// Font size bounds, inclusive.
const (
	MinFontSize = 8
	MaxFontSize = 72
)

const defaultFontSize = 15

// Dispatcher applies a formatting command to the editor surface. value is
// empty for toggle commands (bold, italic, underline).
type Dispatcher func(command, value string)

// Toolbar mirrors the current font selection and dispatches format commands.
type Toolbar struct {
	Font string
	Size int

	apply Dispatcher
}

func New(apply Dispatcher) *Toolbar {
	if apply == nil {
		apply = func(string, string) {}
	}
	return &Toolbar{Size: defaultFontSize, apply: apply}
}

// SetFont selects a font family. An empty value is the placeholder option and
// dispatches nothing.
func (t *Toolbar) SetFont(name string) {
	if name == "" {
		return
	}
	t.Font = name
	t.apply(CmdFontName, name)
}

// Increment grows the font size by one, clamped to MaxFontSize.
func (t *Toolbar) Increment() {
	t.setSize(t.size() + 1)
}

// Decrement shrinks the font size by one, clamped to MinFontSize.
func (t *Toolbar) Decrement() {
	t.setSize(t.size() - 1)
}

// SetSizeInput handles direct numeric entry. Non-numeric input is ignored:
// no mutation, no error, no dispatch.
func (t *Toolbar) SetSizeInput(input string) {
	v, err := strconv.Atoi(input)
	if err != nil {
		return
	}
	t.setSize(v)
}

func (t *Toolbar) size() int {
	if t.Size == 0 {
		return defaultFontSize
	}
	return t.Size
}

func (t *Toolbar) setSize(v int) {
	if v < MinFontSize {
		v = MinFontSize
	}
	if v > MaxFontSize {
		v = MaxFontSize
	}
	t.Size = v
	t.apply(CmdFontSize, strconv.Itoa(v))
}

func (t *Toolbar) Bold()      { t.apply(CmdBold, "") }
func (t *Toolbar) Italic()    { t.apply(CmdItalic, "") }
func (t *Toolbar) Underline() { t.apply(CmdUnderline, "") }

// SetColor dispatches a text color change (e.g. "#ff0000").
func (t *Toolbar) SetColor(color string) {
	t.apply(CmdForeColor, color)
}
