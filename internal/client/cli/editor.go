package cli

import (
	"fmt"

	"github.com/wikiweb/wikictl/internal/client/toolbar"
)

// draft is the in-memory edit buffer of one document. Formatting commands
// from the toolbar wrap the whole buffer in the HTML markup the wiki stores,
// mirroring what the browser editor produces for a select-all format.
type draft struct {
	title   string
	content string

	titleChanged   bool
	contentChanged bool
}

func (d *draft) setTitle(title string) {
	d.title = title
	d.titleChanged = true
}

func (d *draft) setContent(content string) {
	d.content = content
	d.contentChanged = true
}

// applyFormat satisfies toolbar.Dispatcher.
func (d *draft) applyFormat(command, value string) {
	switch command {
	case toolbar.CmdBold:
		d.wrap("<b>", "</b>")
	case toolbar.CmdItalic:
		d.wrap("<i>", "</i>")
	case toolbar.CmdUnderline:
		d.wrap("<u>", "</u>")
	case toolbar.CmdFontName:
		d.wrap(fmt.Sprintf("<span style=%q>", "font-family:"+value), "</span>")
	case toolbar.CmdFontSize:
		d.wrap(fmt.Sprintf("<span style=%q>", "font-size:"+value+"px"), "</span>")
	case toolbar.CmdForeColor:
		d.wrap(fmt.Sprintf("<span style=%q>", "color:"+value), "</span>")
	}
}

func (d *draft) wrap(open, close string) {
	if d.content == "" {
		return
	}
	d.content = open + d.content + close
	d.contentChanged = true
}
