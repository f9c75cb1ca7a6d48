package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/wikiweb/wikictl/internal/client/models"
	"github.com/wikiweb/wikictl/internal/client/toolbar"
)

// Docs prints a one-line summary of every document.
func (a *App) Docs(ctx context.Context) error {
	docs, err := a.docs.List(ctx)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintln(a.out, "No documents yet.")
		return nil
	}
	for _, d := range docs {
		fmt.Fprintf(a.out, "%s  %s", d.ID, d.Title)
		if d.UpdatedAt != "" {
			fmt.Fprintf(a.out, "  (updated %s)", d.UpdatedAt)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

// ShowDoc prints one document with its content and revision history.
func (a *App) ShowDoc(ctx context.Context, id string) error {
	doc, err := a.docs.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "# %s\n", doc.Title)
	fmt.Fprintln(a.out, doc.Content)

	if len(doc.Revisions) > 0 {
		fmt.Fprintln(a.out, "Revisions:")
		for _, rev := range doc.Revisions {
			fmt.Fprintf(a.out, "  %s  %s  %s\n", rev.ID, rev.Title, rev.CreatedAt)
		}
	}
	return nil
}

// NewDoc prompts for a title and body and creates the document.
func (a *App) NewDoc(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(a.out, "Title is required.")
		return nil
	}

	content, err := getMultiline(a.reader, "Enter content:", a.out)
	if err != nil {
		return err
	}

	doc, err := a.docs.Create(ctx, title, content)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created document %s\n", doc.ID)
	return nil
}

// EditDoc opens an interactive edit session on one document. Besides title
// and body replacement, the session exposes the formatting toolbar: font,
// size, bold, italic, underline, and color apply to the draft the way the
// browser editor applies them to a full selection. Nothing reaches the server
// until "save".
func (a *App) EditDoc(ctx context.Context, id string) error {
	doc, err := a.docs.Get(ctx, id)
	if err != nil {
		return err
	}

	d := &draft{title: doc.Title, content: doc.Content}
	tb := toolbar.New(d.applyFormat)

	fmt.Fprintf(a.out, "Editing %q (type 'save' to apply, 'cancel' to discard)\n", doc.Title)

	for {
		fmt.Fprintf(a.out, "edit [%s %dpx]> ", orDefault(tb.Font, "default"), tb.Size)

		line, err := a.reader.ReadString('\n')
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "show":
			fmt.Fprintf(a.out, "# %s\n%s\n", d.title, d.content)

		case "title":
			title, err := getSimpleText(a.reader, "Enter new title", a.out)
			if err != nil {
				return err
			}
			if title != "" {
				d.setTitle(title)
			}

		case "text":
			content, err := getMultiline(a.reader, "Enter new content:", a.out)
			if err != nil {
				return err
			}
			d.setContent(content)

		case "font":
			tb.SetFont(strings.Join(args, " "))
		case "size":
			if len(args) == 1 {
				tb.SetSizeInput(args[0])
			}
		case "size+":
			tb.Increment()
		case "size-":
			tb.Decrement()
		case "bold":
			tb.Bold()
		case "italic":
			tb.Italic()
		case "underline":
			tb.Underline()
		case "color":
			if len(args) == 1 {
				tb.SetColor(args[0])
			}

		case "save":
			return a.saveDraft(ctx, id, d)

		case "cancel", "quit":
			fmt.Fprintln(a.out, "Discarded.")
			return nil

		case "help":
			fmt.Fprintln(a.out, "Commands: show, title, text, font <name>, size <n>, size+, size-,")
			fmt.Fprintln(a.out, "  bold, italic, underline, color <hex>, save, cancel")

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// saveDraft sends only the fields the session actually changed.
func (a *App) saveDraft(ctx context.Context, id string, d *draft) error {
	var patch models.DocumentPatch
	if d.titleChanged {
		patch.Title = &d.title
	}
	if d.contentChanged {
		patch.Content = &d.content
	}
	if patch.Title == nil && patch.Content == nil {
		fmt.Fprintln(a.out, "Nothing changed.")
		return nil
	}

	doc, err := a.docs.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %q\n", doc.Title)
	return nil
}

// DeleteDoc removes a document by ID after a confirmation prompt.
func (a *App) DeleteDoc(ctx context.Context, id string) error {
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete document %s? (y/n)", id), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.docs.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

// RestoreDoc rolls a document back to one of its stored revisions.
func (a *App) RestoreDoc(ctx context.Context, docID, revID string) error {
	doc, err := a.docs.Restore(ctx, docID, revID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Restored %q\n", doc.Title)
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
