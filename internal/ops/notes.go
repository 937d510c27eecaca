package ops

import (
	"github.com/Dav1dde/pasteofexile-sub000/internal/config"
	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
	"github.com/Dav1dde/pasteofexile-sub000/internal/markup"
)

// RenderNotesInput contains parameters for the RenderNotes operation.
// At most one of Code and Notes may be set.
type RenderNotesInput struct {
	Code  string // export code whose notes are rendered
	Notes string // raw notes text
}

// RenderNotesOutput contains the rendered notes.
type RenderNotesOutput struct {
	HTML  string   `json:"html"`
	Text  string   `json:"text"`
	Links []string `json:"links"`
}

// RenderNotes renders build notes as HTML and as plain text, and lists the
// allowed links they contain.
func RenderNotes(cfg *config.Config, input RenderNotesInput) (*RenderNotesOutput, error) {
	notes := input.Notes
	switch {
	case input.Code != "" && input.Notes != "":
		return nil, errors.NewInvalidRequest("specify either code or notes, not both")
	case input.Code != "":
		b, err := decodeCode(cfg, input.Code)
		if err != nil {
			return nil, err
		}
		notes = b.Notes
	}

	out := &RenderNotesOutput{
		HTML:  markup.RenderHTML(notes),
		Text:  markup.StripColors(notes),
		Links: []string{},
	}
	for run := range markup.Links(out.Text) {
		if run.Kind == markup.LinkRun {
			out.Links = append(out.Links, run.Text)
		}
	}
	return out, nil
}
