package ops

import (
	"strings"

	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
	"github.com/Dav1dde/pasteofexile-sub000/internal/item"
)

// ParseItemInput contains parameters for the ParseItem operation.
type ParseItemInput struct {
	Text string // required, PoB item text starting with "Rarity:"
}

// ParseItem parses a single item text.
func ParseItem(input ParseItemInput) (*ItemView, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, errors.NewInvalidRequest("text is required")
	}
	it, err := item.Parse(input.Text)
	if err != nil {
		return nil, err
	}
	return newItemView(it), nil
}
