package ops

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Dav1dde/pasteofexile-sub000/internal/db"
	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
	"github.com/Dav1dde/pasteofexile-sub000/internal/paste"
	"github.com/Dav1dde/pasteofexile-sub000/internal/pob"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	ID             string // required
	IncludeDeleted bool
	IncludeCode    *bool // default: true (nil means default)
	Decode         bool  // attach the decoded build overview
}

// FetchOutput contains the result of the Fetch operation.
type FetchOutput struct {
	paste.Paste               // embedded (copy, not pointer)
	Build       *DecodeOutput `json:"build,omitempty"`
}

// Fetch retrieves a paste by ID.
func Fetch(ctx context.Context, database *sql.DB, input FetchInput) (*FetchOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	p, err := db.GetByID(ctx, database, id, input.IncludeDeleted)
	if err != nil {
		return nil, err
	}

	output := &FetchOutput{Paste: *p}

	if input.Decode {
		// Stored codes were valid when stored; the size limit does not apply.
		b, err := pob.FromExport(p.Code)
		if err != nil {
			return nil, err
		}
		output.Build = describe(b)
	}

	if input.IncludeCode != nil && !*input.IncludeCode {
		output.Code = ""
	}

	return output, nil
}
