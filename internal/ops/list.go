package ops

import (
	"context"
	"database/sql"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Dav1dde/pasteofexile-sub000/internal/db"
	"github.com/Dav1dde/pasteofexile-sub000/internal/paste"
	"github.com/Dav1dde/pasteofexile-sub000/internal/pob"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Class          string // optional, class name in any case
	Limit          int    // default: 20, max: 100
	Offset         int    // default: 0
	IncludeDeleted bool
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items      []paste.Summary `json:"items"`
	Pagination Pagination      `json:"pagination"`
	Sort       string          `json:"sort"`
}

// List retrieves paste summaries, newest first, with pagination.
func List(ctx context.Context, database *sql.DB, input ListInput) (*ListOutput, error) {
	var filter db.ListFilter
	if class := strings.TrimSpace(input.Class); class != "" {
		c, err := pob.ParseClass(class)
		if err != nil {
			// Casers are stateful, so one is made per call.
			c, err = pob.ParseClass(cases.Title(language.English).String(class))
		}
		if err != nil {
			return nil, err
		}
		filter.ClassName = c.String()
	}
	filter.IncludeDeleted = input.IncludeDeleted

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)
	offset := max(input.Offset, 0)

	summaries, total, err := db.List(ctx, database, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	// Ensure we return an empty array rather than nil
	if summaries == nil {
		summaries = []paste.Summary{}
	}

	return &ListOutput{
		Items: summaries,
		Pagination: Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+len(summaries) < total,
			Total:   total,
		},
		Sort: "created_at_desc",
	}, nil
}
