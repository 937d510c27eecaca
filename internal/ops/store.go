package ops

import (
	"context"
	"crypto/rand"
	"database/sql"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Dav1dde/pasteofexile-sub000/internal/config"
	"github.com/Dav1dde/pasteofexile-sub000/internal/db"
	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
	"github.com/Dav1dde/pasteofexile-sub000/internal/paste"
)

// StoreInput contains parameters for the Store operation.
type StoreInput struct {
	Code  string // required, must decode
	Title string // default: the build's summary title
}

// StoreOutput contains the result of the Store operation.
type StoreOutput struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Store validates an export code by decoding it and stores it as a paste.
func Store(ctx context.Context, database *sql.DB, cfg *config.Config, input StoreInput) (*StoreOutput, error) {
	code := strings.TrimSpace(input.Code)
	b, err := decodeCode(cfg, code)
	if err != nil {
		return nil, err
	}

	id, err := generateULID()
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	p := paste.New(id, code, input.Title, b, time.Now().Unix())
	if err := db.Insert(ctx, database, p); err != nil {
		return nil, err
	}

	return &StoreOutput{
		ID:    p.ID,
		Title: p.Title,
	}, nil
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
