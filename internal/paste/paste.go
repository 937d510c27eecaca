// Package paste defines the stored paste model.
package paste

import (
	"regexp"
	"strings"

	"github.com/Dav1dde/pasteofexile-sub000/internal/pob"
	"github.com/Dav1dde/pasteofexile-sub000/internal/summary"
)

// Paste is a stored build export code plus metadata derived from it.
type Paste struct {
	// ID is a ULID that uniquely identifies this paste
	ID string `json:"id"`

	// Title is the caller supplied title, or the build summary title
	Title string `json:"title"`

	// Code is the export code exactly as submitted
	Code string `json:"code,omitempty"`

	// Level is the character level
	Level int `json:"level"`

	// ClassName is the base class
	ClassName string `json:"class_name"`

	// Ascendancy is the ascendancy class (nullable)
	Ascendancy *string `json:"ascendancy,omitempty"`

	// MainSkill is the name of the main active skill (nullable)
	MainSkill *string `json:"main_skill,omitempty"`

	// CreatedAt is the Unix timestamp when the paste was stored
	CreatedAt int64 `json:"created_at"`

	// DeletedAt is the Unix timestamp for soft delete (nullable)
	DeletedAt *int64 `json:"deleted_at,omitempty"`
}

// whitespaceRegex matches one or more whitespace characters
var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeTitle trims a title and collapses internal whitespace.
func NormalizeTitle(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// New builds a paste for code from its decoded build. An empty title falls
// back to the build's summary title.
func New(id, code, title string, b *pob.Build, now int64) *Paste {
	p := &Paste{
		ID:        id,
		Title:     NormalizeTitle(title),
		Code:      code,
		Level:     int(b.Level),
		ClassName: b.ClassName,
		CreatedAt: now,
	}
	if p.Title == "" {
		p.Title = summary.Title(b)
	}
	if name, ok := b.AscendancyName(); ok {
		p.Ascendancy = &name
	}
	if name, ok := b.MainSkillName(); ok {
		p.MainSkill = &name
	}
	return p
}
