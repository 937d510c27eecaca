package ops

import (
	"strings"

	"github.com/Dav1dde/pasteofexile-sub000/internal/config"
	"github.com/Dav1dde/pasteofexile-sub000/internal/errors"
	"github.com/Dav1dde/pasteofexile-sub000/internal/pob"
)

// Pagination limits
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Pagination contains pagination metadata for list operations.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// decodeCode validates an export code against the configured size limit
// and decodes it.
func decodeCode(cfg *config.Config, code string) (*pob.Build, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.NewInvalidRequest("code is required")
	}
	if cfg != nil && cfg.MaxBuildBytes > 0 && len(code) > cfg.MaxBuildBytes {
		return nil, errors.NewBuildTooLarge(cfg.MaxBuildBytes, len(code))
	}
	return pob.FromExport(code)
}
