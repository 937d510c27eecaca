package ops

import (
	"github.com/Dav1dde/pasteofexile-sub000/internal/config"
	"github.com/Dav1dde/pasteofexile-sub000/internal/summary"
)

// SummarizeInput contains parameters for the Summarize operation.
type SummarizeInput struct {
	Code    string // required
	NoLevel bool   // omit "Level N" from the title
}

// SummarizeOutput is the summary of a build, plus its element lists rendered
// as text lines.
type SummarizeOutput struct {
	summary.Overview
	Lines []string `json:"lines"`
}

// Summarize decodes an export code and summarizes the build.
func Summarize(cfg *config.Config, input SummarizeInput) (*SummarizeOutput, error) {
	b, err := decodeCode(cfg, input.Code)
	if err != nil {
		return nil, err
	}

	out := &SummarizeOutput{Overview: summary.Summarize(b)}
	out.Title = summary.TitleWithConfig(b, summary.TitleConfig{NoTitle: input.NoLevel})

	for _, list := range [][]summary.Element{out.Core, out.Defense, out.Offense, out.Config} {
		for _, e := range list {
			out.Lines = append(out.Lines, e.String())
		}
	}
	return out, nil
}
