package markup

import (
	"iter"
	"slices"
	"strings"
	"unicode"
)

const linkScheme = "https://"

// allowedDomains are the only domains rendered as links.
var allowedDomains = []string{
	"pobb.in",
	"pastebin.com",
	"poe.ninja",
	"pathofexile.com",
	"poewiki.net",
	"youtube.com",
	"youtu.be",
	"twitch.tv",
	"reddit.com",
	"old.reddit.com",
	"github.com",
	"poedb.tw",
	"maxroll.gg",
	"mobalytics.gg",
}

// RunKind tags a Run as plain text or a link.
type RunKind uint8

const (
	TextRun RunKind = iota
	LinkRun
)

func (k RunKind) MarshalText() ([]byte, error) {
	if k == LinkRun {
		return []byte("link"), nil
	}
	return []byte("text"), nil
}

// Run is a piece of text or a link. Concatenating all runs of a text
// reproduces it exactly.
type Run struct {
	Kind RunKind `json:"kind"`
	Text string  `json:"text"`
}

// Links splits text into text and link runs. A link starts at "https://" and
// ends before whitespace, ')', ']' or '}'. Links to domains outside the
// allow-list stay text, and scanning resumes right after their scheme.
func Links(text string) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		start, search := 0, 0
		for {
			i := strings.Index(text[search:], linkScheme)
			if i < 0 {
				break
			}
			i += search

			end := len(text)
			if j := strings.IndexFunc(text[i:], isLinkEnd); j >= 0 {
				end = i + j
			}
			link := text[i:end]

			if !isAllowedDomain(linkDomain(link)) {
				search = i + len(linkScheme)
				continue
			}

			if i > start && !yield(Run{Kind: TextRun, Text: text[start:i]}) {
				return
			}
			if !yield(Run{Kind: LinkRun, Text: link}) {
				return
			}
			start, search = end, end
		}
		if start < len(text) {
			yield(Run{Kind: TextRun, Text: text[start:]})
		}
	}
}

func isLinkEnd(r rune) bool {
	return unicode.IsSpace(r) || r == ')' || r == ']' || r == '}'
}

// linkDomain returns the host of a link, without a leading "www.".
func linkDomain(link string) string {
	domain := strings.TrimPrefix(link, linkScheme)
	if i := strings.IndexByte(domain, '/'); i >= 0 {
		domain = domain[:i]
	}
	return strings.TrimPrefix(domain, "www.")
}

func isAllowedDomain(domain string) bool {
	return slices.Contains(allowedDomains, domain)
}
