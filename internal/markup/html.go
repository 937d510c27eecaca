package markup

import (
	"strings"

	"github.com/yuin/goldmark/util"
)

// palette holds the colors PoB uses for ^0 through ^9.
var palette = [10]string{
	"#000000",
	"#FF0000",
	"#00FF00",
	"#0000FF",
	"#FFFF00",
	"#D02090",
	"#00FFFF",
	"#FFFFFF",
	"#B3B3B3",
	"#6E6E6E",
}

// CSS returns the CSS color of c, or "" for no color.
func (c Color) CSS() string {
	switch c.Kind {
	case NamedColor:
		if int(c.Named) < len(palette) {
			return palette[c.Named]
		}
	case HexColor:
		return "#" + strings.ToUpper(c.Hex)
	}
	return ""
}

// RenderHTML renders notes as an HTML fragment. Colored segments become
// spans, allowed links become anchors and line breaks become <br>.
// All text is escaped.
func RenderHTML(notes string) string {
	var b strings.Builder
	for seg := range Colored(notes) {
		css := seg.Color.CSS()
		if css != "" {
			b.WriteString(`<span style="color:`)
			b.WriteString(css)
			b.WriteString(`">`)
		}
		for run := range Links(seg.Text) {
			if run.Kind == LinkRun {
				href := escape(run.Text)
				b.WriteString(`<a href="`)
				b.WriteString(href)
				b.WriteString(`" rel="nofollow noopener" target="_blank">`)
				b.WriteString(href)
				b.WriteString(`</a>`)
				continue
			}
			writeText(&b, run.Text)
		}
		if css != "" {
			b.WriteString(`</span>`)
		}
	}
	return b.String()
}

func writeText(b *strings.Builder, text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString("<br>\n")
		}
		b.WriteString(escape(strings.TrimSuffix(line, "\r")))
	}
}

func escape(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}
