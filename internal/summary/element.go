package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Element is one labelled stat line, e.g. "Life: 4,210 (+150%)".
//
// An element shows either a stat with an optional percentage, a bare
// percentage, or a list of values.
type Element struct {
	Name    string   `json:"name"`
	Title   string   `json:"title,omitempty"`
	Stat    string   `json:"stat,omitempty"`
	Percent string   `json:"percent,omitempty"`
	Values  []string `json:"values,omitempty"`
}

func newElement(name string) *Element {
	return &Element{Name: name}
}

func (e *Element) withTitle(title string) *Element {
	e.Title = title
	return e
}

func (e *Element) statStr(v string, ok bool) *Element {
	if ok {
		e.Stat = v
	}
	return e
}

// statInt formats v truncated with thousands separators.
func (e *Element) statInt(v float64, ok bool) *Element {
	if ok {
		e.Stat = humanize.Comma(truncate(v))
	}
	return e
}

// statFloat formats v with two decimals and thousands separators.
func (e *Element) statFloat(v float64, ok bool) *Element {
	if ok {
		e.Stat = humanize.FormatFloat("#,###.##", v)
	}
	return e
}

func (e *Element) percent(v string, ok bool) *Element {
	if ok {
		e.Percent = v
	}
	return e
}

func (e *Element) percentFloat(v float64, ok bool) *Element {
	if ok {
		e.Percent = fmt.Sprintf("%.2f", v)
	}
	return e
}

func (e *Element) percentInt(v float64, ok bool) *Element {
	if ok {
		e.Percent = strconv.FormatInt(truncate(v), 10)
	}
	return e
}

// pushPercent appends a whole percentage value. Unparsable values are
// kept as exported.
func (e *Element) pushPercent(v string) *Element {
	if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
		v = strconv.FormatInt(truncate(f), 10)
	}
	e.Values = append(e.Values, v+"%")
	return e
}

// Visible reports whether the element has anything to show.
func (e Element) Visible() bool {
	return e.Stat != "" || e.Percent != "" || len(e.Values) > 0
}

// String renders the element as plain text.
func (e Element) String() string {
	var b strings.Builder
	b.WriteString(e.Name)
	b.WriteString(": ")
	switch {
	case e.Stat != "":
		b.WriteString(e.Stat)
		if e.Percent != "" {
			fmt.Fprintf(&b, " (%s%%)", e.Percent)
		}
	case e.Percent != "":
		b.WriteString(e.Percent)
		b.WriteString("%")
	default:
		b.WriteString(strings.Join(e.Values, "/"))
	}
	return b.String()
}

// add appends e when it is visible.
func add(elements []Element, e *Element) []Element {
	if e.Visible() {
		elements = append(elements, *e)
	}
	return elements
}
