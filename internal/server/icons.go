package server

import (
	"fmt"
	"html/template"
	"strings"
)

// Icon is anything a stat card can draw in its badge.
type Icon interface {
	SVG() template.HTML
}

// strokeIcon is a 24x24 outline icon built from SVG path data.
type strokeIcon []string

func (i strokeIcon) SVG() template.HTML {
	var b strings.Builder
	b.WriteString(`<svg class="w-6 h-6" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`)
	for _, d := range i {
		fmt.Fprintf(&b, `<path d="%s"/>`, template.HTMLEscapeString(d))
	}
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}

var (
	IconCode   Icon = strokeIcon{"M16 18l6-6-6-6", "M8 6l-6 6 6 6"}
	IconZap    Icon = strokeIcon{"M13 2L3 14h9l-1 8 10-12h-9l1-8z"}
	IconAward  Icon = strokeIcon{"M12 15a7 7 0 1 0 0-14 7 7 0 0 0 0 14z", "M8.21 13.89L7 23l5-3 5 3-1.21-9.12"}
	IconTarget Icon = strokeIcon{
		"M12 22a10 10 0 1 0 0-20 10 10 0 0 0 0 20z",
		"M12 18a6 6 0 1 0 0-12 6 6 0 0 0 0 12z",
		"M12 14a2 2 0 1 0 0-4 2 2 0 0 0 0 4z",
	}
	IconTrend Icon = strokeIcon{"M23 6l-9.5 9.5-5-5L1 18", "M17 6h6v6"}
)
