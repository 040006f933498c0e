// Package layout draws the fixed-width bordered panels of the game screen.
// All widths are display columns, so wide runes such as CJK or emoji take
// two columns and borders stay aligned.
package layout

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

const (
	FocusMarker  = "=>"
	ActionMarker = "->"

	PanelBorder  = "│ │"
	TopBorder    = "┌─┐"
	BottomBorder = "└─┘"
	HeaderBorder = "==="

	ellipsis = "…"
)

// Box-drawing runes are ambiguous width; pin them to one column regardless
// of the terminal locale.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Width returns the display width of s.
func Width(s string) int {
	return cond.StringWidth(s)
}

// Bordered overlays text on a border line starting at column pos. border
// holds the left, fill and right runes; the result is always width+2
// columns wide. Text that would cover the right edge is truncated.
func Bordered(text string, pos int, border string, width int) string {
	edges := []rune(border)
	if len(edges) != 3 {
		panic(fmt.Sprintf("layout: border %q must have three runes", border))
	}
	width = max(width, 0)
	total := width + 2

	base := make([]rune, 0, total)
	base = append(base, edges[0])
	for range width {
		base = append(base, edges[1])
	}
	base = append(base, edges[2])

	text = clean(text)
	pos = min(max(pos, 0), total-1)
	room := total - 1 - pos
	if Width(text) > room {
		if room < Width(ellipsis) {
			text = ""
		} else {
			text = cond.Truncate(text, room, ellipsis)
		}
	}
	return string(base[:pos]) + text + string(base[pos+Width(text):])
}

// clean makes every rune of s occupy the columns runewidth reports.
// Invalid bytes become U+FFFD and control characters such as tabs become
// a single space.
func clean(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

// Header renders a category title line.
func Header(category string, width int) string {
	return Bordered(" "+category+" ", 3, HeaderBorder, width)
}

// Block renders one asset panel: title, description lines, a blank
// separator when both parts are present, one line per action and the
// closing border. focus is the index of the focused action within labels;
// any other value marks no action.
func Block(name string, desc, labels []string, focus, width int) []string {
	lines := make([]string, 0, len(desc)+len(labels)+3)
	lines = append(lines, Bordered(" "+name+" ", 3, TopBorder, width))
	for _, line := range desc {
		lines = append(lines, Bordered(line, 2, PanelBorder, width))
	}
	if len(desc) > 0 && len(labels) > 0 {
		lines = append(lines, Bordered("", 0, PanelBorder, width))
	}
	for i, label := range labels {
		marker := ActionMarker
		if i == focus {
			marker = FocusMarker
		}
		lines = append(lines, Bordered(marker+" "+label, 2, PanelBorder, width))
	}
	lines = append(lines, Bordered("", 0, BottomBorder, width))
	return lines
}

// JoinRow places blocks side by side. Shorter blocks are padded with blank
// columns so every output line is len(blocks)*blockWidth columns wide.
func JoinRow(blocks [][]string, blockWidth int) []string {
	height := 0
	for _, b := range blocks {
		height = max(height, len(b))
	}
	filler := strings.Repeat(" ", blockWidth)
	out := make([]string, 0, height)
	for i := range height {
		var sb strings.Builder
		for _, b := range blocks {
			if i < len(b) {
				sb.WriteString(cond.FillRight(b[i], blockWidth))
			} else {
				sb.WriteString(filler)
			}
		}
		out = append(out, sb.String())
	}
	return out
}

// Chunk splits items into consecutive rows of at most size elements.
func Chunk[T any](items []T, size int) [][]T {
	size = max(size, 1)
	var rows [][]T
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		rows = append(rows, items[start:end])
	}
	return rows
}
