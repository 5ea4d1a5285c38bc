package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/menu-browser/internal/catalog"
	"github.com/atomicstack/menu-browser/internal/format/table"
	uistate "github.com/atomicstack/menu-browser/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	itemIndicator     = "▌"
	descriptionIndent = "    "
	loadingMessage    = "Loading menu…"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	page := m.derive()
	lines := make([]styledLine, 0, 32)
	lines = append(lines, styledLine{text: pageTitle, style: styles.Header})
	lines = append(lines, styledLine{text: m.searchPrompt(), raw: true})

	if page.ShowFeatured {
		lines = append(lines, styledLine{})
		lines = append(lines, m.featuredLines(page.Featured)...)
	}
	if bar := m.categoryBar(); bar != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: bar, raw: true})
	}
	lines = append(lines, styledLine{})
	lines = append(lines, m.itemLines(page)...)
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.paginationLine(page), raw: true})

	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.help.View(m.keys), raw: true})
	}
	if status := m.statusLine(); status.text != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, status)
	}
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) statusLine() styledLine {
	if m.loading {
		return styledLine{text: loadingMessage, style: styles.Loading}
	}
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	return styledLine{}
}

func (m *Model) featuredLines(entry catalog.Entry) []styledLine {
	lines := []styledLine{
		{text: "★ Featured", style: styles.BannerTitle},
		{text: fmt.Sprintf("%s  %s", entry.Name, entry.PriceLabel()), style: styles.BannerBody},
	}
	if entry.Description != "" {
		lines = append(lines, styledLine{text: entry.Description, style: styles.Description})
	}
	return lines
}

func (m *Model) categoryBar() string {
	names := m.catalogs.Catalog().CategoryNames()
	if len(names) == 0 {
		return ""
	}
	buttons := make([]string, len(names))
	for i, name := range names {
		style := styles.Category
		switch {
		case name == m.view.SelectedCategory:
			style = styles.SelectedCategory
		case i == m.view.CategoryFocus:
			style = styles.FocusedCategory
		}
		label := name
		if i == m.view.CategoryFocus {
			label = "›" + name
		}
		if style != nil {
			label = style.Render(label)
		}
		buttons[i] = label
	}
	return strings.Join(buttons, " ")
}

func (m *Model) itemLines(page uistate.Page) []styledLine {
	if len(page.Items) == 0 {
		msg := "(no dishes)"
		if m.loading {
			msg = loadingMessage
		} else if m.view.SearchTerm != "" && m.view.SelectedCategory == "" {
			msg = fmt.Sprintf("No dishes match %q", m.view.SearchTerm)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	rows := make([][]string, len(page.Items))
	for i, entry := range page.Items {
		rows[i] = []string{entry.Name, entry.PriceLabel()}
	}
	rowWidth := 0
	if m.width > 0 {
		rowWidth = m.width - 2
	}
	formatted := table.FormatWidth(rows, []table.Alignment{table.AlignLeft, table.AlignRight}, rowWidth)

	lines := make([]styledLine, 0, len(page.Items)*3)
	for i, entry := range page.Items {
		selected := i == m.view.Cursor
		lines = append(lines, m.buildItemLine(formatted[i], selected))
		lines = append(lines, m.descriptionLines(entry, selected)...)
	}
	return lines
}

// buildItemLine constructs the name and price row for one entry.
func (m *Model) buildItemLine(text string, selected bool) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	return styledLine{
		text:          itemIndicator + " " + text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) descriptionLines(entry catalog.Entry, selected bool) []styledLine {
	if entry.Description == "" {
		return nil
	}
	expanded := m.view.IsExpanded(entry.ID)
	var lines []styledLine
	if expanded {
		wrapAt := m.width - len(descriptionIndent)
		text := entry.Description
		if wrapAt > 0 {
			text = wordwrap.String(text, wrapAt)
		}
		for _, part := range strings.Split(text, "\n") {
			lines = append(lines, styledLine{text: descriptionIndent + part, style: styles.Description})
		}
	} else {
		text := descriptionIndent + entry.Description
		if m.width > 0 {
			text = truncateText(text, m.width)
		}
		lines = append(lines, styledLine{text: text, style: styles.Description})
	}
	if selected {
		hint := "Read more"
		if expanded {
			hint = "Read less"
		}
		lines = append(lines, styledLine{text: descriptionIndent + hint, style: styles.Hint, highlightFrom: len(descriptionIndent)})
	}
	return lines
}

func (m *Model) paginationLine(page uistate.Page) string {
	control := func(label string, enabled bool) string {
		style := styles.DisabledControl
		if enabled {
			style = styles.Control
		}
		if style == nil {
			return label
		}
		return style.Render(label)
	}
	label := page.Label()
	if styles.PageLabel != nil {
		label = styles.PageLabel.Render(label)
	}
	return control("‹ Previous", page.HasPrevious) + "  " + label + "  " + control("Next ›", page.HasNext)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
