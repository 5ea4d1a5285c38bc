package table

import (
	"strings"
	"unicode/utf8"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const columnGap = 2

// Format returns the rows padded according to the widest entry in each column.
func Format(rows [][]string, alignments []Alignment) []string {
	return FormatWidth(rows, alignments, 0)
}

// FormatWidth pads like Format and then widens the gap before the last column
// so each row spans width columns. A width at or below the natural row width
// leaves the rows unchanged.
func FormatWidth(rows [][]string, alignments []Alignment, width int) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := cellWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	natural := columnGap * (colCount - 1)
	for _, w := range widths {
		natural += w
	}
	lastGap := columnGap
	if width > natural && colCount > 1 {
		lastGap += width - natural
	}

	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := 0; c < colCount; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				gap := columnGap
				if c == colCount-1 {
					gap = lastGap
				}
				writeSpaces(&b, gap)
			}
			pad := widths[c] - cellWidth(cell)
			if c < len(alignments) && alignments[c] == AlignRight {
				writeSpaces(&b, pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < colCount-1 {
					writeSpaces(&b, pad)
				}
			}
		}
		out[i] = b.String()
	}
	return out
}

func cellWidth(text string) int {
	return utf8.RuneCountInString(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
