// Package texttable renders fixed-width, box-drawing text tables,
// sized to their content. Used by the chat bot to post history,
// weight progress and personal records into a code block.
package texttable

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ShapeError signals a row whose cell count does not match the header count.
// It is a programming contract violation and is surfaced immediately.
type ShapeError struct {
	Row      int
	Got      int
	Expected int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("row %d has %d cells, expected %d", e.Row, e.Got, e.Expected)
}

const placeholder = "-"

// Render produces a box-drawing grid for the given headers and rows.
// A nil cell renders as "-". Each column is as wide as its widest
// rendered cell (header included); content is left-aligned with one
// space of padding on each side. With no rows the output is exactly
// the top border, the header, the separator and the bottom border.
func Render(headers []string, rows [][]any) (string, error) {
	rendered := make([][]string, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(headers) {
			return "", &ShapeError{Row: i, Got: len(row), Expected: len(headers)}
		}
		cells := make([]string, len(row))
		for j, cell := range row {
			if cell == nil {
				cells[j] = placeholder
			} else {
				cells[j] = fmt.Sprint(cell)
			}
		}
		rendered = append(rendered, cells)
	}

	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rendered {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(borderLine("┌", "┬", "┐", colWidths))
	sb.WriteString("\n")
	sb.WriteString(contentLine(headers, colWidths))
	sb.WriteString("\n")
	sb.WriteString(borderLine("├", "┼", "┤", colWidths))
	for _, row := range rendered {
		sb.WriteString("\n")
		sb.WriteString(contentLine(row, colWidths))
	}
	sb.WriteString("\n")
	sb.WriteString(borderLine("└", "┴", "┘", colWidths))

	return sb.String(), nil
}

func borderLine(left, mid, right string, colWidths []int) string {
	parts := make([]string, len(colWidths))
	for i, w := range colWidths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return left + strings.Join(parts, mid) + right
}

func contentLine(cells []string, colWidths []int) string {
	var sb strings.Builder
	sb.WriteString("│")
	for i, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", colWidths[i]-utf8.RuneCountInString(cell)))
		sb.WriteString(" │")
	}
	return sb.String()
}
