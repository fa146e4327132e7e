package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyValue is one row of a key/value listing
type KeyValue struct {
	Key   string
	Value string
}

// RenderKeyValue renders a key-value pair
func RenderKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s",
		StyleAccent.Render(key),
		value,
	)
}

// RenderKeyValues renders rows with the values aligned in one column
func RenderKeyValues(rows []KeyValue) string {
	width := 0
	for _, row := range rows {
		if w := lipgloss.Width(row.Key); w > width {
			width = w
		}
	}

	var builder strings.Builder
	for _, row := range rows {
		padding := strings.Repeat(" ", width-lipgloss.Width(row.Key))
		builder.WriteString(StyleAccent.Render(row.Key))
		builder.WriteString(padding)
		builder.WriteString("  ")
		builder.WriteString(row.Value)
		builder.WriteString("\n")
	}
	return builder.String()
}
