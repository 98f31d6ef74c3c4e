// Package ui holds the presentation layer's pure logic: deriving the visible
// item set from client state and rendering it as a grid or a list. Nothing
// here performs I/O.
package ui

import (
	"fmt"
	"strings"

	"freezer-backend/pkg/client"
)

type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// FilterItems derives the visible set: items in the current freezer whose
// name or description contains the search text, case-insensitively. An empty
// freezer id means all freezers; an empty search matches everything.
func FilterItems(items []client.FoodItem, freezerID, search string) []client.FoodItem {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]client.FoodItem, 0, len(items))
	for _, item := range items {
		if freezerID != "" && item.FreezerID != freezerID {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.Description), needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Render draws the same filtered set in either layout.
func Render(items []client.FoodItem, mode ViewMode) string {
	if len(items) == 0 {
		return "No items.\n"
	}
	if mode == ViewGrid {
		return renderGrid(items)
	}
	return renderList(items)
}

func renderList(items []client.FoodItem) string {
	var b strings.Builder
	for _, item := range items {
		box := item.FreezerBox
		if box == "" {
			box = "-"
		}
		fmt.Fprintf(&b, "%-12s  %-10s  %-10s  %-24s  %s\n",
			item.FrozenDate.Format("2006-01-02"),
			item.FreezerID,
			item.ItemType,
			item.Name,
			box,
		)
	}
	return b.String()
}

func renderGrid(items []client.FoodItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "+----------------------------------------+\n")
		fmt.Fprintf(&b, "| %-38s |\n", truncate(item.Name, 38))
		fmt.Fprintf(&b, "| %-38s |\n", truncate(item.Description, 38))
		fmt.Fprintf(&b, "| %-10s %-14s %12s |\n",
			item.ItemType,
			item.FreezerID,
			item.FrozenDate.Format("2006-01-02"),
		)
		fmt.Fprintf(&b, "+----------------------------------------+\n")
	}
	return b.String()
}

// truncate counts runes, not bytes, so accented names are never cut through
// the middle of a character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
