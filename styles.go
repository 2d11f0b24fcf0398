package main

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/eabrahm-wq/GameDirectory/internal/catalog"
)

// Terminal palette, matching the web page colours.
var (
	accent = lipgloss.Color("#2f5d50")
	muted  = lipgloss.Color("#6c6557")
	border = lipgloss.Color("#ddd5c4")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(border)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// gameTable renders games one per row in the given order.
func gameTable(games []catalog.Game) string {
	t := newTable("#", "NAME", "CATEGORY", "DIFFICULTY", "MIN", "RESET", "URL")
	for _, g := range games {
		t.Row(
			strconv.Itoa(g.PopularityRank),
			g.Name,
			string(g.Category),
			string(g.Difficulty),
			strconv.Itoa(g.AvgTimeMin),
			string(g.ResetType),
			g.URL,
		)
	}
	return t.Render()
}
