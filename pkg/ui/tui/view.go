package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"igunfollow/pkg/compare"
)

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m Model) headerView() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("INSTAGRAM FOLLOWER ANALYSIS"))
	sb.WriteString("\n")
	sb.WriteString(renderCounts(m.result))
	if m.output != "" {
		sb.WriteString("\n")
		sb.WriteString(successStyle.Render("Saved to ") + m.output)
	}
	return sb.String()
}

func (m Model) footerView() string {
	if m.filtering {
		return m.filter.View()
	}

	status := fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)
	if q := m.filter.Value(); q != "" {
		status += fmt.Sprintf("filter %q ", q)
	}
	return statusStyle.Render(status) + " " + m.help.View(m.keys)
}

// renderCounts draws the summary counts as a two-column table
func renderCounts(res compare.Result) string {
	rows := [][]string{
		{"You follow", strconv.Itoa(res.Following)},
		{"Follow you", strconv.Itoa(res.Followers)},
		{"Mutual following", strconv.Itoa(res.Mutual)},
		{"Ignored", strconv.Itoa(res.Ignored)},
		{"Don't follow you back", strconv.Itoa(len(res.NonFollowers))},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return statsLabelStyle
			}
			return statsValueStyle
		}).
		Rows(rows...)

	return t.String()
}

// renderList numbers the visible usernames. total is the unfiltered count.
func renderList(usernames []string, total int) string {
	if total == 0 {
		return successStyle.Render("Everyone you follow follows you back.")
	}
	if len(usernames) == 0 {
		return warningStyle.Render("No usernames match the filter.")
	}

	var sb strings.Builder
	for i, u := range usernames {
		sb.WriteString(indexStyle.Render(strconv.Itoa(i+1) + "."))
		sb.WriteString(usernameStyle.Render(u))
		sb.WriteString("\n")
	}
	return sb.String()
}
