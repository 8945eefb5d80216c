package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const footerHeight = 2

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			return m, m.filter.Focus()
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, forceQuitKey):
		return m, tea.Quit
	case key.Matches(msg, applyFilterKey):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case key.Matches(msg, cancelFilterKey):
		m.filtering = false
		m.filter.Blur()
		m.filter.Reset()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refresh()
	return m, cmd
}

// resize fits the viewport between the header and the footer
func (m *Model) resize() {
	if m.width == 0 {
		return
	}

	height := m.height - lipgloss.Height(m.headerView()) - footerHeight
	if m.help.ShowAll {
		height -= lipgloss.Height(m.help.View(m.keys)) - 1
	}
	if height < 1 {
		height = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, height)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = height
	}
	m.help.Width = m.width
	m.refresh()
}

// refresh re-renders the list after the filter changed
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderList(m.Visible(), len(m.result.NonFollowers)))
	m.viewport.GotoTop()
}
