package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/packista/packista/pkg/composer"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// versionListModel is the bubbletea model for interactive version browsing.
type versionListModel struct {
	pkg      string
	versions composer.VersionList
	cursor   int
	offset   int
	height   int
	selected composer.VersionRecord
}

// newVersionListModel creates a browser over the given version list.
func newVersionListModel(pkg string, versions composer.VersionList) versionListModel {
	return versionListModel{
		pkg:      pkg,
		versions: versions,
		height:   15,
	}
}

func (m versionListModel) Init() tea.Cmd {
	return nil
}

func (m versionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.versions)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			m.selected = m.versions[m.cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m versionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.pkg))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.versions) {
		end = len(m.versions)
	}

	for i := m.offset; i < end; i++ {
		v, ok := m.versions[i].Version()
		if !ok {
			v = "(no version)"
		}

		line := "  " + v
		style := listNormalStyle
		if i == m.cursor {
			line = "▸ " + v
			style = listSelectedStyle
		}
		b.WriteString(style.Render(line))
		if label := stabilityLabel(v); label != "" {
			b.WriteString(" " + listDimStyle.Render(label))
		}
		b.WriteString("\n")
	}

	if len(m.versions) > m.height {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render("…"))
	}
	return b.String()
}

// browseVersions runs the interactive version browser and prints the record
// selected by the user, if any.
func browseVersions(pkg string, versions composer.VersionList) error {
	final, err := tea.NewProgram(newVersionListModel(pkg, versions)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(versionListModel); ok && m.selected != nil {
		return printJSON(m.selected)
	}
	return nil
}
