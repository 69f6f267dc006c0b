// Package ui is the interactive findings browser: it runs one scan with
// a spinner, then lets the user scroll the resulting findings.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/diskscout/internal/scan"
	"github.com/fenilsonani/diskscout/internal/ui/components"
	"github.com/fenilsonani/diskscout/internal/ui/styles"
)

// Run starts the interactive browser for one scan request.
func Run(root string, mode scan.Mode, params scan.Params) error {
	m := newModel(root, mode, params)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running interactive mode: %w", err)
	}

	return nil
}

type scanDoneMsg struct {
	report *scan.Report
	err    error
}

// model drives the two browser phases: scanning, then browsing.
type model struct {
	root   string
	mode   scan.Mode
	params scan.Params

	spinner   spinner.Model
	statusBar *components.StatusBar

	scanning bool
	report   *scan.Report
	err      error

	cursor int
	offset int
	width  int
	height int
}

func newModel(root string, mode scan.Mode, params scan.Params) *model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	bar := components.NewStatusBar("findings")
	bar.SetShortcuts([][2]string{
		{"↑/↓", "move"},
		{"g/G", "top/bottom"},
		{"q", "quit"},
	})

	return &model{
		root:      root,
		mode:      mode,
		params:    params,
		spinner:   s,
		statusBar: bar,
		scanning:  true,
		width:     80,
		height:    24,
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.performScan)
}

func (m *model) performScan() tea.Msg {
	report, err := scan.Scan(context.Background(), m.root, m.mode, m.params)
	return scanDoneMsg{report: report, err: err}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case scanDoneMsg:
		m.scanning = false
		m.report = msg.report
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.report != nil && m.cursor < len(m.report.Files)-1 {
			m.cursor++
		}
	case "g":
		m.cursor = 0
	case "G":
		if m.report != nil && len(m.report.Files) > 0 {
			m.cursor = len(m.report.Files) - 1
		}
	}

	m.clampScroll()
	return m, nil
}

// clampScroll keeps the cursor inside the visible window.
func (m *model) clampScroll() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// visibleRows is the findings window height: total minus title, header
// block, and status bar.
func (m *model) visibleRows() int {
	rows := m.height - 8
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("diskscout"))
	b.WriteString("\n\n")

	if m.scanning {
		b.WriteString(m.spinner.View())
		b.WriteString(" Scanning ")
		b.WriteString(styles.FilePathStyle.Render(m.root))
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf(" (%s)", m.mode)))
		b.WriteString("\n")
		return b.String()
	}

	if m.err != nil {
		b.WriteString(styles.ErrorStyle.Render("Scan failed"))
		b.WriteString("\n\n")
		b.WriteString(m.err.Error())
		b.WriteString("\n\n")
		b.WriteString(styles.DimStyle.Render("Press q to quit"))
		return b.String()
	}

	b.WriteString(styles.SubtitleStyle.Render(string(m.report.Mode)))
	b.WriteString(styles.DimStyle.Render(" in "))
	b.WriteString(styles.FilePathStyle.Render(m.report.Root))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d files, %.2f MB total. %s\n\n",
		m.report.FilesFound, m.report.TotalSizeMB, m.report.Note))

	if len(m.report.Files) == 0 {
		b.WriteString(styles.DimStyle.Render("Nothing found."))
		b.WriteString("\n")
	} else {
		m.renderFindings(&b)
	}

	b.WriteString("\n")
	m.statusBar.SetPosition(m.cursor, len(m.report.Files))
	b.WriteString(m.statusBar.Render(m.width))

	return b.String()
}

func (m *model) renderFindings(b *strings.Builder) {
	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.report.Files) {
		end = len(m.report.Files)
	}

	for i := m.offset; i < end; i++ {
		f := m.report.Files[i]
		line := fmt.Sprintf("%s  %s  %s",
			truncatePath(f.Path, 50),
			styles.FileSizeStyle.Render(fmt.Sprintf("%8.2f MB", f.SizeMB)),
			styles.ReasonStyle.Render(f.Reason))

		if i == m.cursor {
			b.WriteString(styles.HighlightStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
}

func truncatePath(path string, max int) string {
	if len(path) <= max {
		return fmt.Sprintf("%-*s", max, path)
	}
	return "..." + path[len(path)-max+3:]
}
