package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fenilsonani/diskscout/internal/ui/styles"
)

// StatusBar is the one-line bar rendered at the bottom of the browser.
type StatusBar struct {
	viewName  string
	position  int
	total     int
	shortcuts [][2]string
}

// NewStatusBar creates a new status bar
func NewStatusBar(viewName string) *StatusBar {
	return &StatusBar{viewName: viewName}
}

// SetPosition sets the cursor position and total row count
func (s *StatusBar) SetPosition(position, total int) {
	s.position = position
	s.total = total
}

// SetShortcuts sets the key hints, in display order
func (s *StatusBar) SetShortcuts(shortcuts [][2]string) {
	s.shortcuts = shortcuts
}

// Render renders the status bar at the given width
func (s *StatusBar) Render(width int) string {
	if width <= 0 {
		width = 80
	}

	left := s.viewName
	if s.total > 0 {
		left = fmt.Sprintf("%s • %d/%d", s.viewName, s.position+1, s.total)
	}

	var hints []string
	for _, sc := range s.shortcuts {
		hints = append(hints, fmt.Sprintf("%s:%s", styles.DimStyle.Render(sc[0]), sc[1]))
	}
	right := strings.Join(hints, " ")

	spacing := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if spacing < 1 {
		spacing = 1
	}

	return styles.StatusBarStyle.Width(width).Render(
		left + strings.Repeat(" ", spacing) + right)
}
