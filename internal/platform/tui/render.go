package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// styles caches one lipgloss style per hex color. Shared by every SSH
// session, hence the lock.
var styles = struct {
	sync.RWMutex
	m map[core.Color]lipgloss.Style
}{m: map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}}

// styleFor returns the foreground style for c.
func styleFor(c core.Color) lipgloss.Style {
	styles.RLock()
	s, ok := styles.m[c]
	styles.RUnlock()
	if ok {
		return s
	}

	s = lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
	styles.Lock()
	styles.m[c] = s
	styles.Unlock()
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
