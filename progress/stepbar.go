// stepbar.go - Schrittbasierte Fortschrittsanzeige fuer Denoising-Schritte
package progress

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/term"
)

const defaultTermWidth = 80

// StepBar displays step-based progress for the denoising loop, one cell
// per completed step. It is safe to Set from a different goroutine than
// the renderer.
type StepBar struct {
	message string
	current atomic.Int64
	total   int
}

func NewStepBar(message string, total int) *StepBar {
	return &StepBar{message: message, total: total}
}

func (s *StepBar) Set(current int) {
	s.current.Store(int64(current))
}

func (s *StepBar) String() string {
	current := int(s.current.Load())
	percent := float64(current) / float64(s.total) * 100

	// shrink the bar when there are more steps than columns
	barWidth := s.total
	termWidth, _, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil {
		termWidth = defaultTermWidth
	}
	if max := termWidth - len(s.message) - 20; barWidth > max && max > 0 {
		barWidth = max
	}
	filled := current * barWidth / s.total

	return fmt.Sprintf("%s %3.0f%% ▕%s%s▏ %d/%d",
		s.message, percent,
		strings.Repeat("█", filled), strings.Repeat(" ", barWidth-filled),
		current, s.total)
}
