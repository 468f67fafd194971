// Package status renders a day's log for the terminal.
package status

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/faffage/faff/internal/domain"
	"github.com/faffage/faff/internal/logfmt"
)

type RenderOptions struct {
	Now time.Time
}

// Render formats the log's timeline, one line per session, with the running
// total underneath. The active session, if any, is marked and measured
// against opts.Now.
func Render(log domain.Log, opts RenderOptions) (string, error) {
	s := newStyles()

	lines := []string{
		s.title.Render(fmt.Sprintf("Log for %s", log.Date)),
		s.header.Render(fmt.Sprintf("timezone: %s", log.Timezone)),
	}

	if len(log.Timeline) == 0 {
		lines = append(lines, s.empty.Render("No sessions recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...), nil
	}

	for _, session := range log.Timeline {
		lines = append(lines, renderSession(session, opts, s))
	}

	total, err := log.TotalRecordedTime(opts.Now)
	if err != nil {
		return "", fmt.Errorf("total recorded time: %w", err)
	}
	lines = append(lines, s.total.Render(fmt.Sprintf("total: %s", logfmt.FormatDuration(total))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...), nil
}

func renderSession(session domain.Session, opts RenderOptions, s styles) string {
	start := session.Start.Format("15:04")

	if session.IsOpen() {
		elapsed := opts.Now.Sub(session.Start).Truncate(time.Second)
		return lipgloss.JoinHorizontal(lipgloss.Top,
			s.detail.Render(fmt.Sprintf("%s-     ", start)),
			" ",
			s.alias.Render(session.Intent.Alias),
			" ",
			s.active.Render(fmt.Sprintf("(active, %s)", elapsed)),
		)
	}

	duration, err := session.Duration()
	if err != nil {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			s.detail.Render(fmt.Sprintf("%s-%s", start, session.End.Format("15:04"))),
			" ",
			s.alias.Render(session.Intent.Alias),
			" ",
			s.warning.Render("(invalid interval)"),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.detail.Render(fmt.Sprintf("%s-%s", start, session.End.Format("15:04"))),
		" ",
		s.alias.Render(session.Intent.Alias),
		" ",
		s.header.Render(fmt.Sprintf("(%s)", logfmt.FormatDuration(duration))),
	)
}
