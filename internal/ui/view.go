package ui

import (
	"fmt"
	"math"
	"strings"

	"ringlet/internal/progress"
	"ringlet/internal/render"
	"ringlet/internal/spinner"
	"ringlet/internal/util/format"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewRing())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.styles.Faint.Render("q: quit • +/-: nudge • g: gradient"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewHeader() string {
	title := m.styles.Title.Render("ringlet")
	sub := m.styles.Subtitle.Render(fmt.Sprintf("gradient: %s", m.gradient))
	return title + "  " + sub
}

func (m Model) viewRing() string {
	panel := spinner.LoadNetwork(m.easer.Value(), "").WithComposer(m.composer)
	panel.Spinner.Gradient = m.gradient
	if m.opts.Size > 0 {
		panel.Spinner.Size = m.opts.Size
	}
	panel.Spinner.StrokeWidth = m.opts.Stroke
	if !m.opts.Icon {
		panel.Spinner.Content = nil
	}
	frame, err := render.Terminal(panel, m.opts.Rows, m.composer.Background(), true)
	if err != nil {
		return m.styles.Error.Render("✗ " + err.Error())
	}
	return m.styles.Box.Render(frame)
}

func (m Model) viewStatus() string {
	var left string
	switch {
	case m.err != nil:
		left = m.styles.Error.Render("✗ " + m.err.Error())
	case !m.known:
		left = m.styles.Spinner.Render(m.small.View()) + " " + m.styles.Faint.Render(string(progress.StageWaiting))
	default:
		v := math.Max(0, math.Min(1, m.easer.Value()))
		left = m.bar.ViewAs(v) + " " + m.styles.Percent.Render(format.Percent(v))
		if m.stage == progress.StageComplete && m.easer.Settled(m.target) {
			left += " " + m.styles.Success.Render("✓")
		}
	}
	if m.message == "" {
		return left
	}
	return left + "\n" + m.styles.Message.Render(m.message)
}
