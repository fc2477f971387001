package ui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"ringlet/internal/progress"
)

// demoSteps drive the demo feed when no input is piped in.
var demoSteps = []struct {
	upTo    float64
	message string
}{
	{0.15, "Connecting to peers"},
	{0.55, "Syncing headers"},
	{0.95, "Syncing filters"},
	{1.01, "Almost there"},
}

const demoIncrement = 0.02

func demoMessage(p float64) string {
	for _, s := range demoSteps {
		if p < s.upTo {
			return s.message
		}
	}
	return "Done"
}

type teaReporter struct {
	ctx context.Context
	ch  chan tea.Msg
}

func (r teaReporter) Update(u progress.Update) {
	select {
	case r.ch <- feedUpdateMsg{U: u}:
	default:
	}
}

func (r teaReporter) Done(res progress.Result) {
	// Block on Done messages - they're critical - unless the UI is gone
	select {
	case r.ch <- feedDoneMsg{R: res}:
	case <-r.ctx.Done():
	}
}

func scanFeed(ctx context.Context, in io.Reader, ch chan tea.Msg) {
	_ = progress.Scan(ctx, in, teaReporter{ctx: ctx, ch: ch})
}
