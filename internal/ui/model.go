package ui

import (
	"context"
	"math"
	"time"

	bubblesprogress "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"ringlet/internal/animate"
	"ringlet/internal/model"
	"ringlet/internal/progress"
	"ringlet/internal/ring"
)

const nudgeStep = 0.05

type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	opts     model.PreviewOptions
	composer *ring.Composer

	// Gradient cycling
	gradients []string
	gradient  string

	// Feed state
	target   float64
	known    bool // target has been set; any value, including negative, is drawable
	message  string
	stage    progress.Stage
	feedDone bool
	err      error

	easer *animate.Easer
	small spinner.Model
	bar   bubblesprogress.Model

	// UI
	width, height int
	styles        Styles

	// Internal event channel used by the feed reporter to feed tea messages
	eventCh chan tea.Msg
}

func NewModel(ctx context.Context, opts model.PreviewOptions, c *ring.Composer) Model {
	cctx, cancel := context.WithCancel(ctx)
	sty := defaultStyles()

	if c == nil {
		c = ring.NewComposer()
	}
	if opts.Rows <= 0 {
		opts.Rows = 12
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = sty.Spinner
	bar := bubblesprogress.New(
		bubblesprogress.WithDefaultGradient(),
		bubblesprogress.WithWidth(opts.Rows*2),
		bubblesprogress.WithoutPercentage(),
	)

	m := Model{
		ctx:       cctx,
		cancel:    cancel,
		opts:      opts,
		composer:  c,
		gradients: c.Registry().IDs(),
		gradient:  opts.Gradient,
		stage:     progress.StageWaiting,
		message:   opts.Message,
		easer:     animate.NewEaser(opts.FPS),
		small:     sp,
		bar:       bar,
		styles:    sty,
		eventCh:   make(chan tea.Msg, 64),
	}
	if opts.Static {
		m.target = opts.Percentage
		m.known = true
		m.stage = progress.StageRunning
		m.feedDone = true
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.small.Tick, m.frameCmd()}
	if m.opts.Static {
		return tea.Batch(cmds...)
	}
	if m.opts.Input != nil {
		go scanFeed(m.ctx, m.opts.Input, m.eventCh)
		cmds = append(cmds, m.listenEventsCmd())
	} else {
		cmds = append(cmds, demoTickCmd())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		case "+", "=", "right":
			m.nudge(nudgeStep)
		case "-", "left":
			m.nudge(-nudgeStep)
		case "g":
			m.cycleGradient()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case frameMsg:
		if m.known {
			m.easer.Step(m.target)
		}
		if m.finished() {
			m.cancel()
			return m, tea.Quit
		}
		return m, m.frameCmd()

	case demoTickMsg:
		next := m.base() + demoIncrement
		if next >= 1 {
			m.apply(progress.Update{Percent: 1, Message: demoMessage(1)})
			m.feedDone = true
			m.stage = progress.StageComplete
			return m, nil
		}
		m.apply(progress.Update{Percent: next, Message: demoMessage(next)})
		return m, demoTickCmd()

	case feedUpdateMsg:
		m.apply(msg.U)
		return m, m.listenEventsCmd()

	case feedDoneMsg:
		m.feedDone = true
		m.err = msg.R.Err
		if m.err != nil {
			m.stage = progress.StageError
		} else {
			m.stage = progress.StageComplete
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.small, cmd = m.small.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) apply(u progress.Update) {
	if u.Known() {
		m.target = u.Percent
		m.known = true
		m.stage = progress.StageRunning
	}
	if u.Message != "" {
		m.message = u.Message
	}
}

func (m *Model) nudge(d float64) {
	m.target = math.Max(0, math.Min(1, m.base()+d))
	m.known = true
	if m.stage == progress.StageWaiting {
		m.stage = progress.StageRunning
	}
}

// finished reports whether the program should exit on its own.
func (m Model) finished() bool {
	if m.opts.Hold || !m.feedDone {
		return false
	}
	if !m.known || m.err != nil {
		return true
	}
	return m.easer.Settled(m.target)
}

// cycleGradient moves to the next registered gradient. A solid colour
// fill is not in the registry, so cycling from it starts at the first id.
func (m *Model) cycleGradient() {
	if len(m.gradients) == 0 {
		return
	}
	next := 0
	for i, id := range m.gradients {
		if id == m.gradient {
			next = (i + 1) % len(m.gradients)
			break
		}
	}
	m.gradient = m.gradients[next]
}

// Gradient is the id currently used for the ring.
func (m Model) Gradient() string {
	return m.gradient
}

// Target is the percentage the ring is easing towards. It is only
// meaningful when Known reports true.
func (m Model) Target() float64 {
	return m.target
}

// Known reports whether a percentage has been received yet.
func (m Model) Known() bool {
	return m.known
}

// base is where nudges and the demo feed start from.
func (m Model) base() float64 {
	if !m.known {
		return 0
	}
	return m.target
}

// Err is the feed error, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.easer.Frame(), func(t time.Time) tea.Msg { return frameMsg(t) })
}

func demoTickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg { return demoTickMsg(t) })
}

func (m Model) listenEventsCmd() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case msg := <-m.eventCh:
			return msg
		}
	}
}
