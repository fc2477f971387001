// Package progress carries completion updates from a feed to whatever is
// drawing the ring.
package progress

// Stage identifies where a feed is in its lifecycle.
type Stage string

const (
	StageWaiting  Stage = "waiting"
	StageRunning  Stage = "running"
	StageComplete Stage = "complete"
	StageError    Stage = "error"
)

// Update conveys a completion fraction and status line.
// Percent is 0..1 when known; set to a negative value (e.g., -1) to mean unknown.
type Update struct {
	Percent float64
	Message string
}

// Known reports whether the update carries a percentage.
func (u Update) Known() bool {
	return u.Percent >= 0
}

// Result is emitted once when a feed ends.
type Result struct {
	Lines int   // lines read, parsed or not
	Err   error // nil on clean EOF
}

// Reporter is implemented by the UI or any observer interested in progress events.
type Reporter interface {
	Update(u Update)
	Done(r Result)
}

// ReporterFunc adapts a plain function into a Reporter that ignores Done.
type ReporterFunc func(Update)

func (f ReporterFunc) Update(u Update) { f(u) }
func (f ReporterFunc) Done(Result)     {}
