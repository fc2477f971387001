package model

import "io"

// RenderOptions holds the ring parameters shared by every command.
type RenderOptions struct {
	Percentage float64
	Size       float64
	Stroke     float64
	Gradient   string // registered id, or "#rrggbb" for a solid fill
	Background string // masking disc colour, normalised hex
	Message    string // caption under the ring; empty for none
	Icon       bool   // draw the lightning bolt in the centre
}

// OutputOptions controls where `render` writes the SVG.
type OutputOptions struct {
	Out  string // file path; "" or "-" means stdout
	Save bool   // write into the data dir instead of Out
}

// PreviewOptions configures the terminal preview.
type PreviewOptions struct {
	RenderOptions

	Static bool      // percentage given on the command line; no feed
	Input  io.Reader // progress feed; nil runs the demo feed
	Rows   int       // ring height in terminal rows
	FPS    int
	Hold   bool // stay open after the feed completes
}
