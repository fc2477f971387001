package ui

import (
	"time"

	"ringlet/internal/progress"
)

type feedUpdateMsg struct {
	U progress.Update
}

type feedDoneMsg struct {
	R progress.Result
}

type frameMsg time.Time

type demoTickMsg time.Time
