// Package progress reports per-symbol completion during batch downloads.
package progress

import (
	"github.com/schollz/progressbar/v3"
)

// Reporter receives one Advance call per completed unit of work. Start may
// be called again to begin a new pass with its own total.
type Reporter interface {
	Start(total int, label string)
	Advance()
}

// Nop is the Reporter used when progress display is disabled.
type Nop struct{}

func (Nop) Start(int, string) {}
func (Nop) Advance()          {}

// Bar renders a terminal progress bar. Advance is safe for concurrent use.
type Bar struct {
	bar *progressbar.ProgressBar
}

func (b *Bar) Start(total int, label string) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(label),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (b *Bar) Advance() {
	if b.bar != nil {
		_ = b.bar.Add(1)
	}
}

// New returns a Bar when enabled, otherwise a Nop.
func New(enabled bool) Reporter {
	if enabled {
		return &Bar{}
	}
	return Nop{}
}
