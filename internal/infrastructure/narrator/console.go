package narrator

import (
	"moving-quote-agent/internal/application/port/output"

	"github.com/fatih/color"
)

var _ output.NarratorPort = (*ConsoleNarrator)(nil)

// ConsoleNarrator prints the scheduler demo's progress in color so an
// audience can follow the browser along.
type ConsoleNarrator struct {
	step *color.Color
	dim  *color.Color
	ok   *color.Color
	warn *color.Color
	fail *color.Color
}

func NewConsoleNarrator() *ConsoleNarrator {
	return &ConsoleNarrator{
		step: color.New(color.FgCyan, color.Bold),
		dim:  color.New(color.Faint),
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		fail: color.New(color.FgRed, color.Bold),
	}
}

func (n *ConsoleNarrator) Step(format string, args ...any) {
	n.step.Printf("\n▶ "+format+"\n", args...)
}

func (n *ConsoleNarrator) Detail(format string, args ...any) {
	n.dim.Printf("  "+format+"\n", args...)
}

func (n *ConsoleNarrator) Success(format string, args ...any) {
	n.ok.Printf("  ✓ "+format+"\n", args...)
}

func (n *ConsoleNarrator) Warn(format string, args ...any) {
	n.warn.Printf("  ⚠ "+format+"\n", args...)
}

func (n *ConsoleNarrator) Failure(format string, args ...any) {
	n.fail.Printf("  ✗ "+format+"\n", args...)
}

// Silent discards all narration. Used in tests.
type Silent struct{}

var _ output.NarratorPort = Silent{}

func (Silent) Step(string, ...any)    {}
func (Silent) Detail(string, ...any)  {}
func (Silent) Success(string, ...any) {}
func (Silent) Warn(string, ...any)    {}
func (Silent) Failure(string, ...any) {}
