package cascade

import (
	"errors"
	"fmt"

	"github.com/xram64/advent2021/grid"
)

// DefaultThreshold is the energy level a cell must exceed to flash.
const DefaultThreshold = 9

// Sentinel errors for stepping and simulation.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("cascade: grid is nil")

	// ErrOptionViolation is returned when an invalid Option or limit is supplied.
	ErrOptionViolation = errors.New("cascade: invalid option supplied")

	// ErrNotSynchronized is returned when no tick within the limit flashed every cell.
	ErrNotSynchronized = errors.New("cascade: grid did not synchronize within step limit")
)

// Strategy selects the propagation algorithm used inside a tick.
type Strategy int

const (
	// ScanRetry rescans the full grid until a pass adds no flash.
	ScanRetry Strategy = iota
	// FrontierQueue propagates through a work queue of cells crossing the threshold.
	FrontierQueue
)

func (s Strategy) String() string {
	switch s {
	case ScanRetry:
		return "scan"
	case FrontierQueue:
		return "queue"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "scan" or "queue" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "scan", "":
		return ScanRetry, nil
	case "queue":
		return FrontierQueue, nil
	default:
		return ScanRetry, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
	}
}

// Option configures Step and Simulator via functional arguments.
type Option func(*Options)

// Options holds the tick parameters and hooks.
type Options struct {
	// Threshold is the level a cell must exceed to flash. Default 9.
	Threshold int

	// Strategy chooses the propagation algorithm.
	Strategy Strategy

	// OnCharge is called once per tick after the charge phase and before any
	// flash, with the grid being stepped. It must not modify the grid.
	OnCharge func(g *grid.Grid[int])

	// OnFlash is called each time a cell flashes, in flash order.
	OnFlash func(p grid.Position)

	// History makes a Simulator keep a snapshot of the grid after every tick.
	History bool

	err error
}

// DefaultOptions returns Options with threshold 9, ScanRetry and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Strategy:  ScanRetry,
		OnCharge:  func(*grid.Grid[int]) {},
		OnFlash:   func(grid.Position) {},
	}
}

// WithThreshold sets the flash threshold. Negative values are rejected.
func WithThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Threshold cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Threshold = n
	}
}

// WithStrategy selects the propagation algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case ScanRetry, FrontierQueue:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, s)
		}
	}
}

// WithOnCharge registers a callback run after the charge phase of each tick.
func WithOnCharge(fn func(g *grid.Grid[int])) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCharge = fn
		}
	}
}

// WithOnFlash registers a callback run for each flash.
func WithOnFlash(fn func(p grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFlash = fn
		}
	}
}

// WithHistory makes a Simulator record a snapshot after every tick.
// Step ignores it.
func WithHistory() Option {
	return func(o *Options) {
		o.History = true
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
