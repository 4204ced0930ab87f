package region

import (
	"errors"
	"fmt"
)

// Sentinel errors for region exploration.
var (
	// ErrNilMask is returned when a nil mask is passed.
	ErrNilMask = errors.New("region: mask is nil")

	// ErrSeedOutOfRange is returned when the seed lies outside the mask.
	ErrSeedOutOfRange = errors.New("region: seed out of range")

	// ErrSeedIsWall is returned when the seed cell is itself a wall.
	ErrSeedIsWall = errors.New("region: seed is a wall cell")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("region: invalid option supplied")

	// ErrNonConvergence is matched by *NonConvergenceError.
	ErrNonConvergence = errors.New("region: exploration did not converge")
)

// NonConvergenceError reports that Explore hit its round ceiling before the
// frontier emptied. The partial region is returned alongside it.
type NonConvergenceError struct {
	Rounds   int // rounds executed
	Found    int // cells in the partial region
	Frontier int // cells still waiting to be scanned
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("region: no fixed point after %d rounds (%d cells found, %d pending)",
		e.Rounds, e.Found, e.Frontier)
}

// Is makes errors.Is(err, ErrNonConvergence) succeed.
func (e *NonConvergenceError) Is(target error) bool {
	return target == ErrNonConvergence
}

// Axis is the direction of a single scan round.
type Axis int

const (
	// Horizontal scans along a row (left and right).
	Horizontal Axis = iota
	// Vertical scans along a column (up and down).
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

func (a Axis) flip() Axis {
	if a == Vertical {
		return Horizontal
	}
	return Vertical
}

// ScanOrder selects which axis the first round scans.
type ScanOrder int

const (
	// RowFirst scans the seed's row first.
	RowFirst ScanOrder = iota
	// ColumnFirst scans the seed's column first.
	ColumnFirst
)

// Option configures Explore via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when Explore runs.
type Option func(*Options)

// Options holds the parameters of one exploration.
type Options struct {
	// MaxRounds caps the number of scan rounds. 0 selects Rows×Cols+1.
	MaxRounds int

	// Order chooses the axis of the first round.
	Order ScanOrder

	// OnRound is called after every round with its 1-based number, its axis
	// and how many new cells it discovered.
	OnRound func(round int, axis Axis, discovered int)

	err error
}

// DefaultOptions returns Options with a derived round ceiling, RowFirst
// order and a no-op OnRound hook.
func DefaultOptions() Options {
	return Options{
		MaxRounds: 0,
		Order:     RowFirst,
		OnRound:   func(int, Axis, int) {},
	}
}

// WithMaxRounds sets the round ceiling.
//
//	n > 0:  at most n rounds
//	n == 0: Rows×Cols+1
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// WithScanOrder picks the axis of the first round.
func WithScanOrder(order ScanOrder) Option {
	return func(o *Options) {
		switch order {
		case RowFirst, ColumnFirst:
			o.Order = order
		default:
			o.err = fmt.Errorf("%w: unknown scan order %d", ErrOptionViolation, order)
		}
	}
}

// WithOnRound registers a per-round observer.
func WithOnRound(fn func(round int, axis Axis, discovered int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}
