package BiMap

import (
	"log/slog"

	"github.com/emirpasic/gods/utils"
	"github.com/g-m-twostay/go-bimap/Trees/Intrusive"
)

type config[L, R any] struct {
	lessL    Intrusive.LessFunc[L]
	lessR    Intrusive.LessFunc[R]
	logger   *slog.Logger
	capacity int
}

// Option configures a BiMap at construction.
type Option[L, R any] func(*config[L, R])

// WithLogger sets the logger structural events are reported to at debug level.
// If nil is passed, events are discarded.
func WithLogger[L, R any](l *slog.Logger) Option[L, R] {
	return func(c *config[L, R]) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		c.logger = l
	}
}

// WithCapacity reserves room for n pairs.
func WithCapacity[L, R any](n int) Option[L, R] {
	return func(c *config[L, R]) {
		c.capacity = n
	}
}

// WithLeftComparator orders the left side by a gods comparator, replacing the
// ordering given to the constructor.
func WithLeftComparator[L, R any](cmp utils.Comparator) Option[L, R] {
	return func(c *config[L, R]) {
		c.lessL = Intrusive.FromComparator[L](cmp)
	}
}

// WithRightComparator orders the right side by a gods comparator, replacing the
// ordering given to the constructor.
func WithRightComparator[L, R any](cmp utils.Comparator) Option[L, R] {
	return func(c *config[L, R]) {
		c.lessR = Intrusive.FromComparator[R](cmp)
	}
}
