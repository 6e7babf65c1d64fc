package filter

import (
	"time"

	"github.com/schedkit/datefilter/timeutil"
)

// Checker evaluates due-date predicates against the current time read from
// an injectable clock. Checkers are stateless between calls and safe for
// concurrent use.
type Checker struct {
	clock timeutil.Clock
	loc   *time.Location
}

// Option configures a Checker.
type Option func(*Checker)

// WithClock replaces the clock used to obtain the reference date.
func WithClock(c timeutil.Clock) Option {
	return func(ch *Checker) { ch.clock = c }
}

// WithLocation sets the location in which both the candidate string and the
// reference "today" are interpreted.
func WithLocation(loc *time.Location) Option {
	return func(ch *Checker) { ch.loc = loc }
}

// New returns a Checker using the system clock in local time unless
// configured otherwise.
func New(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	if c.clock == nil {
		c.clock = timeutil.Default
	}
	if c.loc == nil {
		c.loc = time.Local
	}
	return c
}

// IsDue reports whether "today OP candidate" holds. The reference time is
// read fresh from the clock on every call, so two calls straddling midnight
// may disagree. An empty operator means "==".
func (c *Checker) IsDue(datestring, operator string) (bool, error) {
	op, err := ParseOperator(operator)
	if err != nil {
		return false, err
	}
	candidate, err := ParseCandidate(datestring, c.loc)
	if err != nil {
		return false, err
	}
	return op.compare(c.reference(candidate.WithTime), candidate.Time), nil
}

// reference truncates "now" to the candidate's granularity: the calendar day
// for date-only candidates, whole seconds otherwise.
func (c *Checker) reference(withTime bool) time.Time {
	now := c.clock.Now().In(c.loc)
	if withTime {
		return now.Truncate(time.Second)
	}
	return timeutil.StartOfDay(now, c.loc)
}

// IsFuture reports whether the candidate lies strictly in the future.
func (c *Checker) IsFuture(datestring string) (bool, error) {
	return c.IsDue(datestring, string(OpLt))
}

// IsPast reports whether the candidate lies strictly in the past.
func (c *Checker) IsPast(datestring string) (bool, error) {
	return c.IsDue(datestring, string(OpGt))
}

// IsToday reports whether the candidate is the current date.
func (c *Checker) IsToday(datestring string) (bool, error) {
	return c.IsDue(datestring, string(OpEq))
}

// IsTodayOrFuture reports whether the candidate is today or in the future.
func (c *Checker) IsTodayOrFuture(datestring string) (bool, error) {
	return c.IsDue(datestring, string(OpLte))
}

// IsTodayOrPast reports whether the candidate is today or in the past.
func (c *Checker) IsTodayOrPast(datestring string) (bool, error) {
	return c.IsDue(datestring, string(OpGte))
}

// Default evaluates predicates with the system clock in local time.
var Default = New()

// IsDue is an alias for Default.IsDue.
func IsDue(datestring, operator string) (bool, error) { return Default.IsDue(datestring, operator) }

// IsFuture is an alias for Default.IsFuture.
func IsFuture(datestring string) (bool, error) { return Default.IsFuture(datestring) }

// IsPast is an alias for Default.IsPast.
func IsPast(datestring string) (bool, error) { return Default.IsPast(datestring) }

// IsToday is an alias for Default.IsToday.
func IsToday(datestring string) (bool, error) { return Default.IsToday(datestring) }

// IsTodayOrFuture is an alias for Default.IsTodayOrFuture.
func IsTodayOrFuture(datestring string) (bool, error) { return Default.IsTodayOrFuture(datestring) }

// IsTodayOrPast is an alias for Default.IsTodayOrPast.
func IsTodayOrPast(datestring string) (bool, error) { return Default.IsTodayOrPast(datestring) }
