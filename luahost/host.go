// Package luahost exposes the date predicates to an embedded Lua state, so
// expression-driven hosts can gate actions on schedule conditions like
// schedule.is_due("2022-06-15", ">=").
package luahost

import (
	"fmt"

	lua "github.com/Shopify/go-lua"

	apperrors "github.com/schedkit/datefilter/errors"
	"github.com/schedkit/datefilter/filter"
	"github.com/schedkit/datefilter/logger"
	"github.com/schedkit/datefilter/metrics"
)

// GlobalName is the table under which the predicates are registered.
const GlobalName = "schedule"

// Host wires a predicate checker into Lua states. Logger and metrics are
// optional.
type Host struct {
	checker *filter.Checker
	log     logger.LoggerInterface
	metrics *metrics.Set
}

// Option configures a Host.
type Option func(*Host)

// WithChecker replaces the predicate checker (default filter.Default).
func WithChecker(c *filter.Checker) Option {
	return func(h *Host) { h.checker = c }
}

// WithLogger enables debug logging of evaluations.
func WithLogger(l logger.LoggerInterface) Option {
	return func(h *Host) { h.log = l }
}

// WithMetrics enables evaluation counters.
func WithMetrics(m *metrics.Set) Option {
	return func(h *Host) { h.metrics = m }
}

func New(opts ...Option) *Host {
	h := &Host{}
	for _, opt := range opts {
		opt(h)
	}
	if h.checker == nil {
		h.checker = filter.Default
	}
	return h
}

// Register installs the predicate table as the global "schedule" on l.
func (h *Host) Register(l *lua.State) {
	l.NewTable()
	lua.SetFunctions(l, h.functions(), 0)
	l.SetGlobal(GlobalName)
}

// NewState returns a fresh Lua state with the standard libraries opened and
// the predicates registered.
func (h *Host) NewState() *lua.State {
	l := lua.NewState()
	lua.OpenLibraries(l)
	h.Register(l)
	return l
}

// RunFile executes the Lua script at path in a fresh state.
func (h *Host) RunFile(path string) error {
	l := h.NewState()
	if err := lua.LoadFile(l, path, ""); err != nil {
		return fmt.Errorf("load lua: %w", err)
	}
	if err := l.ProtectedCall(0, 0, 0); err != nil {
		return fmt.Errorf("run lua: %w", err)
	}
	return nil
}

// EvalBool evaluates a script in a fresh state and returns its first result
// as a boolean.
func (h *Host) EvalBool(script string) (bool, error) {
	l := h.NewState()
	if err := lua.LoadString(l, script); err != nil {
		return false, fmt.Errorf("load lua: %w", err)
	}
	if err := l.ProtectedCall(0, 1, 0); err != nil {
		return false, fmt.Errorf("run lua: %w", err)
	}
	defer l.Pop(1)
	return l.ToBoolean(-1), nil
}

func (h *Host) functions() []lua.RegistryFunction {
	return []lua.RegistryFunction{
		{Name: "is_due", Function: h.isDue},
		{Name: "is_future", Function: h.fixed("is_future", filter.OpLt)},
		{Name: "is_past", Function: h.fixed("is_past", filter.OpGt)},
		{Name: "is_today", Function: h.fixed("is_today", filter.OpEq)},
		{Name: "is_today_or_future", Function: h.fixed("is_today_or_future", filter.OpLte)},
		{Name: "is_today_or_past", Function: h.fixed("is_today_or_past", filter.OpGte)},
	}
}

// is_due takes the candidate string plus an optional operator symbol.
func (h *Host) isDue(l *lua.State) int {
	datestring := lua.CheckString(l, 1)
	operator := lua.OptString(l, 2, "")
	return h.eval(l, "is_due", datestring, operator)
}

func (h *Host) fixed(name string, op filter.Operator) lua.Function {
	return func(l *lua.State) int {
		datestring := lua.CheckString(l, 1)
		return h.eval(l, name, datestring, string(op))
	}
}

func (h *Host) eval(l *lua.State, name, datestring, operator string) int {
	ok, err := h.checker.IsDue(datestring, operator)
	if err != nil {
		resp := apperrors.ToErrorResponse(err)
		h.metrics.ObserveFailure(string(resp.Reason))
		if h.log != nil {
			h.log.Debugw("predicate failed", "filter", name, "date", datestring, "reason", resp.Reason)
		}
		lua.Errorf(l, "%s: %s", name, resp.Error())
		return 0
	}

	h.metrics.ObserveEvaluation(name, ok)
	if h.log != nil {
		h.log.Debugw("predicate evaluated", "filter", name, "date", datestring, "result", ok)
	}
	l.PushBoolean(ok)
	return 1
}
