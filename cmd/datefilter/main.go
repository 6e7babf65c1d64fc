package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"

	apperrors "github.com/schedkit/datefilter/errors"
	"github.com/schedkit/datefilter/filter"
	"github.com/schedkit/datefilter/logger"
	"github.com/schedkit/datefilter/luahost"
	"github.com/schedkit/datefilter/timeutil"
	"github.com/schedkit/datefilter/validator"
)

// envConfig carries environment-level defaults; flags override it.
type envConfig struct {
	Env      string `env:"DATEFILTER_ENV" envDefault:"production"`
	Timezone string `env:"DATEFILTER_TZ"`
}

type CLI struct {
	Timezone string `name:"tz" help:"IANA time zone for the reference date (overrides DATEFILTER_TZ)."`

	Eval   EvalCmd   `cmd:"" help:"Evaluate a single date predicate."`
	Script ScriptCmd `cmd:"" help:"Run a Lua script with the predicates registered."`
}

type application struct {
	checker *filter.Checker
	clock   timeutil.Clock
	log     logger.LoggerInterface
	started time.Time
}

type EvalCmd struct {
	Date     string `arg:"" help:"Candidate date: YYYY-MM-DD, optionally with THH:MM:SS or ' HH:MM:SS'."`
	Operator string `arg:"" optional:"" help:"Comparison operator applied as 'today OP date' (default ==)."`
	Filter   string `name:"filter" default:"is_due" enum:"is_due,is_future,is_past,is_today,is_today_or_future,is_today_or_past" help:"Named predicate to evaluate."`
}

type evalRequest struct {
	Date     string `validate:"required"`
	Operator string `validate:"omitempty,oneof=== != < <= > >="`
}

func (c *EvalCmd) Run(app *application) error {
	if fields := validator.Validate(evalRequest{Date: c.Date, Operator: c.Operator}); fields != nil {
		return apperrors.ValidationFields(fields)
	}
	if c.Filter != "is_due" && c.Operator != "" {
		return apperrors.InvalidArgument().
			WithReason("operator_not_allowed").
			WithDetail("filter", c.Filter)
	}

	ok, err := app.dispatch(c.Filter, c.Date, c.Operator)
	if err != nil {
		return apperrors.ToErrorResponse(err)
	}

	app.log.Debugw("predicate evaluated", "filter", c.Filter, "date", c.Date, "result", ok)
	fmt.Println(ok)
	return nil
}

func (app *application) dispatch(name, date, operator string) (bool, error) {
	switch name {
	case "is_future":
		return app.checker.IsFuture(date)
	case "is_past":
		return app.checker.IsPast(date)
	case "is_today":
		return app.checker.IsToday(date)
	case "is_today_or_future":
		return app.checker.IsTodayOrFuture(date)
	case "is_today_or_past":
		return app.checker.IsTodayOrPast(date)
	default:
		return app.checker.IsDue(date, operator)
	}
}

type ScriptCmd struct {
	Path string `arg:"" type:"existingfile" help:"Lua script to run."`
}

func (c *ScriptCmd) Run(app *application) error {
	host := luahost.New(
		luahost.WithChecker(app.checker),
		luahost.WithLogger(app.log),
	)
	if err := host.RunFile(c.Path); err != nil {
		return err
	}
	app.log.Debugw("script finished", "path", c.Path)
	return nil
}

func resolveLocation(tz string) (*time.Location, error) {
	if tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, apperrors.InvalidArgument().
			WithReason("invalid_timezone").
			WithDetail("tz", tz)
	}
	return loc, nil
}

func main() {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parse env: %v\n", err)
		os.Exit(1)
	}

	cli := CLI{}
	ctx := kong.Parse(
		&cli,
		kong.Name("datefilter"),
		kong.Description("Date comparison predicates for schedule checks"),
		kong.UsageOnError(),
	)

	log := logger.Init("datefilter", cfg.Env)
	defer log.SafeSync()

	tz := cli.Timezone
	if tz == "" {
		tz = cfg.Timezone
	}
	loc, err := resolveLocation(tz)
	ctx.FatalIfErrorf(err)

	app := &application{
		checker: filter.New(filter.WithLocation(loc)),
		clock:   timeutil.Default,
		log:     log.With("run_id", uuid.NewString()),
		started: timeutil.Now(),
	}

	err = ctx.Run(app)
	app.log.Debugw("done", "duration", app.clock.Since(app.started).String())
	ctx.FatalIfErrorf(err)
}
