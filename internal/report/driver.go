// Package report turns raw session records into formatted summary lines.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/dispatch"
	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/events"
	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/feed"
	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/go_func_utils"
	"github.com/lowaak/fitness-tracker/fitness-tracker-app/internal/workout"
)

// Reader constructs a workout from an activity code and its readings
type Reader interface {
	Read(code string, data []float64) (workout.Workout, error)
}

// SkipReason classifies a record the driver skipped
type SkipReason string

const (
	SkipUnknownCode     SkipReason = "unknown_code"
	SkipArgumentArity   SkipReason = "argument_arity"
	SkipInvalidArgument SkipReason = "invalid_argument"
)

// Line is one emitted report line
type Line struct {
	Index   int
	Code    string
	Message workout.InfoMessage
	Text    string
}

// Diagnostic describes a skipped record
type Diagnostic struct {
	Index  int
	Code   string
	Reason SkipReason
	Err    error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("record %d (%s) skipped: %v", d.Index, d.Code, d.Err)
}

// Summary is the outcome of one Run
type Summary struct {
	RunID   string
	Emitted int
	Skipped []Diagnostic
}

// Driver dispatches, summarizes and formats records in input order
type Driver struct {
	reader  Reader
	output  io.Writer
	logger  *log.Logger
	locale  Locale
	workers int

	lineEvent       *events.CallbackEvent[Line]
	diagnosticEvent *events.CallbackEvent[Diagnostic]
}

// NewDriverArg holds the arguments for creating a new Driver
type NewDriverArg struct {
	Reader  Reader
	Output  io.Writer
	Logger  *log.Logger
	Locale  Locale
	Workers int // Values above 1 compute summaries concurrently
}

// NewDriver creates a new Driver
func NewDriver(args NewDriverArg) *Driver {
	if args.Logger == nil {
		panic("Driver: logger cannot be nil")
	}
	if args.Reader == nil {
		panic("Driver: reader cannot be nil")
	}
	if args.Output == nil {
		panic("Driver: output cannot be nil")
	}
	locale := args.Locale
	if locale == "" {
		locale = LocaleEN
	}

	return &Driver{
		reader:          args.Reader,
		output:          args.Output,
		logger:          args.Logger,
		locale:          locale,
		workers:         args.Workers,
		lineEvent:       events.NewCallbackEvent[Line](),
		diagnosticEvent: events.NewCallbackEvent[Diagnostic](),
	}
}

// OnLine registers a listener for every emitted line, called after the line is written
func (d *Driver) OnLine(fn func(Line)) func() {
	return d.lineEvent.Listen(fn)
}

// OnDiagnostic registers a listener for skipped records
func (d *Driver) OnDiagnostic(fn func(Diagnostic)) func() {
	return d.diagnosticEvent.Listen(fn)
}

// outcome is the computed result for one record. Exactly one of
// fatal, skip or line is set.
type outcome struct {
	fatal error
	skip  *Diagnostic
	line  *Line
}

// Run reports pkgs in order. Records that fail to dispatch are skipped
// with a Diagnostic; a missing calorie formula or a cancelled context
// stops the run and is returned.
func (d *Driver) Run(ctx context.Context, pkgs []feed.Package) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}
	d.logger.Printf("Driver: run %s started (%d records, %d workers)", summary.RunID, len(pkgs), d.workers)

	outcomes := make([]outcome, len(pkgs))
	parallel := d.workers > 1
	if parallel {
		go_func_utils.ForEachIndex(d.logger, len(pkgs), d.workers, func(i int) {
			outcomes[i] = d.evaluate(ctx, i, pkgs[i])
		})
	}

	for i, pkg := range pkgs {
		if !parallel {
			outcomes[i] = d.evaluate(ctx, i, pkg)
		}
		o := outcomes[i]

		switch {
		case o.fatal != nil:
			d.logger.Printf("Driver: run %s aborted at record %d: %v", summary.RunID, i, o.fatal)
			return summary, o.fatal
		case o.skip != nil:
			d.logger.Printf("Driver: run %s %s", summary.RunID, o.skip)
			summary.Skipped = append(summary.Skipped, *o.skip)
			d.diagnosticEvent.Notify(*o.skip)
		default:
			if _, err := fmt.Fprintln(d.output, o.line.Text); err != nil {
				return summary, fmt.Errorf("write record %d: %w", i, err)
			}
			summary.Emitted++
			d.lineEvent.Notify(*o.line)
		}
	}

	d.logger.Printf("Driver: run %s complete (%d emitted, %d skipped)", summary.RunID, summary.Emitted, len(summary.Skipped))
	return summary, nil
}

func (d *Driver) evaluate(ctx context.Context, index int, pkg feed.Package) outcome {
	if err := ctx.Err(); err != nil {
		return outcome{fatal: err}
	}

	w, err := d.reader.Read(pkg.Code, pkg.Data)
	if err != nil {
		return d.skipOrFatal(index, pkg.Code, err)
	}

	msg, err := workout.Summarize(w)
	if err != nil {
		return d.skipOrFatal(index, pkg.Code, err)
	}

	return outcome{line: &Line{
		Index:   index,
		Code:    pkg.Code,
		Message: msg,
		Text:    FormatLocale(msg, d.locale),
	}}
}

func (d *Driver) skipOrFatal(index int, code string, err error) outcome {
	var reason SkipReason
	switch {
	case errors.Is(err, dispatch.ErrUnknownActivityCode):
		reason = SkipUnknownCode
	case errors.Is(err, dispatch.ErrArgumentArity):
		reason = SkipArgumentArity
	case errors.Is(err, dispatch.ErrInvalidArgument), errors.Is(err, workout.ErrInvalidArgument):
		reason = SkipInvalidArgument
	default:
		return outcome{fatal: fmt.Errorf("record %d (%s): %w", index, code, err)}
	}
	return outcome{skip: &Diagnostic{Index: index, Code: code, Reason: reason, Err: err}}
}
