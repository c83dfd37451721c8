package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/dcorder/internal/component"
	"github.com/specialistvlad/dcorder/internal/ctxlog"
	"github.com/specialistvlad/dcorder/internal/dcid"
	"github.com/specialistvlad/dcorder/internal/report"
	"github.com/specialistvlad/dcorder/internal/resolver"
)

var (
	// ErrNothingToResolve is returned when neither changed components nor
	// --all were given.
	ErrNothingToResolve = errors.New("nothing to resolve: pass --changed or --all")
	// ErrCircularDependencies is returned by Order when FailOnCycle is set
	// and some components could not be ordered.
	ErrCircularDependencies = errors.New("circular dependencies detected")
	// ErrFindings is returned by Validate when Strict is set and the track
	// has findings.
	ErrFindings = errors.New("validation reported findings")
)

// Order computes the build plan for the configured change set and writes it
// to the output. The report is written even when the plan has cycles.
func (a *App) Order(ctx context.Context) (*resolver.Plan, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Order method started.")

	changed, err := a.changedIDs()
	if err != nil {
		return nil, err
	}

	plan, err := a.resolver.Plan(ctx, changed)
	if err != nil {
		return nil, err
	}
	logger.Info("Build plan computed.",
		"plan_id", plan.ID,
		"rebuild", len(plan.RebuildSet),
		"ordered", len(plan.Components),
		"excluded", len(plan.Excluded()),
	)

	doc := report.NewDocument(plan, a.registry.Configuration())
	if err := report.WritePlan(a.outW, a.format, doc); err != nil {
		return nil, err
	}

	if a.config.FailOnCycle && len(plan.CircularDependencies) > 0 {
		return plan, fmt.Errorf("%w: %d component(s) excluded from build", ErrCircularDependencies, len(plan.Excluded()))
	}
	logger.Debug("App.Order method finished.")
	return plan, nil
}

// Closure computes only the rebuild set for the configured change set and
// writes it to the output.
func (a *App) Closure(ctx context.Context) ([]*component.Component, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Closure method started.")

	changed, err := a.changedIDs()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seeds, err := a.resolver.Lookup(changed)
	if err != nil {
		return nil, err
	}

	closure := a.resolver.RebuildSet(seeds)
	logger.Info("Rebuild set computed.", "seeds", len(seeds), "affected", len(closure))

	doc := report.NewClosure(component.IDs(seeds), closure)
	if err := report.WriteClosure(a.outW, a.format, doc); err != nil {
		return nil, err
	}
	return closure, nil
}

// Validate reports dangling references, unknown public parts and unowned
// components of the loaded track.
func (a *App) Validate(ctx context.Context) (report.Validation, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Validate method started.")
	if err := ctx.Err(); err != nil {
		return report.Validation{}, err
	}

	issues := a.registry.Validate()
	v := report.NewValidation(a.registry.Len(), issues)
	if len(issues) > 0 {
		logger.Warn("Track has findings.", "count", len(issues))
	}
	if err := report.WriteValidation(a.outW, a.format, v); err != nil {
		return v, err
	}

	if a.config.Strict && len(issues) > 0 {
		return v, fmt.Errorf("%w: %d finding(s)", ErrFindings, len(issues))
	}
	return v, nil
}

// changedIDs returns the seeds of a resolution: every Source component when
// All is set, the parsed Changed identifiers otherwise.
func (a *App) changedIDs() ([]dcid.ID, error) {
	if a.config.All {
		return component.IDs(a.resolver.SourceComponents()), nil
	}
	if len(a.config.Changed) == 0 {
		return nil, ErrNothingToResolve
	}
	return dcid.ParseAll(a.config.Changed)
}
