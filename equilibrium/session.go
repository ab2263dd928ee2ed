package equilibrium

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Option adjusts session construction via functional arguments.
type Option func(*Session)

// WithLogger injects a diagnostics logger. The session logs substitutions
// and convergence outcomes at Warn level and per-iteration progress at
// Debug level. Without this option all diagnostics are discarded, keeping
// the solver silent by default; warnings still travel as values either
// way. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session binds a System to one concrete equilibrium problem: the
// equilibrium constants (one per reaction row) and the total masses (one
// per conservation row). It owns the iterative solve and retains the
// latest result and residual history.
//
// A Session is single-owner: Solve owns the working state for the
// duration of the call and sessions must not be shared across concurrent
// solves. The underlying System stays immutable and may back many
// sessions at once.
type Session struct {
	sys       *System
	constants []float64 // K, one per reaction
	masses    []float64 // S, one per conservation law, post-guard
	logger    *slog.Logger

	state      State
	result     []float64
	residuals  []float64
	degenerate []Warning // recorded at construction, re-attached to every result
	warnings   []Warning // construction warnings plus the latest solve outcome
}

// NewSession validates lengths, deep-copies the inputs and applies the
// zero-mass guard: every total mass equal to zero is replaced with
// machine epsilon (2.2e-16), because a zero concentration has no
// log-space representation. Each substitution is recorded as a
// DegenerateMass warning and logged; it is never an error.
//
// Returns ErrNilSystem, or ErrDimensionMismatch when the constants or
// masses disagree with the system's row counts.
func NewSession(sys *System, constants, masses []float64, opts ...Option) (*Session, error) {
	if sys == nil {
		return nil, ErrNilSystem
	}
	if len(constants) != sys.nReactions {
		return nil, fmt.Errorf("%w: %d equilibrium constants for %d reactions",
			ErrDimensionMismatch, len(constants), sys.nReactions)
	}
	if len(masses) != sys.nLaws {
		return nil, fmt.Errorf("%w: %d total masses for %d conservation laws",
			ErrDimensionMismatch, len(masses), sys.nLaws)
	}

	s := &Session{
		sys:       sys,
		constants: append([]float64(nil), constants...),
		masses:    append([]float64(nil), masses...),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:     Initialized,
	}
	for _, opt := range opts {
		opt(s)
	}

	for i, m := range s.masses {
		if m == 0 {
			s.masses[i] = machineEps
			s.degenerate = append(s.degenerate, Warning{
				Kind:    DegenerateMass,
				Message: fmt.Sprintf("total mass %d is zero, substituted with %g", i, machineEps),
			})
			s.logger.Warn("zero total mass substituted", "law", i, "epsilon", machineEps)
		}
	}
	s.warnings = append([]Warning(nil), s.degenerate...)

	return s, nil
}

// Solve runs the damped fixed-point iteration: a reproducible all-ones
// seed in log space (an actual initial guess of e per concentration), one
// initial step, then up to maxIterations further steps. After each
// in-loop step the run stops once
//
//	residual < tolerance × ‖x‖₂ × 2.2e-16
//
// so the acceptance threshold scales with both the caller's tolerance and
// the magnitude of the current solution. tolerance is therefore a
// multiple of the floating-point precision floor, not an absolute bound;
// values in the 1e3–1e6 range are typical.
//
// On convergence the state becomes Converged. On exhaustion the state
// becomes Exhausted and the result carries a NonConvergence warning, but
// the best-available concentrations and the full residual history (length
// maxIterations+1) are still stored and returned — judging their quality
// is the caller's job. Both outcomes overwrite the session's stored
// result and residuals.
//
// Returns ErrBadSolveParam for maxIterations < 1, tolerance <= 0 or
// weight < 0, and ErrSingularSystem when the exact path hits a singular
// combined matrix; a failed call leaves the previously stored result,
// residuals and state untouched.
func (s *Session) Solve(maxIterations int, tolerance, weight float64) (*Result, error) {
	if maxIterations < 1 {
		return nil, fmt.Errorf("%w: max iterations must be at least 1, got %d", ErrBadSolveParam, maxIterations)
	}
	if tolerance <= 0 {
		return nil, fmt.Errorf("%w: tolerance must be positive, got %g", ErrBadSolveParam, tolerance)
	}
	if weight < 0 {
		return nil, fmt.Errorf("%w: relaxation weight must be non-negative, got %g", ErrBadSolveParam, weight)
	}

	entry := s.state
	s.state = Iterating
	strat := s.sys.Strategy()
	s.logger.Debug("solve started",
		"species", s.sys.nSpecies,
		"reactions", s.sys.nReactions,
		"laws", s.sys.nLaws,
		"strategy", strat.String(),
		"max_iterations", maxIterations,
		"tolerance", tolerance,
		"weight", weight)

	x := make([]float64, s.sys.nSpecies)
	for j := range x {
		x[j] = 1
	}

	residuals := make([]float64, 0, maxIterations+1)
	x, res, err := step(s.sys.stoich, s.constants, s.sys.conserv, s.masses, x, weight, strat)
	if err != nil {
		s.state = entry

		return nil, err
	}
	residuals = append(residuals, res)

	converged := false
	for i := 1; i <= maxIterations; i++ {
		if x, res, err = step(s.sys.stoich, s.constants, s.sys.conserv, s.masses, x, weight, strat); err != nil {
			s.state = entry

			return nil, err
		}
		residuals = append(residuals, res)
		threshold := tolerance * machineEps * floats.Norm(x, 2)
		s.logger.Debug("iteration finished", "iteration", i, "residual", res, "threshold", threshold)
		if res < threshold {
			converged = true

			break
		}
	}

	concentrations := make([]float64, len(x))
	for j, v := range x {
		concentrations[j] = math.Exp(v)
	}
	s.result = concentrations
	s.residuals = residuals

	warnings := append([]Warning(nil), s.degenerate...)
	if converged {
		s.state = Converged
	} else {
		s.state = Exhausted
		warnings = append(warnings, Warning{
			Kind: NonConvergence,
			Message: fmt.Sprintf("no convergence within %d iterations (last residual %.3g); more iterations, a looser tolerance or a larger relaxation weight may help",
				maxIterations, res),
		})
		s.logger.Warn("iteration cap reached without convergence", "iterations", maxIterations, "residual", res)
	}
	s.warnings = warnings

	return &Result{
		Concentrations: append([]float64(nil), concentrations...),
		Residuals:      append([]float64(nil), residuals...),
		Warnings:       append([]Warning(nil), warnings...),
		State:          s.state,
		Strategy:       strat,
	}, nil
}

// State returns the session's lifecycle position.
func (s *Session) State() State { return s.state }

// Result returns a copy of the latest concentration vector, or nil before
// the first completed solve.
func (s *Session) Result() []float64 {
	if s.result == nil {
		return nil
	}

	return append([]float64(nil), s.result...)
}

// Residuals returns a copy of the latest residual history, or nil before
// the first completed solve.
func (s *Session) Residuals() []float64 {
	if s.residuals == nil {
		return nil
	}

	return append([]float64(nil), s.residuals...)
}

// Warnings returns a copy of the warnings currently in effect:
// construction-time mass substitutions plus, after an exhausted solve,
// the non-convergence signal.
func (s *Session) Warnings() []Warning {
	return append([]Warning(nil), s.warnings...)
}

// System returns the immutable system backing this session.
func (s *Session) System() *System { return s.sys }
