// Package equpy is your in-memory workbench for chemical equilibria —
// from plain-text reaction equations to converged concentration
// vectors, with plots along the way.
//
// 🚀 What is equpy?
//
//	A fast, deterministic equilibrium solver that brings together:
//		• Equation parsing: "2H+L=H2L" style reactions & conservation laws
//		• Species registry: stable name ↔ column-index bijection
//		• Damped fixed-point iteration in log-concentration space
//		• Exact LU solves for square systems, SVD least-squares otherwise
//		• CSV loading for spreadsheet-born stoichiometry tables
//		• Convergence & speciation plots (PNG/SVG via gonum/plot)
//
// ✨ Why choose equpy?
//
//   - Handles wildly disparate equilibrium constants (1e-12 … 1e12)
//   - Never needs a hand-tuned starting guess – the seed is fixed
//   - Explicit diagnostics – residual history, typed warnings, states
//   - Pure Go on top of gonum – no cgo, no external solvers
//
// Under the hood, everything is organized under five subpackages:
//
//	species/     — immutable name ↔ index registry shared by all matrices
//	eqparse/     — text equations → stoichiometry & conservation matrices
//	equilibrium/ — System, Session, the damped iteration itself
//	csvload/     —
//	equplot/     —
//
// Quick ASCII example:
//
//	    "H+L=HL"            ┌ stoichiometry ┐      damped
//	    "H+HL=H2L"   ──►    │ conservation  │ ──►  iteration ──► [H] [L] [HL] [H2L]
//	    totals: H,L         └  + constants  ┘      (log-space)
//
//	two reactions plus two mass balances solve a diprotic ladder exactly.
//
// Next up: activity-coefficient corrections, temperature dependence and
// beyond. Dive into README.md for worked examples and the theory recap.
//
//	go get github.com/mtod92/equpy
package equpy
