package equilibrium

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// machineEps is the double-precision epsilon used throughout: as the
// zero-mass substitute, as the convergence scale, and as the singular
// value cutoff of the pseudo-inverse.
const machineEps = 2.2e-16

// step performs one damped fixed-point update in log-concentration space
// and reports the pre-update residual.
//
// Stages:
//  1. Scale each conservation row by the current concentrations exp(x)
//     and normalize it to sum 1, giving row-stochastic weights W.
//  2. Fold each total mass into an effective constant
//     Ks[r] = masses[r] · Π_j (W[r,j]/C[r,j])^W[r,j] over the involved
//     species (C[r,j] ≠ 0); uninvolved species contribute no constraint.
//  3. Stack the stoichiometric rows above W into M and take logs of the
//     equilibrium constants followed by Ks to form the target vector y.
//  4. Measure residual = ‖M·x − y‖₂ with the incoming x, before solving,
//     so it reports how well the previous iterate already satisfied the
//     newly assembled system.
//  5. Solve M·x' = y by the given strategy.
//  6. Blend: next = (weight·x + x') / (weight + 1).
//
// step never mutates its inputs. The only error is ErrSingularSystem from
// the exact path (or an SVD that failed to converge on non-finite input).
func step(stoich *mat.Dense, constants []float64, conserv *mat.Dense, masses, x []float64, weight float64, strat Strategy) ([]float64, float64, error) {
	nReactions, nSpecies := stoich.Dims()
	nLaws, _ := conserv.Dims()

	expX := make([]float64, nSpecies)
	for j, v := range x {
		expX[j] = math.Exp(v)
	}

	weights := mat.NewDense(nLaws, nSpecies, nil)
	ks := make([]float64, nLaws)
	for r := 0; r < nLaws; r++ {
		sum := 0.0
		for j := 0; j < nSpecies; j++ {
			sum += conserv.At(r, j) * expX[j]
		}
		prod := 1.0
		for j := 0; j < nSpecies; j++ {
			cv := conserv.At(r, j)
			if cv == 0 {
				continue
			}
			wv := cv * expX[j] / sum
			weights.Set(r, j, wv)
			prod *= math.Pow(wv/cv, wv)
		}
		ks[r] = prod * masses[r]
	}

	combined := mat.NewDense(nReactions+nLaws, nSpecies, nil)
	target := mat.NewVecDense(nReactions+nLaws, nil)
	for r := 0; r < nReactions; r++ {
		combined.SetRow(r, mat.Row(nil, r, stoich))
		target.SetVec(r, math.Log(constants[r]))
	}
	for r := 0; r < nLaws; r++ {
		combined.SetRow(nReactions+r, mat.Row(nil, r, weights))
		target.SetVec(nReactions+r, math.Log(ks[r]))
	}

	// Pre-update residual against the incoming iterate.
	var product, diff mat.VecDense
	product.MulVec(combined, mat.NewVecDense(nSpecies, x))
	diff.SubVec(&product, target)
	residual := mat.Norm(&diff, 2)

	solved := mat.NewVecDense(nSpecies, nil)
	var err error
	if strat == ExactSolve {
		err = exactSolve(solved, combined, target)
	} else {
		err = minimumNormSolve(solved, combined, target)
	}
	if err != nil {
		return nil, 0, err
	}

	next := make([]float64, nSpecies)
	for j := range next {
		next[j] = (weight*x[j] + solved.AtVec(j)) / (weight + 1)
	}

	return next, residual, nil
}

// exactSolve solves the square system via LU factorization. A singular or
// near-singular matrix is fatal here; there is no least-squares fallback
// in the exactly determined case.
func exactSolve(dst *mat.VecDense, m *mat.Dense, y *mat.VecDense) error {
	var lu mat.LU
	lu.Factorize(m)
	if err := lu.SolveVecTo(dst, false, y); err != nil {
		return fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}

	return nil
}

// minimumNormSolve computes the least-squares solution of minimum norm via
// the SVD pseudo-inverse: x = V·Σ⁺·Uᵀ·y, dropping singular values below
// machineEps·max(rows,cols)·σmax. Rank deficiency therefore reduces the
// effective rank instead of failing; the only error is an SVD that does
// not converge, which requires non-finite input.
func minimumNormSolve(dst *mat.VecDense, m *mat.Dense, y *mat.VecDense) error {
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDThin) {
		return fmt.Errorf("%w: singular value decomposition did not converge", ErrSingularSystem)
	}
	rows, cols := m.Dims()
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sv := svd.Values(nil)

	cutoff := 0.0
	if len(sv) > 0 {
		cutoff = machineEps * float64(max(rows, cols)) * sv[0]
	}

	// Σ⁺·Uᵀ·y with near-null directions dropped.
	scaled := make([]float64, len(sv))
	for i := range sv {
		if sv[i] <= cutoff {
			continue
		}
		dot := 0.0
		for r := 0; r < rows; r++ {
			dot += u.At(r, i) * y.AtVec(r)
		}
		scaled[i] = dot / sv[i]
	}
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := range sv {
			sum += v.At(j, i) * scaled[i]
		}
		dst.SetVec(j, sum)
	}

	return nil
}
