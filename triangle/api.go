// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// api.go - thin public entry-points for the triangle package.
//
// Design contract (strict):
//   - One orchestrator: Build(f, n, opts...). Validates, resolves options,
//     allocates the zeroed buffer, runs the family filler, attaches the
//     exactness advisory.
//   - All public factories are declared here, implemented in impl_*.go
//     (single place to read docs).
//   - Functional options (Option) resolve into an immutable Options value
//     (no global state).
//   - Determinism: same family, order and options ⇒ identical buffers.
//   - Safety: never panic; return sentinel errors for invalid input.
//
// AI-Hints (practical):
//   - Use Build(FamilyX, n) when the family arrives as data; use the named
//     factories (Pascal, Bell, ...) when it is fixed at the call site.
//   - Check Advisories() on the returned buffer before trusting cells of
//     orders past the documented exactness limits.
//   - Branch on sentinel errors with errors.Is; messages are stable but not
//     part of the matching contract.

package triangle

import "fmt"

// File-local constant for method tagging (no magic strings).
const methodBuild = "Build"

// filler populates a zeroed buffer in place using the resolved Options.
// Fillers MUST:
//   - Write only cells inside the populated band of each row.
//   - Fill rows in increasing order (rules read earlier rows only).
//   - Return only sentinel errors; never panic at runtime.
type filler func(t *Triangle, cfg Options) error

// familyFillers maps each buildable family to its filler. Implementations
// live in the impl_*.go file named after the family.
var familyFillers = map[Family]filler{
	FamilyPascal:            fillPascal,
	FamilySierpinski:        fillSierpinski,
	FamilyBernoulliTriangle: fillBernoulliTriangle,
	FamilyEulerian:          fillEulerian,
	FamilyRascal:            fillRascal,
	FamilyLozanic:           fillLozanic,
	FamilyTrinomial:         fillTrinomial,
	FamilyClark:             fillClark,
	FamilyCatalan:           fillCatalan,
	FamilyBell:              fillBell,
	FamilyFloyd:             fillFloyd,
	FamilySEA:               fillSEA,
	FamilyLeibniz:           fillLeibniz,
}

// Build constructs the order-n triangle of family f.
//
// Stage order:
//   - Stage 1 (Validate): n ≥ 0, family buildable and registered.
//   - Stage 2 (Resolve): gather functional options; validate the multiplier.
//   - Stage 3 (Execute): allocate the zeroed buffer, run the family filler.
//   - Stage 4 (Finalize): attach an AdvisoryExactness when n exceeds the
//     family's documented limit, then return the buffer.
//
// Behavior highlights:
//   - n = 0 yields a single-cell buffer (0 for Clark, 1 otherwise).
//   - Past an exactness limit the build still completes; the advisory is a
//     value on the buffer, not a failure and not a log line.
//   - FamilyLeibniz yields the integer denominator buffer; use Leibniz(n)
//     for the paired unit fractions.
//
// Errors:
//   - ErrNegativeOrder for n < 0.
//   - ErrNotBuildable for FamilyBernoulli (scalar pipeline, see bernoulli/).
//   - ErrUnknownFamily for values outside the enum.
//   - ErrNegativeMultiplier when the resolved Clark multiplier is negative.
//
// Complexity:
//   - Time O(n²) for every family; space O(n²) for the buffer (plus one
//     auxiliary Pascal buffer for Lozanić, Leibniz and BernoulliTriangle).
func Build(f Family, n int, opts ...Option) (*Triangle, error) {
	// Stage 1: validate order and family before any allocation.
	if err := validateOrder(methodBuild, n); err != nil {
		return nil, err
	}
	if err := validateBuildable(methodBuild, f); err != nil {
		return nil, err
	}
	fill, ok := familyFillers[f]
	if !ok {
		return nil, fmt.Errorf("%s: %s: %w", methodBuild, f, ErrUnknownFamily)
	}

	// Stage 2: resolve functional options against documented defaults.
	cfg := gatherOptions(opts...)
	if err := validateMultiplier(methodBuild, cfg.multiplier); err != nil {
		return nil, err
	}

	// Stage 3: allocate the zeroed buffer and run the family filler.
	t := newTriangle(f, n)
	if err := fill(t, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	// Stage 4: attach the exactness advisory past the documented limit.
	if limit, bounded := exactLimits[f]; bounded && n > limit {
		t.advisories = append(t.advisories, Advisory{
			Kind:      AdvisoryExactness,
			Family:    f,
			Order:     n,
			Threshold: limit,
		})
	}

	return t, nil
}

// =============================================================================
// Family factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory is a thin wrapper over Build with the family fixed. All of
// them share Build's validation, advisory and complexity contracts.

// Pascal builds the binomial triangle C(r,c).
// Row sums are 2^r; rows mirror around their center.
//func Pascal(n int) (*Triangle, error)

// Sierpinski builds Pascal modulo 2 (the 0/1 gasket). Always exact.
//func Sierpinski(n int) (*Triangle, error)

// BernoulliTriangle builds running row sums of Pascal rows.
//func BernoulliTriangle(n int) (*Triangle, error)

// Eulerian builds descent counts; row r has r populated entries for r ≥ 1.
//func Eulerian(n int) (*Triangle, error)

// Rascal builds the diamond-rule triangle; cell (r,c) equals c(r−c)+1.
//func Rascal(n int) (*Triangle, error)

// Lozanic builds the paraffin triangle (Pascal halved by symmetry).
//func Lozanic(n int) (*Triangle, error)

// Trinomial builds the centered (1+x+x²)^r coefficient band; row sums 3^r.
//func Trinomial(n int) (*Triangle, error)

// Clark builds the multiplied-diagonal variant; positional multiplier.
//func Clark(n int, multiplier int64) (*Triangle, error)

// Catalan builds the ballot triangle; cell (n,n) is the n-th Catalan number.
//func Catalan(n int) (*Triangle, error)

// Bell builds Aitken's array; cell (n,0) is the n-th Bell number.
//func Bell(n int) (*Triangle, error)

// Floyd builds consecutive integers; column 0 is the lazy-caterer sequence.
//func Floyd(n int) (*Triangle, error)

// SEA builds the Seidel–Entringer–Arnold triangle in boustrophedon
// presentation (0-based even rows ≥ 2 stored reversed).
//func SEA(n int) (*Triangle, error)

// Leibniz builds the harmonic triangle: integer denominators paired with
// their unit fractions.
//func Leibniz(n int) (*LeibnizTriangle, error)
