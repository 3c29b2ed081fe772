// SPDX-License-Identifier: MIT
// Package: trigon/triangle
//
// types.go — public enums, advisory values and documented exactness limits.
//
// Design contract (strict):
//   - Family is a closed enum; every buildable member has a filler registered
//     in api.go and a thin constructor in its impl_*.go file.
//   - Exactness limits are constants (single source of truth); Build consults
//     exactLimits and attaches one AdvisoryExactness when order > limit.
//   - Advisory is a value, not a log line: callers inspect it, tests assert it.

package triangle

import "fmt"

// Family enumerates the supported triangle variants plus FamilyBernoulli,
// the scalar Bernoulli-number family used only to tag advisories.
type Family int

const (
	// FamilyPascal is the binomial-coefficient triangle C(n,k).
	FamilyPascal Family = iota

	// FamilySierpinski is Pascal reduced modulo 2 (the fractal 0/1 gasket).
	FamilySierpinski

	// FamilyBernoulliTriangle holds running row sums of Pascal rows.
	FamilyBernoulliTriangle

	// FamilyEulerian counts permutations of r elements by descents.
	FamilyEulerian

	// FamilyRascal grows by the diamond rule South = (West·East + 1)/North.
	FamilyRascal

	// FamilyLozanic is Pascal halved by symmetry (paraffin counts).
	FamilyLozanic

	// FamilyTrinomial expands (1 + x + x²)^r into a centered band.
	FamilyTrinomial

	// FamilyClark rings Pascal's interior with a multiplied diagonal.
	FamilyClark

	// FamilyCatalan accumulates ballot counts; its diagonal is the Catalan numbers.
	FamilyCatalan

	// FamilyBell wraps each row around to seed the next (Aitken's array).
	FamilyBell

	// FamilyFloyd fills rows with consecutive integers starting from 1.
	FamilyFloyd

	// FamilySEA is the Seidel–Entringer–Arnold triangle in boustrophedon
	// presentation: every second row is stored reversed.
	FamilySEA

	// FamilyLeibniz is the harmonic triangle; Build returns the integer
	// denominator buffer, Leibniz(n) pairs it with the unit fractions.
	FamilyLeibniz

	// FamilyBernoulli names the scalar Bernoulli-number pipeline. It has no
	// triangular form: Build rejects it with ErrNotBuildable.
	FamilyBernoulli
)

// familyNames backs Family.String; index-aligned with the constants above.
var familyNames = []string{
	"Pascal",
	"Sierpinski",
	"BernoulliTriangle",
	"Eulerian",
	"Rascal",
	"Lozanic",
	"Trinomial",
	"Clark",
	"Catalan",
	"Bell",
	"Floyd",
	"SEA",
	"Leibniz",
	"Bernoulli",
}

// String returns the canonical family name, or "Family(i)" for values
// outside the enum. Complexity: O(1).
func (f Family) String() string {
	// Guard against stale or corrupted enum values.
	if f < 0 || int(f) >= len(familyNames) {
		return fmt.Sprintf("Family(%d)", int(f))
	}

	return familyNames[f]
}

// ---------- Exactness limits (single source of truth) ----------
//
// Each limit is the largest order n for which the family's contractual
// cells are known to be exact in int64 — every cell for most families; for
// Bell the guarantee covers the extracted column 0, because Aitken's
// diagonal runs one Bell number ahead of it (see ExactLimitBell). Build
// still completes past the limit; it attaches an AdvisoryExactness so
// callers can decide whether the values are trustworthy.

const (
	// ExactLimitPascal bounds binomial growth: C(50,25) ≈ 1.3e14 ≪ 2⁶³.
	ExactLimitPascal = 50

	// ExactLimitBernoulliTriangle mirrors Pascal; partial row sums stay ≤ 2ⁿ.
	ExactLimitBernoulliTriangle = 50

	// ExactLimitRascal is generous: cells grow only quadratically (k(n−k)+1).
	ExactLimitRascal = 50

	// ExactLimitLozanic mirrors Pascal; every cell is at most the binomial above it.
	ExactLimitLozanic = 50

	// ExactLimitClark mirrors Pascal; interior cells are sums of two parents.
	ExactLimitClark = 50

	// ExactLimitLeibniz bounds (n+1)·C(n,k) growth alongside Pascal.
	ExactLimitLeibniz = 50

	// ExactLimitEulerian reflects factorial row sums: 20! ≈ 2.4e18 ≈ int64 max.
	ExactLimitEulerian = 20

	// ExactLimitSEA reflects zigzag growth comparable to factorials.
	ExactLimitSEA = 20

	// ExactLimitTrinomial keeps the conservative contract shared with Eulerian.
	ExactLimitTrinomial = 20

	// ExactLimitBell bounds the extracted column 0: Bell(25) = cell(25,0)
	// fits int64, Bell(26) does not. Aitken's diagonal carries cell(n,n) =
	// Bell(n+1), one number ahead of the column, so at the limit itself the
	// diagonal has already wrapped; the guarantee covers column 0 only.
	ExactLimitBell = 25

	// ExactLimitCatalan is conservative; Catalan(30) ≈ 3.8e15 ≪ 2⁶³.
	ExactLimitCatalan = 30
)

// exactLimits maps each bounded family to its limit. Families absent from
// the map (Sierpinski, Floyd) never exceed int64 at buildable orders.
var exactLimits = map[Family]int{
	FamilyPascal:            ExactLimitPascal,
	FamilyBernoulliTriangle: ExactLimitBernoulliTriangle,
	FamilyRascal:            ExactLimitRascal,
	FamilyLozanic:           ExactLimitLozanic,
	FamilyClark:             ExactLimitClark,
	FamilyLeibniz:           ExactLimitLeibniz,
	FamilyEulerian:          ExactLimitEulerian,
	FamilySEA:               ExactLimitSEA,
	FamilyTrinomial:         ExactLimitTrinomial,
	FamilyBell:              ExactLimitBell,
	FamilyCatalan:           ExactLimitCatalan,
}

// ---------- Advisory values ----------

// AdvisoryKind classifies non-fatal precision notes.
type AdvisoryKind int

const (
	// AdvisoryExactness reports that the build order exceeds the family's
	// documented exact-integer limit; cells may have overflowed silently.
	AdvisoryExactness AdvisoryKind = iota

	// AdvisoryStability reports that a floating-point pipeline (the
	// Bernoulli determinant) ran past its numerically stable order.
	AdvisoryStability
)

// advisoryKindNames backs AdvisoryKind.String.
var advisoryKindNames = []string{
	"exactness",
	"stability",
}

// String returns the lowercase kind label, or "AdvisoryKind(i)" for values
// outside the enum. Complexity: O(1).
func (k AdvisoryKind) String() string {
	if k < 0 || int(k) >= len(advisoryKindNames) {
		return fmt.Sprintf("AdvisoryKind(%d)", int(k))
	}

	return advisoryKindNames[k]
}

// Advisory is a non-fatal precision note attached to a computed result.
// It never alters the shape of the result and never aborts a computation;
// it exists so that precision caveats travel with values instead of logs.
type Advisory struct {
	// Kind classifies the note (exactness vs. floating-point stability).
	Kind AdvisoryKind

	// Family is the triangle or scalar family the note refers to.
	Family Family

	// Order is the requested build order n that triggered the note.
	Order int

	// Threshold is the documented limit that Order exceeded.
	Threshold int
}

// String renders a stable single-line description, e.g.
// "exactness advisory: Bell order 26 exceeds limit 25".
// Complexity: O(1).
func (a Advisory) String() string {
	return fmt.Sprintf("%s advisory: %s order %d exceeds limit %d",
		a.Kind, a.Family, a.Order, a.Threshold)
}
