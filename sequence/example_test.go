package sequence_test

import (
	"fmt"

	"github.com/katalvlaran/trigon/sequence"
)

// ExampleBellNumbers lists how many ways small sets can be partitioned.
// One order-7 build produces the whole prefix.
func ExampleBellNumbers() {
	bells, _, err := sequence.BellNumbers(7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(bells)
	// Output:
	// [1 1 2 5 15 52 203 877]
}

// ExampleCatalanNumber counts the balanced bracketings of 7 pairs.
func ExampleCatalanNumber() {
	v, _, err := sequence.CatalanNumber(7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("CatalanNumber(7) =", v)
	// Output:
	// CatalanNumber(7) = 429
}

// ExampleMoserNumbers shows the famous pattern break: chord-divided circle
// regions double like 2^n right up to five points, then hit 31.
func ExampleMoserNumbers() {
	regions, _, err := sequence.MoserNumbers(6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(regions)
	// Output:
	// [1 1 2 4 8 16 31]
}

// ExampleBinomial reads one coefficient without touching the triangle API.
func ExampleBinomial() {
	v, _, err := sequence.Binomial(10, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("C(10,5) =", v)
	// Output:
	// C(10,5) = 252
}

// ExampleEntringerNumber walks natural row 4 of the zigzag triangle; the
// reversed storage of even rows is undone transparently.
func ExampleEntringerNumber() {
	row := make([]int64, 0, 5)
	for k := 0; k <= 4; k++ {
		v, _, err := sequence.EntringerNumber(4, k)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		row = append(row, v)
	}
	fmt.Println(row)
	// Output:
	// [0 2 4 5 5]
}

// ExampleZigzagNumbers interleaves the tangent and secant counts of
// alternating permutations.
func ExampleZigzagNumbers() {
	zz, _, err := sequence.ZigzagNumbers(8)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(zz)
	// Output:
	// [1 1 1 2 5 16 61 272 1385]
}
