package solver_test

import (
	"fmt"

	"github.com/katalvlaran/rowreduce/solver"
)

// ExampleSolveGaussJordan solves 2a + b = 5, 3a + 4b = 6.
func ExampleSolveGaussJordan() {
	res, err := solver.SolveGaussJordan([][]float64{
		{2, 1, 5},
		{3, 4, 6},
	})
	if err != nil {
		panic(err)
	}
	for i, s := range res.Steps {
		fmt.Printf("Step %d: %s\n", i+1, s.Annotation)
	}
	fmt.Println("singular:", res.Singular)
	fmt.Println("solution:", solver.Solution(res.Echelon))

	// Output:
	// Step 1: R1 <=> R2
	// Step 2: (R1 => (1/3) * R1)
	// Step 3: (R2 + (-2) * R1 => R2)
	// Step 4: (R2 => (1/-1.6666667) * R2)
	// Step 5: (R1 + (-1.3333333) * R2 => R1)
	// singular: false
	// solution: [2.8 -0.6]
}

// ExampleBackSubstitute pairs forward elimination with back-substitution.
func ExampleBackSubstitute() {
	res, err := solver.SolveGaussian([][]float64{
		{1, 1, 3},
		{1, -1, 1},
	})
	if err != nil {
		panic(err)
	}
	values, err := solver.BackSubstitute(res.Echelon)
	if err != nil {
		panic(err)
	}
	fmt.Println(values)

	// Output:
	// [2 1]
}

// ExampleInvert inverts a 2×2 matrix and shows a singular one.
func ExampleInvert() {
	res, _ := solver.Invert([][]float64{{4, 7}, {2, 6}})
	fmt.Println(res.Inverse)

	res, _ = solver.Invert([][]float64{{1, 2}, {2, 4}})
	fmt.Println(res.Singular, res.Inverse == nil)

	// Output:
	// [[0.6 -0.7] [-0.2 0.4]]
	// true true
}
