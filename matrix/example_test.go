package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvhmm/matrix"
)

// ExampleRowStochastic turns transition counts into a probability table and
// checks it against the default tolerance.
func ExampleRowStochastic() {
	counts, _ := matrix.FromRows([][]float64{
		{3, 1},
		{2, 2},
	})
	probs, _, _ := matrix.NormalizeRows(counts)

	fmt.Print(probs)
	fmt.Println("counts stochastic:", matrix.RowStochastic(counts, matrix.NewTolerance()))
	fmt.Println("probs stochastic:", matrix.RowStochastic(probs, matrix.NewTolerance()))
	// Output:
	// [0.75, 0.25]
	// [0.5, 0.5]
	// counts stochastic: false
	// probs stochastic: true
}

// ExampleCube stores a pairwise statistic per time step.
func ExampleCube() {
	c, _ := matrix.NewCube[float64](2, 2, 3) // 2 states, 3 steps
	_ = c.Set(1, 0, 1, 0.5)

	i, j, k := c.Dims()
	v, _ := c.At(1, 0, 1)
	fmt.Println(i, j, k, v)
	// Output:
	// 2 2 3 0.5
}
