package regression_test

import (
	"fmt"

	"github.com/katalvlaran/numlab/regression"
)

// ExampleFitLine fits a line through six noisy samples.
func ExampleFitLine() {
	x := []float64{5, 15, 25, 35, 45, 55}
	y := []float64{5, 20, 14, 32, 22, 38}
	w := []float64{0.5, 0.5}

	res, err := regression.FitLine(x, y, w,
		regression.WithLearningRate(0.0008),
		regression.WithMaxIterations(100_000),
		regression.WithTolerance(1e-6),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("converged=%v bias=%.3f slope=%.3f cost=%.3f\n",
		res.Converged, w[0], w[1], res.Cost)
	// Output:
	// converged=true bias=5.628 slope=0.540 cost=16.878
}
