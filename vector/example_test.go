package vector_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/vector"
)

// ExampleGradient differentiates y = x² on five integer samples.
// The endpoints use one-sided differences, the interior central ones.
func ExampleGradient() {
	x := vector.FromSlice([]float64{0, 1, 2, 3, 4})
	y, _ := x.Map(func(v float64) float64 { return v * v })

	dydx, err := vector.Gradient(y, x)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(dydx)
	// Output:
	// [1, 2, 4, 6, 7]
}

// ExampleTrapezoid integrates sin over half a period.
func ExampleTrapezoid() {
	x, _ := vector.Linspace(0, math.Pi, 1000)
	y, _ := x.Map(math.Sin)

	area, err := vector.Trapezoid(y, x)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", area)
	// Output:
	// 2.0000
}

// ExampleStationaryPoints locates the extrema of one sine period.
func ExampleStationaryPoints() {
	x, _ := vector.Linspace(0, 2*math.Pi, 10000)
	y, _ := x.Map(math.Sin)

	points, _ := vector.StationaryPoints(y, x)
	for _, p := range points {
		fmt.Printf("x=%.3f y=%.3f\n", p.X, p.Y)
	}
	// Output:
	// x=1.571 y=1.000
	// x=4.713 y=-1.000
}

// ExampleReduce folds a vector with math.Max.
func ExampleReduce() {
	v := vector.FromSlice([]float64{3, 1, 4, 1, 5, 9, 2, 6})
	largest, _ := vector.Reduce(v, math.Max)
	fmt.Println(largest)
	// Output:
	// 9
}
