package vector

// MaxLen is the largest length any factory will allocate (8 GiB of float64).
// Larger requests fail with ErrAllocation instead of aborting the process.
const MaxLen = 1 << 30

// Minimum sample counts for the numerical methods.
const (
	minLinspacePoints  = 2 // linspace needs two endpoints
	minTrapezoidPoints = 2 // one trapezoid needs two samples
	minGradientPoints  = 3 // one interior point besides both endpoints
)

// printLineWidth is the number of values String prints before breaking the line.
const printLineWidth = 10

// Vector is an owned, fixed-length sequence of float64 values.
//
// The zero value is a valid zero-length vector. A Vector exclusively owns its
// buffer: constructors copy their inputs and accessors return copies, so no
// two Vectors ever alias the same memory.
type Vector struct {
	data []float64 // backing storage, len(data) is the vector size
}

// Point is a sample (X, Y) pair, used by StationaryPoints.
type Point struct {
	X float64
	Y float64
}

// UnaryFunc transforms one element.
type UnaryFunc func(float64) float64

// BinaryFunc combines two elements (Combine) or an accumulator with the next
// element (Reduce).
type BinaryFunc func(float64, float64) float64
