package registry

// Kind describes how a weights matrix was constructed. It is a closed set:
// Contiguity, Distance, Kernel and Custom are the only implementations.
type Kind interface {
	// Name returns the short type label shown to users ("queen", "knn", ...).
	Name() string

	sealed()
}

// Contiguity is rook or queen contiguity of a given order.
type Contiguity struct {
	Queen              bool // false = rook
	Order              int
	IncludeLowerOrders bool
}

// DistanceMethod selects how a Distance weights matrix picks neighbors.
type DistanceMethod int

const (
	// KNN keeps the k nearest neighbors of every observation.
	KNN DistanceMethod = iota
	// Threshold keeps every observation within a distance band.
	Threshold
)

// Distance is a k-nearest-neighbor or distance-band weights matrix.
// A negative Power marks inverse-distance weighting with exponent -Power.
type Distance struct {
	Method    DistanceMethod
	Metric    string   // "euclidean", "arc", ...
	Vars      []string // coordinate variables
	Units     string   // threshold units ("mile", "km", ...)
	Neighbors int      // k for KNN
	Threshold float64  // band for Threshold
	Power     float64
}

// Kernel is a kernel weights matrix with either a fixed bandwidth or an
// adaptive bandwidth set by the k-th nearest neighbor.
type Kernel struct {
	Method           string // "triangular", "gaussian", ...; empty if unknown
	Bandwidth        float64
	K                int
	Adaptive         bool
	KernelToDiagonal bool
}

// Custom marks a weights matrix produced by other means, e.g. an algebra
// operation. Source names the producing operation.
type Custom struct {
	Source string
}

func (Contiguity) sealed() {}
func (Distance) sealed()   {}
func (Kernel) sealed()     {}
func (Custom) sealed()     {}

// Name implements Kind.
func (c Contiguity) Name() string {
	if c.Queen {
		return "queen"
	}
	return "rook"
}

// Name implements Kind.
func (d Distance) Name() string {
	if d.Method == Threshold {
		return "threshold"
	}
	return "knn"
}

// Name implements Kind.
func (Kernel) Name() string { return "kernel" }

// Name implements Kind.
func (Custom) Name() string { return "custom" }
