package registry

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/spweights/weights"
)

// Symmetry records what is known about a matrix's symmetry.
type Symmetry int

const (
	SymmetryUnknown Symmetry = iota
	Symmetric
	Asymmetric
)

func (s Symmetry) String() string {
	switch s {
	case Symmetric:
		return "symmetric"
	case Asymmetric:
		return "asymmetric"
	default:
		return "unknown"
	}
}

// MetaInfo is the descriptive record kept for every registry entry.
//
// NumObs is 0 (or negative) when unknown, so a zero MetaInfo places no
// constraint on the graph. Stats is nil until a graph is associated.
type MetaInfo struct {
	Title       string
	IDVariable  string
	Filename    string // empty when never saved
	NumObs      int
	Symmetry    Symmetry
	Kind        Kind
	Stats       *weights.DegreeStats
	InternalUse bool // hidden from user-facing lists
}

// NewMetaInfo returns MetaInfo for a kind and id variable with every
// derived field unknown. A MetaInfo literal works as well.
func NewMetaInfo(kind Kind, idVariable string) MetaInfo {
	return MetaInfo{
		IDVariable: idVariable,
		Kind:       kind,
	}
}

// Property is one row of an entry's details: a title and a display value.
type Property struct {
	Title string
	Value string
}

const unknown = "unknown"

// Describe renders meta as ordered Property rows: the type, kind-specific
// construction parameters, symmetry, file, id variable, then observation
// and neighbor statistics. Unknown values render as "unknown".
func Describe(meta MetaInfo) []Property {
	var rows []Property
	add := func(title, value string) { rows = append(rows, Property{title, value}) }

	typeName := unknown
	if meta.Kind != nil {
		typeName = meta.Kind.Name()
	}
	add("type", typeName)

	// Construction parameters shown before the common rows.
	switch k := meta.Kind.(type) {
	case Kernel:
		method := k.Method
		if method == "" {
			method = unknown
		}
		add("kernel method", method)
		if k.Bandwidth > 0 {
			add("bandwidth", formatFloat(k.Bandwidth))
		} else if k.K > 0 {
			add("knn", strconv.Itoa(k.K))
			if k.Adaptive {
				add("adaptive kernel", "true")
			}
		}
		if k.Method != "" {
			add("kernel to diagonal", strconv.FormatBool(k.KernelToDiagonal))
		}
	case Distance:
		if k.Power < 0 {
			add("inverse distance", "true")
			add("power", formatFloat(-k.Power))
		}
	case Contiguity, Custom, nil:
	}

	add("symmetry", meta.Symmetry.String())
	if meta.Filename == "" {
		add("file", "not saved")
	} else {
		add("file", filepath.Base(meta.Filename))
	}
	add("id variable", meta.IDVariable)

	// Construction parameters shown after the id variable.
	switch k := meta.Kind.(type) {
	case Contiguity:
		add("order", strconv.Itoa(k.Order))
		if k.Order > 1 {
			add("include lower orders", strconv.FormatBool(k.IncludeLowerOrders))
		}
	case Distance:
		add("distance metric", orUnknown(k.Metric))
		add("distance vars", orUnknown(strings.Join(k.Vars, ", ")))
		if k.Method == Threshold {
			add("distance unit", orUnknown(k.Units))
			add("threshold value", formatFloat(k.Threshold))
		} else {
			add("neighbors", strconv.Itoa(k.Neighbors))
		}
	case Kernel, Custom, nil:
	}

	if meta.NumObs > 0 {
		add("# observations", strconv.Itoa(meta.NumObs))
	} else {
		add("# observations", unknown)
	}

	if st := meta.Stats; st != nil {
		add("min neighbors", strconv.Itoa(st.Min))
		add("max neighbors", strconv.Itoa(st.Max))
		add("mean neighbors", fmt.Sprintf("%.2f", st.Mean))
		add("median neighbors", fmt.Sprintf("%.2f", st.Median))
		add("% non-zero", fmt.Sprintf("%.2f%%", st.Density*100))
	} else {
		for _, title := range []string{"min neighbors", "max neighbors", "mean neighbors", "median neighbors", "% non-zero"} {
			add(title, unknown)
		}
	}

	return rows
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
