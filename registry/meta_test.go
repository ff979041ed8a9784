package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spweights/registry"
	"github.com/katalvlaran/spweights/weights"
)

func rowsToMap(rows []registry.Property) map[string]string {
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Title] = r.Value
	}

	return out
}

func titles(rows []registry.Property) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Title
	}

	return out
}

// TestDescribe_Contiguity checks the full row list of an associated queen matrix.
func TestDescribe_Contiguity(t *testing.T) {
	m := registry.New()
	id := register(t, m, "queen", queen(t))
	require.NoError(t, m.SetFilename(id, "/tmp/maps/columbus.gal"))
	meta, err := m.MetaInfo(id)
	require.NoError(t, err)

	assert.Equal(t, []registry.Property{
		{Title: "type", Value: "queen"},
		{Title: "symmetry", Value: "symmetric"},
		{Title: "file", Value: "columbus.gal"},
		{Title: "id variable", Value: idPoly},
		{Title: "order", Value: "1"},
		{Title: "# observations", Value: "4"},
		{Title: "min neighbors", Value: "0"},
		{Title: "max neighbors", Value: "2"},
		{Title: "mean neighbors", Value: "1.00"},
		{Title: "median neighbors", Value: "1.00"},
		{Title: "% non-zero", Value: "33.33%"},
	}, registry.Describe(meta))
}

// TestDescribe_HigherOrderRook shows the lower-orders row only above order 1.
func TestDescribe_HigherOrderRook(t *testing.T) {
	rows := rowsToMap(registry.Describe(registry.NewMetaInfo(
		registry.Contiguity{Order: 2, IncludeLowerOrders: true}, idPoly)))
	assert.Equal(t, "rook", rows["type"])
	assert.Equal(t, "2", rows["order"])
	assert.Equal(t, "true", rows["include lower orders"])
}

// TestDescribe_Distance covers the knn and threshold variants.
func TestDescribe_Distance(t *testing.T) {
	knn := registry.Distance{Method: registry.KNN, Metric: "euclidean", Vars: []string{"X", "Y"}, Neighbors: 6}
	rows := registry.Describe(registry.NewMetaInfo(knn, idPoly))
	got := rowsToMap(rows)
	assert.Equal(t, "knn", got["type"])
	assert.Equal(t, "euclidean", got["distance metric"])
	assert.Equal(t, "X, Y", got["distance vars"])
	assert.Equal(t, "6", got["neighbors"])
	assert.NotContains(t, got, "threshold value")

	band := registry.Distance{Method: registry.Threshold, Threshold: 1.5, Power: -2}
	rows = registry.Describe(registry.NewMetaInfo(band, idPoly))
	got = rowsToMap(rows)
	assert.Equal(t, "threshold", got["type"])
	assert.Equal(t, "true", got["inverse distance"])
	assert.Equal(t, "2", got["power"])
	assert.Equal(t, "unknown", got["distance metric"])
	assert.Equal(t, "unknown", got["distance vars"])
	assert.Equal(t, "unknown", got["distance unit"])
	assert.Equal(t, "1.5", got["threshold value"])
	assert.Equal(t, []string{"type", "inverse distance", "power", "symmetry"}, titles(rows)[:4])
}

// TestDescribe_Kernel covers fixed and adaptive bandwidths.
func TestDescribe_Kernel(t *testing.T) {
	fixed := rowsToMap(registry.Describe(registry.NewMetaInfo(
		registry.Kernel{Method: "gaussian", Bandwidth: 0.25}, idPoly)))
	assert.Equal(t, "kernel", fixed["type"])
	assert.Equal(t, "gaussian", fixed["kernel method"])
	assert.Equal(t, "0.25", fixed["bandwidth"])
	assert.Equal(t, "false", fixed["kernel to diagonal"])
	assert.NotContains(t, fixed, "knn")

	adaptive := rowsToMap(registry.Describe(registry.NewMetaInfo(
		registry.Kernel{Method: "triangular", K: 5, Adaptive: true, KernelToDiagonal: true}, idPoly)))
	assert.Equal(t, "5", adaptive["knn"])
	assert.Equal(t, "true", adaptive["adaptive kernel"])
	assert.Equal(t, "true", adaptive["kernel to diagonal"])

	bare := rowsToMap(registry.Describe(registry.NewMetaInfo(registry.Kernel{}, idPoly)))
	assert.Equal(t, "unknown", bare["kernel method"])
	assert.NotContains(t, bare, "kernel to diagonal")
}

// TestDescribe_Unknowns renders missing information as "unknown".
func TestDescribe_Unknowns(t *testing.T) {
	rows := rowsToMap(registry.Describe(registry.MetaInfo{}))
	assert.Equal(t, "unknown", rows["type"])
	assert.Equal(t, "unknown", rows["symmetry"])
	assert.Equal(t, "not saved", rows["file"])
	assert.Equal(t, "unknown", rows["# observations"])
	assert.Equal(t, "unknown", rows["min neighbors"])
	assert.Equal(t, "unknown", rows["% non-zero"])
}

// TestDescribe_Custom lists only the common rows.
func TestDescribe_Custom(t *testing.T) {
	g := weights.MustFromAdjacency(idPoly, [][]int{{1}, {0}})
	st, err := g.ComputeStatistics()
	require.NoError(t, err)
	meta := registry.NewMetaInfo(registry.Custom{Source: "union"}, idPoly)
	meta.NumObs = 2
	meta.Stats = &st

	assert.Equal(t, []string{
		"type", "symmetry", "file", "id variable", "# observations",
		"min neighbors", "max neighbors", "mean neighbors", "median neighbors", "% non-zero",
	}, titles(registry.Describe(meta)))
	assert.Equal(t, "custom", meta.Kind.Name())
}

func TestSymmetry_String(t *testing.T) {
	assert.Equal(t, "symmetric", registry.Symmetric.String())
	assert.Equal(t, "asymmetric", registry.Asymmetric.String())
	assert.Equal(t, "unknown", registry.SymmetryUnknown.String())
}
