// Package catalog persists spatial-weights graphs in a badger key-value
// store so a registry session can outlive the process.
//
// A Catalog satisfies registry.GraphStore. Graphs are keyed by their
// registry id and stored in the msgpack form produced by
// weights.NeighborGraph.Encode; Get always returns a frozen graph.
//
// Key layout:
//
//	"w/" + uuid (16 raw bytes)  => weights snapshot (msgpack)
//
// Opening without a directory gives an in-memory catalog, which is what
// tests and throwaway sessions use.
package catalog
