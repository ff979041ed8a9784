// Package spweights is a small toolkit for spatial-weights neighbor graphs
// and the set algebra a weights manager offers on them.
//
// 🚀 What is inside?
//
//	weights/   NeighborGraph: sorted neighbor sets, degree statistics,
//	           isolates, connected components, msgpack codec
//	algebra/   Union, Intersection, Symmetrize (OR / mutual) + selection gate
//	registry/  entries keyed by UUID, metadata kinds, Describe, typed events
//	catalog/   badger-backed graph store for a registry
//	manager/   selection → algebra → registry flow with klog logging
//	examples/  runnable walkthrough
//
// Quick ASCII example:
//
//	A = 0─1, 0─2      B = 0─1, 1─3
//
//	Union(A, B)        = 0─1, 0─2, 1─3
//	Intersection(A, B) = 0─1
//
// Every result is a fresh, frozen graph; operands are never modified.
//
//	go get github.com/katalvlaran/spweights
package spweights
