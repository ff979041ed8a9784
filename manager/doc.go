// Package manager drives graph algebra against a weights registry the way
// a weights manager window does: the user selects entries, picks an
// operation, and the result comes back as a new default entry.
//
// A Controller resolves entry ids to graphs, gates the selection with
// algebra.Partition, runs Union, Intersection or Symmetrize, and registers
// the result as a registry.Custom entry. It also mirrors the registry's
// event stream into a list of user-visible entries (Apply / Run) and
// reports which operations a selection size enables (Actions).
//
// Logging goes through klog; raise -v to 1 to see every operation.
package manager
