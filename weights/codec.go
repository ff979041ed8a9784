package weights

import (
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// snapshot is the wire form of a NeighborGraph.
type snapshot struct {
	NodeCount  int     `msgpack:"n"`
	IDVariable string  `msgpack:"id"`
	Symmetric  bool    `msgpack:"sym"`
	Neighbors  [][]int `msgpack:"nbrs"`
}

// Encode serializes g with msgpack. The frozen state is not part of the
// encoding: Decode always returns a frozen graph.
func (g *NeighborGraph) Encode() ([]byte, error) {
	snap := snapshot{
		NodeCount:  g.nodeCount,
		IDVariable: g.idVariable,
		Symmetric:  g.IsSymmetric(),
		Neighbors:  g.Adjacency(),
	}
	b, err := msgpack.Marshal(&snap)
	if err != nil {
		return nil, errors.Wrap(err, "weights: encode")
	}

	return b, nil
}

// Decode parses bytes produced by Encode and returns a frozen graph.
//
// Errors:
//   - ErrBadEncoding if data is not a snapshot or its shape is inconsistent.
//   - ErrIndexOutOfRange if a stored neighbor index is outside the node range.
func Decode(data []byte) (*NeighborGraph, error) {
	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, errors.Wrapf(ErrBadEncoding, "msgpack: %v", err)
	}
	if snap.NodeCount < 0 || len(snap.Neighbors) != snap.NodeCount {
		return nil, errors.Wrapf(ErrBadEncoding, "node count %d, %d neighbor rows", snap.NodeCount, len(snap.Neighbors))
	}
	g, err := FromAdjacency(snap.IDVariable, snap.Neighbors)
	if err != nil {
		return nil, err
	}
	g.symmetric = snap.Symmetric

	return g.Freeze(), nil
}
