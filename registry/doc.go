// Package registry keeps the loaded spatial-weights graphs of a session.
//
// The Registry interface is the narrow contract the graph algebra needs:
// fetch an operand by id, request an entry for a new result, associate the
// computed graph with it. Manager is an in-memory implementation that adds
// what a weights manager window needs around that contract:
//
//   - Metadata (MetaInfo) with a sealed Kind sum type: Contiguity, Distance,
//     Kernel or Custom. Describe turns metadata into ordered Property rows
//     through one exhaustive type switch.
//   - Typed change events (EventAdd, EventRemove, EventRename, EventDefault)
//     delivered over channels obtained from Subscribe. Sends never block:
//     a full subscriber loses the event and Dropped is incremented.
//   - An explicit default selection (Default / MakeDefault) owned by the
//     Manager rather than process-wide state.
//
// Graph storage is delegated to a GraphStore. MemoryStore is the default;
// package catalog provides a persistent one.
//
// Entries are identified by random UUIDs. A graph handed to AssociateGraph
// is frozen and owned by the registry from then on.
package registry
