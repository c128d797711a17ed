/*
Package stockroom provides typed component storage for entity-based games and
simulations.

Stockroom keeps one sparse-set store per component kind and a central Manager
that owns every store, so attaching a Transform to an entity costs nothing for
entities that never have one. Entity identifiers are caller-assigned: the
manager trusts every EntityID it is handed and never tracks liveness itself
(the optional Ledger covers callers that want central lifetime tracking).

Core Concepts:

  - EntityID: a caller-assigned identifier denoting a game object.
  - Store: the per-kind mapping from entity identifiers to component values.
  - Kind: a registered component kind, one per stored type.
  - Manager: the owner and access point for all component stores.
  - Handle: a typed view of one kind, bound to its manager.

Basic Usage:

	// Create a manager; Transform and RigidBody stores are built in
	manager := stockroom.Factory.NewManager()

	// Allocate entity ids
	ledger := stockroom.Factory.NewLedger()
	player := ledger.Create()

	// Attach and mutate components
	transforms := manager.Transforms()
	tr, _ := transforms.Add(player)
	tr.Position = spatial.NewVec3(0, 2, 0)

	// Iterate entities carrying both built-in kinds
	for id := range manager.EachWith(transforms.Kind(), manager.RigidBodies().Kind()) {
		// read/modify within the loop; pointers must not be retained
		_ = id
	}

The manager is single-threaded by design: concurrent access must be serialized
by the caller (for example at a frame boundary).
*/
package stockroom
