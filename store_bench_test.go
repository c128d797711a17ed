package stockroom

import (
	"testing"

	"github.com/duskhollow/stockroom/spatial"
)

const benchEntityCount = 1024

func BenchmarkStoreAddRemove(b *testing.B) {
	store := FactoryNewStore(WithDefault(spatial.NewTransform))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := EntityID(i % benchEntityCount)
		if _, err := store.Add(id); err != nil {
			b.Fatal(err)
		}
		store.Remove(id)
	}
}

func BenchmarkStoreGet(b *testing.B) {
	store := FactoryNewStore(WithDefault(spatial.NewTransform))
	for id := EntityID(0); id < benchEntityCount; id++ {
		if _, err := store.Add(id); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := store.Get(EntityID(i % benchEntityCount)); !ok {
			b.Fatal("missing entity")
		}
	}
}

func BenchmarkStoreIterate(b *testing.B) {
	store := FactoryNewStore(WithDefault(spatial.NewRigidBody))
	for id := EntityID(0); id < benchEntityCount; id++ {
		if _, err := store.Add(id); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, rb := range store.All() {
			rb.Velocity.X += 1
		}
	}
}

func BenchmarkManagerEachWith(b *testing.B) {
	manager := Factory.NewManager()
	transforms := manager.Transforms()
	rigidBodies := manager.RigidBodies()
	for id := EntityID(0); id < benchEntityCount; id++ {
		if _, err := transforms.Add(id); err != nil {
			b.Fatal(err)
		}
		if id%2 == 0 {
			if _, err := rigidBodies.Add(id); err != nil {
				b.Fatal(err)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matched := 0
		for range manager.EachWith(transforms.Kind(), rigidBodies.Kind()) {
			matched++
		}
		if matched != benchEntityCount/2 {
			b.Fatalf("matched %d", matched)
		}
	}
}
