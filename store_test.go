package stockroom

import (
	"errors"
	"testing"
)

// Test component types
type Health struct {
	Current, Max int
}

type Tag struct {
	Label string
}

func newHealth() Health {
	return Health{Current: 100, Max: 100}
}

func TestStoreAddGetDefault(t *testing.T) {
	tests := []struct {
		name string
		ids  []EntityID
	}{
		{"Single entity", []EntityID{0}},
		{"Several entities", []EntityID{1, 2, 3}},
		{"Sparse ids", []EntityID{7, 1024, 0xFFFFFFF0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := FactoryNewStore(WithDefault(newHealth))

			for _, id := range tt.ids {
				if _, err := store.Add(id); err != nil {
					t.Fatalf("Add(%d) error = %v", id, err)
				}
			}
			if store.Len() != len(tt.ids) {
				t.Errorf("Len() = %d, want %d", store.Len(), len(tt.ids))
			}
			for _, id := range tt.ids {
				got, ok := store.Value(id)
				if !ok {
					t.Fatalf("Value(%d) absent after Add", id)
				}
				if got != newHealth() {
					t.Errorf("Value(%d) = %+v, want default %+v", id, got, newHealth())
				}
			}
		})
	}
}

func TestStoreZeroValueDefault(t *testing.T) {
	store := FactoryNewStore[Tag]()
	if _, err := store.Add(3); err != nil {
		t.Fatalf("Add error = %v", err)
	}
	got, ok := store.Value(3)
	if !ok || got != (Tag{}) {
		t.Errorf("Value(3) = %+v, %v; want zero Tag, true", got, ok)
	}
}

func TestStoreReAddResetsValue(t *testing.T) {
	store := FactoryNewStore(WithDefault(newHealth))

	ptr, err := store.Add(5)
	if err != nil {
		t.Fatalf("Add error = %v", err)
	}
	ptr.Current = 10

	if _, err := store.Add(5); err != nil {
		t.Fatalf("re-Add error = %v", err)
	}
	got, _ := store.Value(5)
	if got.Current != 100 {
		t.Errorf("re-Add kept mutation: Current = %d, want 100", got.Current)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d after re-Add, want 1", store.Len())
	}
}

func TestStoreRemove(t *testing.T) {
	tests := []struct {
		name        string
		add         []EntityID
		remove      EntityID
		wantRemoved bool
		wantLen     int
	}{
		{"Remove absent from empty", nil, 1, false, 0},
		{"Remove absent", []EntityID{1, 2}, 9, false, 2},
		{"Remove only entry", []EntityID{4}, 4, true, 0},
		{"Remove middle entry", []EntityID{1, 2, 3}, 2, true, 2},
		{"Remove last entry", []EntityID{1, 2, 3}, 3, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := FactoryNewStore(WithDefault(newHealth))
			for _, id := range tt.add {
				ptr, err := store.Add(id)
				if err != nil {
					t.Fatalf("Add(%d) error = %v", id, err)
				}
				ptr.Current = int(id) // distinct value per entity
			}

			if removed := store.Remove(tt.remove); removed != tt.wantRemoved {
				t.Errorf("Remove(%d) = %v, want %v", tt.remove, removed, tt.wantRemoved)
			}
			if store.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", store.Len(), tt.wantLen)
			}
			if store.Has(tt.remove) {
				t.Errorf("Has(%d) = true after Remove", tt.remove)
			}

			// Swap-delete must not disturb the survivors
			for _, id := range tt.add {
				if id == tt.remove {
					continue
				}
				got, ok := store.Value(id)
				if !ok {
					t.Fatalf("entity %d lost after removing %d", id, tt.remove)
				}
				if got.Current != int(id) {
					t.Errorf("entity %d value = %d, want %d", id, got.Current, id)
				}
			}
		})
	}
}

func TestStoreRemoveThenGetAbsent(t *testing.T) {
	store := FactoryNewStore(WithDefault(newHealth))

	// Never-added entity
	if _, ok := store.Get(11); ok {
		t.Error("Get on never-added entity reported present")
	}

	if _, err := store.Add(11); err != nil {
		t.Fatalf("Add error = %v", err)
	}
	store.Remove(11)
	if _, ok := store.Get(11); ok {
		t.Error("Get after Remove reported present")
	}
	if _, ok := store.Value(11); ok {
		t.Error("Value after Remove reported present")
	}
}

func TestStoreCapacity(t *testing.T) {
	store := FactoryNewStore(WithDefault(newHealth), WithCapacity[Health](2))

	for id := EntityID(0); id < 2; id++ {
		if _, err := store.Add(id); err != nil {
			t.Fatalf("Add(%d) error = %v", id, err)
		}
	}

	_, err := store.Add(2)
	var allocErr AllocationError
	if !errors.As(err, &allocErr) {
		t.Fatalf("Add past capacity error = %v, want AllocationError", err)
	}
	if allocErr.Capacity != 2 {
		t.Errorf("AllocationError.Capacity = %d, want 2", allocErr.Capacity)
	}

	// Re-adding an existing entity is an overwrite, not a new allocation
	if _, err := store.Add(1); err != nil {
		t.Errorf("re-Add at capacity error = %v, want nil", err)
	}

	if err := store.Set(3, newHealth()); !errors.As(err, &allocErr) {
		t.Errorf("Set past capacity error = %v, want AllocationError", err)
	}

	// Removing frees a slot
	store.Remove(0)
	if _, err := store.Add(2); err != nil {
		t.Errorf("Add after Remove error = %v, want nil", err)
	}
}

func TestStoreValueIsOwnedCopy(t *testing.T) {
	store := FactoryNewStore(WithDefault(newHealth))
	if _, err := store.Add(1); err != nil {
		t.Fatalf("Add error = %v", err)
	}

	copied, _ := store.Value(1)
	copied.Current = 1

	stored, _ := store.Value(1)
	if stored.Current != 100 {
		t.Errorf("mutating a Value copy changed the store: Current = %d", stored.Current)
	}
}

func TestStoreAll(t *testing.T) {
	store := FactoryNewStore(WithDefault(newHealth))
	want := map[EntityID]int{1: 10, 2: 20, 3: 30}
	for id, hp := range want {
		ptr, err := store.Add(id)
		if err != nil {
			t.Fatalf("Add(%d) error = %v", id, err)
		}
		ptr.Current = hp
	}

	seen := make(map[EntityID]int)
	for id, h := range store.All() {
		seen[id] = h.Current
	}
	if len(seen) != len(want) {
		t.Fatalf("All visited %d entries, want %d", len(seen), len(want))
	}
	for id, hp := range want {
		if seen[id] != hp {
			t.Errorf("All saw entity %d with %d, want %d", id, seen[id], hp)
		}
	}
}

func TestStoreAllRemoveCurrent(t *testing.T) {
	store := FactoryNewStore(WithDefault(newHealth))
	for id := EntityID(0); id < 8; id++ {
		ptr, err := store.Add(id)
		if err != nil {
			t.Fatalf("Add(%d) error = %v", id, err)
		}
		ptr.Current = int(id)
	}

	// Cull odd ids while iterating
	visited := 0
	for id := range store.All() {
		visited++
		if id%2 == 1 {
			store.Remove(id)
		}
	}
	if visited != 8 {
		t.Errorf("visited %d entries, want 8", visited)
	}
	if store.Len() != 4 {
		t.Errorf("Len() = %d after culling, want 4", store.Len())
	}
	for id := EntityID(0); id < 8; id++ {
		if store.Has(id) != (id%2 == 0) {
			t.Errorf("Has(%d) = %v after culling", id, store.Has(id))
		}
	}
}

func TestStoreClear(t *testing.T) {
	store := FactoryNewStore(WithDefault(newHealth))
	for id := EntityID(0); id < 4; id++ {
		if _, err := store.Add(id); err != nil {
			t.Fatalf("Add(%d) error = %v", id, err)
		}
	}
	store.Clear()
	if store.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", store.Len())
	}
	if store.Has(0) {
		t.Error("Has(0) = true after Clear")
	}
	// Store remains usable
	if _, err := store.Add(9); err != nil {
		t.Errorf("Add after Clear error = %v", err)
	}
}
