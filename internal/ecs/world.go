package ecs

import "slices"

// World holds every entity of an episode and their components.
//
// Components are values. To change one, Get it, modify the copy and Add it
// back. Entities are kept in creation order, which is also ID order, so every
// Query is reproducible under a fixed seed.
type World struct {
	nextID EntityID
	live   []EntityID
	stores map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World. The first entity gets ID 1.
func NewWorld() *World {
	return &World{
		nextID: 1,
		stores: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity allocates a fresh ID.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.live = append(w.live, id)
	return id
}

// DestroyEntity drops the entity and all of its components. IDs are never
// reused.
func (w *World) DestroyEntity(id EntityID) {
	i, ok := slices.BinarySearch(w.live, id)
	if !ok {
		return
	}
	w.live = slices.Delete(w.live, i, i+1)
	for _, store := range w.stores {
		delete(store, id)
	}
}

// Alive reports whether id was created and not destroyed.
func (w *World) Alive(id EntityID) bool {
	_, ok := slices.BinarySearch(w.live, id)
	return ok
}

// Add attaches c to id, replacing any component of the same type.
func (w *World) Add(id EntityID, c Component) {
	store, ok := w.stores[c.Type()]
	if !ok {
		store = make(map[EntityID]Component)
		w.stores[c.Type()] = store
	}
	store[id] = c
}

// Get returns id's component of type t, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	return w.stores[t][id]
}

// Lookup is Get with the type assertion done.
func Lookup[C Component](w *World, id EntityID, t ComponentType) (C, bool) {
	c, ok := w.Get(id, t).(C)
	return c, ok
}

func (w *World) Remove(id EntityID, t ComponentType) {
	delete(w.stores[t], id)
}

func (w *World) Has(id EntityID, t ComponentType) bool {
	_, ok := w.stores[t][id]
	return ok
}

// Query returns the live entities carrying every listed component type, in
// ascending ID order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	var out []EntityID
	for _, id := range w.live {
		if w.hasAll(id, types) {
			out = append(out, id)
		}
	}
	return out
}

func (w *World) hasAll(id EntityID, types []ComponentType) bool {
	for _, t := range types {
		if !w.Has(id, t) {
			return false
		}
	}
	return true
}

// Count returns the number of live entities.
func (w *World) Count() int { return len(w.live) }
