package ecs

import "strconv"

// EntityID uniquely identifies a ship (or the agent) in the world.
type EntityID uint64

// NilEntity is the zero value; no live entity has this ID.
const NilEntity EntityID = 0

func (id EntityID) String() string {
	if id == NilEntity {
		return "nil"
	}
	return "#" + strconv.FormatUint(uint64(id), 10)
}

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}
