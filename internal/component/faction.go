package component

import "galaxy-rl/internal/ecs"

const CFaction ecs.ComponentType = 2

// Role tags what kind of ship an entity is. Sensing filters on roles rather
// than on concrete types.
type Role uint8

const (
	RoleShip    Role = iota // common ancestor of every flying thing
	RoleHostile             // separatist: chases the agent and neutral ships
	RoleNeutral             // republic: flees hostiles, otherwise patrols
	RoleAgent               // player-controlled; lives outside the roster
	numRoles
)

var roleNames = [numRoles]string{"ship", "hostile", "neutral", "agent"}

func (r Role) String() string {
	if r < numRoles {
		return roleNames[r]
	}
	return "unknown"
}

// roleParent is the is-a table. RoleShip is the root.
var roleParent = map[Role]Role{
	RoleHostile: RoleShip,
	RoleNeutral: RoleShip,
	RoleAgent:   RoleShip,
}

// lineage[r] has a bit set for r and every ancestor of r.
var lineage [numRoles]RoleSet

func init() {
	for r := Role(0); r < numRoles; r++ {
		set := RoleSet(1) << r
		for cur := r; ; {
			parent, ok := roleParent[cur]
			if !ok {
				break
			}
			set |= RoleSet(1) << parent
			cur = parent
		}
		lineage[r] = set
	}
}

// RoleSet is a set of roles used as a sensing filter.
type RoleSet uint8

// Roles builds a set from the given roles.
func Roles(rs ...Role) RoleSet {
	var s RoleSet
	for _, r := range rs {
		s |= RoleSet(1) << r
	}
	return s
}

// Empty reports whether no role was given. An empty filter matches every
// roster entity but never the agent.
func (s RoleSet) Empty() bool { return s == 0 }

// Matches reports whether r, or any ancestor of r, is in s.
func (s RoleSet) Matches(r Role) bool {
	if r >= numRoles {
		return false
	}
	return s&lineage[r] != 0
}

// Faction attaches a role to an entity.
type Faction struct {
	Role Role
}

func (Faction) Type() ecs.ComponentType { return CFaction }
