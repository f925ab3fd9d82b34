// This file containes player, team and role definitions and supporting methods
package domain

import "github.com/google/uuid"

// PlayerId is a dense, non-negative index into the player arena. Player
// records are never relocated once the match starts, so PlayerId doubles
// as a stable handle across the whole match.
type PlayerId int

// Team represents which side a role belongs to.
type Team int

const (
	TeamTown Team = iota
	TeamMafia
	TeamManiac
)

func (t Team) String() string {
	switch t {
	case TeamTown:
		return "town"
	case TeamMafia:
		return "mafia"
	case TeamManiac:
		return "maniac"
	default:
		return "invalid"
	}
}

// Role is a closed variant over the eight role kinds. A role is fixed at
// player construction: the engine shuffles a role bag up front and builds
// one player per slot, so no player ever holds an unassigned role.
type Role int

const (
	RoleCitizen Role = iota
	RoleMafia
	RoleDetective
	RoleDoctor
	RoleManiac
	RoleExecutioner
	RoleJournalist
	RoleEavesdropper
)

func (r Role) String() string {
	switch r {
	case RoleCitizen:
		return "citizen"
	case RoleMafia:
		return "mafia"
	case RoleDetective:
		return "detective"
	case RoleDoctor:
		return "doctor"
	case RoleManiac:
		return "maniac"
	case RoleExecutioner:
		return "executioner"
	case RoleJournalist:
		return "journalist"
	case RoleEavesdropper:
		return "eavesdropper"
	default:
		return "invalid"
	}
}

// Team returns the fixed team assignment for the role.
func (r Role) Team() Team {
	switch r {
	case RoleMafia:
		return TeamMafia
	case RoleManiac:
		return TeamManiac
	default:
		return TeamTown
	}
}

// Player holds the public record for one seat in the match. Role, Team, ID
// and DisplayName are immutable after construction; Alive is the only
// mutable field and may only transition true -> false (see GameState.Kill).
// Role-private state (known-mafia sets, previous heal targets, ...) is owned
// by the role agent in package roles, never by Player.
type Player struct {
	ID          PlayerId
	DisplayName string
	Role        Role
	Team        Team
	Alive       bool
}

// NewPlayer builds a player record for the given seat and role. If name is
// empty, a uuid-derived display name is used as a last resort so a match can
// always exceed a configured name pool's size (see names.Generator).
func NewPlayer(id PlayerId, name string, role Role) *Player {
	if name == "" {
		name = "player-" + uuid.NewString()[:8]
	}
	return &Player{
		ID:          id,
		DisplayName: name,
		Role:        role,
		Team:        role.Team(),
		Alive:       true,
	}
}
