// This file containes the world-state arena and supporting methods
package domain

import "fmt"

// GameState owns the fixed-length player arena exclusively. The Moderator
// and role agents only ever hold this pointer (a non-owning read-only view,
// by convention - Go has no const references) and address players by
// PlayerId. Entries are never relocated: a dead player keeps its index and
// its role/team stay readable for post-mortem journalling.
type GameState struct {
	Players []*Player

	Round   int
	Phase   Phase
	GameOver bool
	Winner  Outcome
}

// NewGameState builds the fixed-length arena from already-constructed
// players (position = id). Round starts at 1.
func NewGameState(players []*Player) *GameState {
	return &GameState{
		Players: players,
		Round:   1,
		Phase:   PhaseDay,
		Winner:  OutcomeNone,
	}
}

// Player returns the player record at id, or nil if id is out of range.
func (g *GameState) Player(id PlayerId) *Player {
	if id < 0 || int(id) >= len(g.Players) {
		return nil
	}
	return g.Players[id]
}

// IsAlive reports whether id names a living player. Out-of-range ids are
// treated as not-alive so callers can use it directly as a validity check.
func (g *GameState) IsAlive(id PlayerId) bool {
	p := g.Player(id)
	return p != nil && p.Alive
}

// N returns the configured population size.
func (g *GameState) N() int {
	return len(g.Players)
}

// AlivePlayers returns every living player, in ascending id order.
func (g *GameState) AlivePlayers() []*Player {
	alive := make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		if p.Alive {
			alive = append(alive, p)
		}
	}
	return alive
}

// Kill marks id dead. It is idempotent: killing an already-dead or
// out-of-range id is a no-op and reports false.
func (g *GameState) Kill(id PlayerId) bool {
	p := g.Player(id)
	if p == nil || !p.Alive {
		return false
	}
	p.Alive = false
	return true
}

// CountsByTeam tallies alive players per team.
func (g *GameState) CountsByTeam() (town, mafia, maniac int) {
	for _, p := range g.Players {
		if !p.Alive {
			continue
		}
		switch p.Team {
		case TeamTown:
			town++
		case TeamMafia:
			mafia++
		case TeamManiac:
			maniac++
		}
	}
	return
}

// RoleCensus counts every (alive or dead) player by role. Used by tests to
// assert the construction-time role distribution invariant.
func (g *GameState) RoleCensus() map[Role]int {
	census := make(map[Role]int)
	for _, p := range g.Players {
		census[p.Role]++
	}
	return census
}

// String renders a short debug summary, handy in panics and logs.
func (g *GameState) String() string {
	town, mafia, maniac := g.CountsByTeam()
	return fmt.Sprintf("round=%d phase=%s town=%d mafia=%d maniac=%d winner=%s",
		g.Round, g.Phase, town, mafia, maniac, g.Winner)
}
