// Package roles implements the eight-case role catalogue as a closed set of
// Go types sharing a common Agent interface, dispatched through Go's
// implicit interface satisfaction rather than a switch over a type tag.
package roles

import (
	"math/rand"

	"mafiaengine/internal/domain"
	"mafiaengine/internal/moderator"
)

// Context is the read/write handle every phase hook receives: a read-only
// view of the world, the moderator for intent submission, and the agent's
// own RNG stream.
type Context struct {
	State *domain.GameState
	Mod   *moderator.Moderator
	RNG   *rand.Rand
}

// Agent is the shared contract every role variant satisfies.
type Agent interface {
	ID() domain.PlayerId
	Role() domain.Role
	OnDay(ctx *Context)
	VoteDay(ctx *Context) domain.PlayerId
	OnNight(ctx *Context)
}

// ExecutionerAgent adds the tie-break capability only the Executioner (and
// the interactive Human standing in for one) implements.
type ExecutionerAgent interface {
	Agent
	DecideExecution(ctx *Context, leaders []domain.PlayerId) (domain.PlayerId, bool)
}

// aliveExcept returns every living player id other than self, ascending.
func aliveExcept(state *domain.GameState, self domain.PlayerId) []domain.PlayerId {
	out := make([]domain.PlayerId, 0, state.N())
	for _, p := range state.AlivePlayers() {
		if p.ID != self {
			out = append(out, p.ID)
		}
	}
	return out
}

// uniform picks one element of ids uniformly at random, or returns
// (0, false) if ids is empty.
func uniform(rng *rand.Rand, ids []domain.PlayerId) (domain.PlayerId, bool) {
	if len(ids) == 0 {
		return 0, false
	}
	return ids[rng.Intn(len(ids))], true
}

// uniformAliveExcept is the common "uniform random alive ≠ self" vote/shot
// pattern shared by every role's vote_day and several night hooks.
func uniformAliveExcept(ctx *Context, self domain.PlayerId) (domain.PlayerId, bool) {
	return uniform(ctx.RNG, aliveExcept(ctx.State, self))
}
