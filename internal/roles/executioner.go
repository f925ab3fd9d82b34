package roles

import "mafiaengine/internal/domain"

// Executioner has no night action; its only special power is deciding
// whether to break a day-vote tie, invoked only when the vote resolves to
// more than one leader.
type Executioner struct {
	self domain.PlayerId
}

func NewExecutioner(id domain.PlayerId) *Executioner { return &Executioner{self: id} }

func (e *Executioner) ID() domain.PlayerId { return e.self }
func (e *Executioner) Role() domain.Role   { return domain.RoleExecutioner }
func (e *Executioner) OnDay(ctx *Context)  {}
func (e *Executioner) OnNight(ctx *Context) {}

func (e *Executioner) VoteDay(ctx *Context) domain.PlayerId {
	id, ok := uniformAliveExcept(ctx, e.self)
	if !ok {
		return e.self
	}
	return id
}

// DecideExecution abstains with probability 1/2; otherwise picks uniformly
// among the tied leaders. A dead Executioner always abstains — the caller
// (the engine's ExecutionerPanel) is responsible for skipping dead agents
// entirely, but the check is repeated here defensively.
func (e *Executioner) DecideExecution(ctx *Context, leaders []domain.PlayerId) (domain.PlayerId, bool) {
	if !ctx.State.IsAlive(e.self) {
		return 0, false
	}
	if ctx.RNG.Intn(2) == 0 {
		return 0, false
	}
	return uniform(ctx.RNG, leaders)
}
