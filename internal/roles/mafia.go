package roles

import "mafiaengine/internal/domain"

// Mafia prefers Town targets both at the day vote and the night kill,
// falling back to any living target when no Town player survives.
type Mafia struct {
	self domain.PlayerId
}

func NewMafia(id domain.PlayerId) *Mafia { return &Mafia{self: id} }

func (m *Mafia) ID() domain.PlayerId { return m.self }
func (m *Mafia) Role() domain.Role   { return domain.RoleMafia }
func (m *Mafia) OnDay(ctx *Context)  {}

func (m *Mafia) VoteDay(ctx *Context) domain.PlayerId {
	id, ok := m.pickTarget(ctx)
	if !ok {
		return m.self
	}
	return id
}

func (m *Mafia) OnNight(ctx *Context) {
	id, ok := m.pickTarget(ctx)
	if !ok {
		return
	}
	ctx.Mod.MafiaVoteTarget(m.self, id)
}

func (m *Mafia) pickTarget(ctx *Context) (domain.PlayerId, bool) {
	town := make([]domain.PlayerId, 0)
	for _, p := range ctx.State.AlivePlayers() {
		if p.ID != m.self && p.Team == domain.TeamTown {
			town = append(town, p.ID)
		}
	}
	if id, ok := uniform(ctx.RNG, town); ok {
		return id, true
	}
	return uniformAliveExcept(ctx, m.self)
}
