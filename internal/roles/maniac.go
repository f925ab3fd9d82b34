package roles

import "mafiaengine/internal/domain"

// Maniac is a lone-wolf killer: one kill per night, no allies, no special
// day behaviour.
type Maniac struct {
	self domain.PlayerId
}

func NewManiac(id domain.PlayerId) *Maniac { return &Maniac{self: id} }

func (m *Maniac) ID() domain.PlayerId { return m.self }
func (m *Maniac) Role() domain.Role   { return domain.RoleManiac }
func (m *Maniac) OnDay(ctx *Context)  {}

func (m *Maniac) VoteDay(ctx *Context) domain.PlayerId {
	id, ok := uniformAliveExcept(ctx, m.self)
	if !ok {
		return m.self
	}
	return id
}

func (m *Maniac) OnNight(ctx *Context) {
	target, ok := uniformAliveExcept(ctx, m.self)
	if !ok {
		return
	}
	ctx.Mod.SetManiacTarget(m.self, target)
}
