package roles

import "mafiaengine/internal/domain"

// Eavesdropper has no kill power: it picks one living target and learns
// every night action that named them.
type Eavesdropper struct {
	self domain.PlayerId
}

func NewEavesdropper(id domain.PlayerId) *Eavesdropper { return &Eavesdropper{self: id} }

func (e *Eavesdropper) ID() domain.PlayerId { return e.self }
func (e *Eavesdropper) Role() domain.Role   { return domain.RoleEavesdropper }
func (e *Eavesdropper) OnDay(ctx *Context)  {}

func (e *Eavesdropper) VoteDay(ctx *Context) domain.PlayerId {
	id, ok := uniformAliveExcept(ctx, e.self)
	if !ok {
		return e.self
	}
	return id
}

func (e *Eavesdropper) OnNight(ctx *Context) {
	target, ok := uniformAliveExcept(ctx, e.self)
	if !ok {
		return
	}
	ctx.Mod.SetEavesdropperTarget(e.self, target)
}
