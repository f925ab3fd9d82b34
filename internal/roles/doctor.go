package roles

import "mafiaengine/internal/domain"

// Doctor heals one target per night, never the same target two nights in a
// row (self-heals are otherwise permitted).
type Doctor struct {
	self         domain.PlayerId
	previousHeal *domain.PlayerId
}

func NewDoctor(id domain.PlayerId) *Doctor { return &Doctor{self: id} }

func (d *Doctor) ID() domain.PlayerId { return d.self }
func (d *Doctor) Role() domain.Role   { return domain.RoleDoctor }
func (d *Doctor) OnDay(ctx *Context)  {}

func (d *Doctor) VoteDay(ctx *Context) domain.PlayerId {
	id, ok := uniformAliveExcept(ctx, d.self)
	if !ok {
		return d.self
	}
	return id
}

func (d *Doctor) OnNight(ctx *Context) {
	candidates := make([]domain.PlayerId, 0, ctx.State.N())
	for _, p := range ctx.State.AlivePlayers() {
		if d.previousHeal != nil && p.ID == *d.previousHeal {
			continue
		}
		candidates = append(candidates, p.ID)
	}
	target, ok := uniform(ctx.RNG, candidates)
	if !ok {
		ctx.Mod.Info("doctor %d has no valid heal target", d.self)
		return
	}
	ctx.Mod.SetDoctorHeal(d.self, target)
	d.previousHeal = &target
}
