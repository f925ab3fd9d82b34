package roles

import "mafiaengine/internal/domain"

// Detective tracks every player it has confirmed to be Mafia, pruned to
// the living each turn, and chooses each night between shooting a known
// target and investigating a fresh one.
type Detective struct {
	self       domain.PlayerId
	knownMafia map[domain.PlayerId]bool
}

func NewDetective(id domain.PlayerId) *Detective {
	return &Detective{self: id, knownMafia: make(map[domain.PlayerId]bool)}
}

func (d *Detective) ID() domain.PlayerId { return d.self }
func (d *Detective) Role() domain.Role   { return domain.RoleDetective }
func (d *Detective) OnDay(ctx *Context)  { d.prune(ctx) }

func (d *Detective) prune(ctx *Context) {
	for id := range d.knownMafia {
		if !ctx.State.IsAlive(id) {
			delete(d.knownMafia, id)
		}
	}
}

func (d *Detective) knownAlive() []domain.PlayerId {
	out := make([]domain.PlayerId, 0, len(d.knownMafia))
	for id := range d.knownMafia {
		out = append(out, id)
	}
	return out
}

func (d *Detective) VoteDay(ctx *Context) domain.PlayerId {
	d.prune(ctx)
	if id, ok := uniform(ctx.RNG, d.knownAlive()); ok {
		return id
	}
	id, ok := uniformAliveExcept(ctx, d.self)
	if !ok {
		return d.self
	}
	return id
}

func (d *Detective) OnNight(ctx *Context) {
	d.prune(ctx)

	known := d.knownAlive()
	if len(known) > 0 && ctx.RNG.Intn(2) == 0 {
		target, ok := uniform(ctx.RNG, known)
		if ok {
			ctx.Mod.SetDetectiveShot(d.self, target)
			return
		}
	}

	candidates := make([]domain.PlayerId, 0)
	for _, p := range ctx.State.AlivePlayers() {
		if p.ID != d.self && !d.knownMafia[p.ID] {
			candidates = append(candidates, p.ID)
		}
	}
	if len(candidates) == 0 {
		candidates = aliveExcept(ctx.State, d.self)
	}
	target, ok := uniform(ctx.RNG, candidates)
	if !ok {
		return
	}
	if ctx.Mod.FactionOf(target) == domain.TeamMafia {
		d.knownMafia[target] = true
	}
}
