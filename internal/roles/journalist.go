package roles

import "mafiaengine/internal/domain"

// Journalist has no night kill power: it picks two distinct living targets
// and learns (via the journal only) whether they share a team.
type Journalist struct {
	self domain.PlayerId
}

func NewJournalist(id domain.PlayerId) *Journalist { return &Journalist{self: id} }

func (j *Journalist) ID() domain.PlayerId { return j.self }
func (j *Journalist) Role() domain.Role   { return domain.RoleJournalist }
func (j *Journalist) OnDay(ctx *Context)  {}

func (j *Journalist) VoteDay(ctx *Context) domain.PlayerId {
	id, ok := uniformAliveExcept(ctx, j.self)
	if !ok {
		return j.self
	}
	return id
}

func (j *Journalist) OnNight(ctx *Context) {
	candidates := aliveExcept(ctx.State, j.self)
	if len(candidates) < 2 {
		return
	}
	a, ok := uniform(ctx.RNG, candidates)
	if !ok {
		return
	}
	rest := make([]domain.PlayerId, 0, len(candidates)-1)
	for _, id := range candidates {
		if id != a {
			rest = append(rest, id)
		}
	}
	b, ok := uniform(ctx.RNG, rest)
	if !ok {
		return
	}
	ctx.Mod.SetJournalistCompare(j.self, a, b)
}
