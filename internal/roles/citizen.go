package roles

import "mafiaengine/internal/domain"

// Citizen has no night action and no special day behaviour beyond the
// baseline uniform vote.
type Citizen struct {
	self domain.PlayerId
}

func NewCitizen(id domain.PlayerId) *Citizen { return &Citizen{self: id} }

func (c *Citizen) ID() domain.PlayerId   { return c.self }
func (c *Citizen) Role() domain.Role     { return domain.RoleCitizen }
func (c *Citizen) OnDay(ctx *Context)    {}
func (c *Citizen) OnNight(ctx *Context)  {}

func (c *Citizen) VoteDay(ctx *Context) domain.PlayerId {
	id, ok := uniformAliveExcept(ctx, c.self)
	if !ok {
		return c.self
	}
	return id
}
