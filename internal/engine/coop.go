package engine

import (
	"mafiaengine/internal/barrier"
	"mafiaengine/internal/domain"
)

// runCoop drives the match single-threaded via CoopBarrier: the
// moderator's work runs inside each barrier's on_complete
// callback instead of being interleaved by the caller, since there is no
// second thread to interleave with. Each agent's per-phase step is a plain
// closure passed as the continuation to Arrive; CoopBarrier's contract
// (on_complete runs before any waiter resumes) lets every continuation
// safely check GameOver the instant it resumes.
func (e *Engine) runCoop() {
	n := len(e.agents)

	dayStart := barrier.NewCoopBarrier(n, func() {
		e.mod.BeginDay()
	})
	dayEnd := barrier.NewCoopBarrier(n, func() {
		e.mod.ResolveDayLynch(e)
		if e.state.Winner = e.mod.EvaluateWinner(); e.state.Winner != domain.OutcomeNone {
			e.state.GameOver = true
		}
	})
	nightStart := barrier.NewCoopBarrier(n, func() {})
	nightEnd := barrier.NewCoopBarrier(n, func() {
		e.mod.ResolveNight()
		if e.state.Winner = e.mod.EvaluateWinner(); e.state.Winner != domain.OutcomeNone {
			e.state.GameOver = true
		} else {
			e.state.Round++
		}
	})

	var step func(i int)
	step = func(i int) {
		self := domain.PlayerId(i)
		agent := e.agents[i]
		ctx := e.contextFor(i)

		dayStart.Arrive(func() {
			if e.state.GameOver {
				return
			}
			if e.state.IsAlive(self) {
				agent.OnDay(ctx)
				vote := e.sanitizeVote(i, agent.VoteDay(ctx))
				e.mod.SubmitDayVote(self, vote)
			}
			dayEnd.Arrive(func() {
				if e.state.GameOver {
					return
				}
				nightStart.Arrive(func() {
					if e.state.GameOver {
						return
					}
					if e.state.IsAlive(self) {
						agent.OnNight(ctx)
					}
					nightEnd.Arrive(func() {
						if e.state.GameOver {
							return
						}
						step(i)
					})
				})
			})
		})
	}

	for i := range e.agents {
		step(i)
	}
}
