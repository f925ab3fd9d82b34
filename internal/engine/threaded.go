package engine

import (
	"sync"
	"sync/atomic"

	"mafiaengine/internal/barrier"
	"mafiaengine/internal/domain"
)

// runThreaded drives the match on N+1 OS threads: one goroutine per agent
// plus the moderator goroutine, synchronised by four ThreadedBarrier
// rendezvous. The moderator thread is the one running this method; it is
// itself one of the N+1 parties at every barrier and calls
// resolve_day_lynch/resolve_night directly after its own Arrive at day_end
// and night_end returns, rather than from an on_complete callback —
// unlike the cooperative backend, see coop.go.
func (e *Engine) runThreaded() {
	n := len(e.agents)
	var stop atomic.Bool

	dayStart := barrier.NewThreadedBarrier(n+1, nil)
	dayEnd := barrier.NewThreadedBarrier(n+1, nil)
	nightStart := barrier.NewThreadedBarrier(n+1, nil)
	nightEnd := barrier.NewThreadedBarrier(n+1, nil)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range e.agents {
		go e.agentTaskThreaded(i, &stop, dayStart, dayEnd, nightStart, nightEnd, &wg)
	}

	for {
		e.mod.BeginDay()
		dayStart.Arrive()
		dayEnd.Arrive()
		e.mod.ResolveDayLynch(e)

		if e.state.Winner = e.mod.EvaluateWinner(); e.state.Winner != domain.OutcomeNone {
			e.state.GameOver = true
			stop.Store(true)
			dayStart.ArriveAndDrop()
			dayEnd.ArriveAndDrop()
			nightStart.ArriveAndDrop()
			nightEnd.ArriveAndDrop()
			break
		}

		nightStart.Arrive()
		nightEnd.Arrive()
		e.mod.ResolveNight()

		if e.state.Winner = e.mod.EvaluateWinner(); e.state.Winner != domain.OutcomeNone {
			e.state.GameOver = true
			stop.Store(true)
			dayStart.ArriveAndDrop()
			dayEnd.ArriveAndDrop()
			nightStart.ArriveAndDrop()
			nightEnd.ArriveAndDrop()
			break
		}
		e.state.Round++
	}

	wg.Wait()
}

// agentTaskThreaded is the per-agent goroutine loop: it mirrors the engine's
// round structure exactly, submitting exactly one day vote and one night
// action per round it is alive for.
func (e *Engine) agentTaskThreaded(i int, stop *atomic.Bool, dayStart, dayEnd, nightStart, nightEnd *barrier.ThreadedBarrier, wg *sync.WaitGroup) {
	defer wg.Done()
	self := domain.PlayerId(i)
	agent := e.agents[i]
	ctx := e.contextFor(i)

	for {
		dayStart.Arrive()
		if stop.Load() {
			return
		}
		if e.state.IsAlive(self) {
			agent.OnDay(ctx)
			vote := e.sanitizeVote(i, agent.VoteDay(ctx))
			e.mod.SubmitDayVote(self, vote)
		}
		dayEnd.Arrive()
		if stop.Load() {
			return
		}

		nightStart.Arrive()
		if stop.Load() {
			return
		}
		if e.state.IsAlive(self) {
			agent.OnNight(ctx)
		}
		nightEnd.Arrive()
		if stop.Load() {
			return
		}
	}
}
