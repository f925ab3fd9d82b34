package moderator

import (
	"sort"
	"strconv"

	"mafiaengine/internal/config"
	"mafiaengine/internal/domain"
	"mafiaengine/internal/events"
)

// ResolveDayLynch tallies the day's votes and applies the result.
// panel resolves a tie under TieNone; it may be nil if no
// Executioner could possibly be alive (e.g. executioner_count==0), in which
// case a tie under TieNone always ends in no lynch.
func (m *Moderator) ResolveDayLynch(panel ExecutionerPanel) (domain.PlayerId, bool) {
	m.mu.Lock()
	votes := make(map[domain.PlayerId]domain.PlayerId, len(m.dayVotes))
	for k, v := range m.dayVotes {
		votes[k] = v
	}
	m.mu.Unlock()

	tally := make(map[domain.PlayerId]int)
	for voter, target := range votes {
		if !m.state.IsAlive(voter) || !m.state.IsAlive(target) {
			continue
		}
		tally[target]++
	}

	maxVotes := 0
	for _, c := range tally {
		if c > maxVotes {
			maxVotes = c
		}
	}
	if maxVotes == 0 {
		m.appendJournal(events.DayLynchOutcome{Kind: events.DayLynchNone})
		return 0, false
	}

	leaders := make([]domain.PlayerId, 0)
	for id, c := range tally {
		if c == maxVotes {
			leaders = append(leaders, id)
		}
	}
	sort.Slice(leaders, func(i, j int) bool { return leaders[i] < leaders[j] })

	var victim domain.PlayerId
	var kind events.DayLynchKind

	if len(leaders) == 1 {
		victim = leaders[0]
		kind = events.DayLynchVictim
	} else {
		switch m.tie {
		case config.TieRandom:
			victim = leaders[m.rng.Intn(len(leaders))]
			kind = events.DayLynchTieRandom
		default: // TieNone
			if panel == nil {
				m.appendJournal(events.DayLynchOutcome{Kind: events.DayLynchTieNoLynch})
				return 0, false
			}
			chosen, ok := panel.DecideExecution(leaders)
			if !ok || !containsID(leaders, chosen) {
				m.appendJournal(events.DayLynchOutcome{Kind: events.DayLynchTieNoLynch})
				return 0, false
			}
			victim = chosen
			kind = events.DayLynchExecutioner
		}
	}

	role := m.state.Player(victim).Role.String()
	m.appendJournal(events.DayLynchOutcome{Kind: kind, Victim: m.ref(victim), Role: role})

	m.mu.Lock()
	if m.Stats.DiedAtRound[victim] == -1 {
		m.Stats.DiedAtRound[victim] = m.state.Round
	}
	m.mu.Unlock()
	m.state.Kill(victim)

	return victim, true
}

func containsID(ids []domain.PlayerId, id domain.PlayerId) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// ResolveNight snapshots and clears the night buffers, resolves the kill
// set, applies deaths, writes the round file, and returns every id that
// died this night, in id order.
func (m *Moderator) ResolveNight() []domain.PlayerId {
	m.mu.Lock()
	mafiaTally := make(map[domain.PlayerId]int, len(m.mafiaTally))
	for k, v := range m.mafiaTally {
		mafiaTally[k] = v
	}
	detectiveShot := m.detectiveShot
	doctorHeal := m.doctorHeal
	maniacTarget := m.maniacTarget
	journalistQueries := append([]journalistQuery(nil), m.journalistQueries...)
	eavesdropRequests := append([]eavesdropRequest(nil), m.eavesdropRequests...)

	m.mafiaTally = nil
	m.detectiveShot = nil
	m.doctorHeal = nil
	m.maniacTarget = nil
	m.journalistQueries = nil
	m.eavesdropRequests = nil
	m.mu.Unlock()

	// 1. Mafia target selection.
	maxTally := 0
	for _, c := range mafiaTally {
		if c > maxTally {
			maxTally = c
		}
	}
	var mafiaTarget *domain.PlayerId
	if maxTally > 0 {
		candidates := make([]domain.PlayerId, 0)
		for id, c := range mafiaTally {
			if c == maxTally && m.state.IsAlive(id) {
				candidates = append(candidates, id)
			}
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
		if len(candidates) > 0 {
			chosen := candidates[m.rng.Intn(len(candidates))]
			mafiaTarget = &chosen
		}
	}

	tallyIDs := make([]domain.PlayerId, 0, len(mafiaTally))
	for id := range mafiaTally {
		tallyIDs = append(tallyIDs, id)
	}
	sort.Slice(tallyIDs, func(i, j int) bool { return tallyIDs[i] < tallyIDs[j] })
	tallyEntries := make([]events.TallyEntry, 0, len(tallyIDs))
	for _, id := range tallyIDs {
		tallyEntries = append(tallyEntries, events.TallyEntry{Target: m.ref(id), Count: mafiaTally[id]})
	}
	m.appendJournal(events.NightMafiaTally{Entries: tallyEntries})

	// 2. Kill set.
	killSet := make(map[domain.PlayerId]bool)
	if mafiaTarget != nil {
		killSet[*mafiaTarget] = true
		m.appendJournal(events.NightMarkedBy{Source: events.MarkedByMafia, Target: m.ref(*mafiaTarget)})
	}
	if detectiveShot != nil && m.state.IsAlive(*detectiveShot) {
		killSet[*detectiveShot] = true
		m.appendJournal(events.NightMarkedBy{Source: events.MarkedByDetective, Target: m.ref(*detectiveShot)})
	}
	if maniacTarget != nil && m.state.IsAlive(*maniacTarget) {
		killSet[*maniacTarget] = true
		m.appendJournal(events.NightMarkedBy{Source: events.MarkedByManiac, Target: m.ref(*maniacTarget)})
	}

	// 3. Heal.
	if doctorHeal != nil && m.state.IsAlive(*doctorHeal) {
		delete(killSet, *doctorHeal)
		m.appendJournal(events.NightHealCancels{Target: m.ref(*doctorHeal)})
	}

	// 4. Journalist queries.
	for _, q := range journalistQueries {
		same := m.state.Player(q.a).Team == m.state.Player(q.b).Team
		m.appendJournal(events.NightJournalistResult{
			Journalist: m.ref(q.jid), A: m.ref(q.a), B: m.ref(q.b), Same: same,
		})
	}

	// 5. Eavesdropper queries.
	for _, r := range eavesdropRequests {
		var activities []string
		if c, ok := mafiaTally[r.target]; ok && c > 0 {
			activities = append(activities, fmtActivity("mafia", c))
		}
		if detectiveShot != nil && *detectiveShot == r.target {
			activities = append(activities, "det-shot")
		}
		if doctorHeal != nil && *doctorHeal == r.target {
			activities = append(activities, "doc-heal")
		}
		if maniacTarget != nil && *maniacTarget == r.target {
			activities = append(activities, "maniac")
		}
		m.appendJournal(events.NightEavesdropperResult{
			Target: m.ref(r.target), Observer: m.ref(r.eid), Activities: activities,
		})
	}

	// 6. Apply deaths, in id order.
	ids := make([]domain.PlayerId, 0, len(killSet))
	for id := range killSet {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	dead := make([]domain.PlayerId, 0, len(ids))
	for _, id := range ids {
		if !m.state.IsAlive(id) {
			continue
		}
		role := m.state.Player(id).Role.String()
		m.appendJournal(events.NightDeath{Victim: m.ref(id), Role: role})

		m.mu.Lock()
		if m.Stats.DiedAtRound[id] == -1 {
			m.Stats.DiedAtRound[id] = m.state.Round
		}
		m.mu.Unlock()

		m.state.Kill(id)
		dead = append(dead, id)
	}

	m.appendJournal(events.RoundFooter{Round: m.state.Round, NightCompleted: true})
	if err := m.WriteRoundFile(); err != nil {
		m.Info("failed to write round file: %v", err)
	}

	return dead
}

func fmtActivity(kind string, count int) string {
	return kind + "(" + strconv.Itoa(count) + ")"
}

func (m *Moderator) appendJournal(e events.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.journal != nil {
		m.journal.Append(e)
	}
}

// EvaluateWinner applies the priority-ordered termination rule. It never
// returns without a value (OutcomeNone included): callers treat OutcomeNone
// as "continue".
func (m *Moderator) EvaluateWinner() domain.Outcome {
	town, mafia, maniac := m.state.CountsByTeam()

	switch {
	case mafia == 0 && maniac == 0:
		return domain.OutcomeTown
	case mafia == 0 && maniac == 1 && town == 1:
		return domain.OutcomeManiac
	case mafia > 0 && mafia >= town+maniac:
		return domain.OutcomeMafia
	default:
		return domain.OutcomeNone
	}
}
