// Package moderator implements the single arbiter that collects every
// agent's intent for a phase, resolves them deterministically, mutates the
// shared game state, and journals everything to round files. Submissions
// play the role of commands, and the journal/kill-set mutations they
// produce at resolution time play the role of effects, but the two are
// joined by a plain mutex-guarded struct rather than an event channel,
// since there is exactly one arbiter and it runs in process.
package moderator

import (
	"fmt"
	"math/rand"
	"sync"

	"mafiaengine/internal/config"
	"mafiaengine/internal/domain"
	"mafiaengine/internal/events"
	"mafiaengine/internal/logging"
)

// ExecutionerPanel lets the moderator ask every alive Executioner, in
// PlayerId order, whether it wants to break a day-vote tie, without the
// moderator package importing the role catalogue. The engine implements
// this by walking its own agent list.
type ExecutionerPanel interface {
	DecideExecution(leaders []domain.PlayerId) (domain.PlayerId, bool)
}

// Stats holds the per-player accumulators the summary file reports.
type Stats struct {
	VotesGiven    []int
	VotesReceived []int
	MafiaVotes    []int
	DetShots      []int
	DocHeals      []int
	ManiacTargets []int
	DiedAtRound   []int // -1 while alive
}

func newStats(n int) *Stats {
	s := &Stats{
		VotesGiven:    make([]int, n),
		VotesReceived: make([]int, n),
		MafiaVotes:    make([]int, n),
		DetShots:      make([]int, n),
		DocHeals:      make([]int, n),
		ManiacTargets: make([]int, n),
		DiedAtRound:   make([]int, n),
	}
	for i := range s.DiedAtRound {
		s.DiedAtRound[i] = -1
	}
	return s
}

type journalistQuery struct {
	jid, a, b domain.PlayerId
}

type eavesdropRequest struct {
	eid, target domain.PlayerId
}

// Moderator is the single authority over intent buffers, world mutation and
// round journalling. All exported mutating methods are safe for concurrent
// use by agent goroutines in the threaded backend.
type Moderator struct {
	mu sync.Mutex

	state   *domain.GameState
	rng     *rand.Rand
	tie     config.TiePolicy
	logsDir string
	sink    *logging.Sink

	dayVotes   map[domain.PlayerId]domain.PlayerId
	votedToday map[domain.PlayerId]bool

	mafiaTally        map[domain.PlayerId]int
	detectiveShot     *domain.PlayerId
	doctorHeal        *domain.PlayerId
	maniacTarget      *domain.PlayerId
	journalistQueries []journalistQuery
	eavesdropRequests []eavesdropRequest

	journal     *events.Journal
	roundWritten bool

	Stats *Stats
}

// New builds a Moderator bound to state. rng is the moderator's own stream,
// distinct from any agent's.
func New(state *domain.GameState, rng *rand.Rand, tie config.TiePolicy, logsDir string, sink *logging.Sink) *Moderator {
	return &Moderator{
		state:   state,
		rng:     rng,
		tie:     tie,
		logsDir: logsDir,
		sink:    sink,
		Stats:   newStats(state.N()),
	}
}

func (m *Moderator) ref(id domain.PlayerId) events.PlayerRef {
	p := m.state.Player(id)
	return events.PlayerRef{Seat: int(id) + 1, Name: p.DisplayName}
}

// valid reports whether id names a live player in range.
func (m *Moderator) valid(id domain.PlayerId) bool {
	return m.state.IsAlive(id)
}

// BeginDay opens a new round: clears the day buffers, starts a fresh
// journal, and writes the alive-roster header. Night buffers are left alone
// here; ResolveNight clears them when it takes its snapshot.
func (m *Moderator) BeginDay() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dayVotes = make(map[domain.PlayerId]domain.PlayerId)
	m.votedToday = make(map[domain.PlayerId]bool)
	m.journal = events.NewJournal()
	m.roundWritten = false

	roster := make([]events.RosterEntry, 0, len(m.state.AlivePlayers()))
	for _, p := range m.state.AlivePlayers() {
		roster = append(roster, events.RosterEntry{
			Seat: int(p.ID) + 1,
			Name: p.DisplayName,
			Role: p.Role.String(),
			Team: p.Team.String(),
		})
	}
	m.journal.Append(events.RoundHeader{Round: m.state.Round, Phase: "Day", Players: roster})
}

// SubmitDayVote records voter's latest vote for target. Last-vote-wins.
func (m *Moderator) SubmitDayVote(voter, target domain.PlayerId) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.valid(voter) || !m.valid(target) || voter == target {
		return
	}
	m.dayVotes[voter] = target
	m.votedToday[voter] = true
	m.Stats.VotesGiven[voter]++
	m.Stats.VotesReceived[target]++
	m.journal.Append(events.DayVoteCast{Voter: m.ref(voter), Target: m.ref(target)})
}

// MafiaVoteTarget records one mafia vote. Every submission increments the
// tally and the mafia-vote statistic, even if the same voter changes their
// mind mid-phase — preserved intentionally, see DESIGN.md.
func (m *Moderator) MafiaVoteTarget(voter, target domain.PlayerId) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.valid(voter) || !m.valid(target) || voter == target {
		return
	}
	p := m.state.Player(voter)
	if p.Role != domain.RoleMafia {
		return
	}
	if m.mafiaTally == nil {
		m.mafiaTally = make(map[domain.PlayerId]int)
	}
	m.mafiaTally[target]++
	m.Stats.MafiaVotes[voter]++
	m.journal.Append(events.NightMafiaVote{Voter: m.ref(voter), Target: m.ref(target)})
}

// SetDetectiveShot records the detective's decision to shoot target instead
// of investigating.
func (m *Moderator) SetDetectiveShot(actor, target domain.PlayerId) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.valid(actor) || !m.valid(target) || actor == target {
		return
	}
	t := target
	m.detectiveShot = &t
	m.Stats.DetShots[actor]++
	m.journal.Append(events.NightDetectiveShot{Target: m.ref(target)})
}

// SetDoctorHeal records the doctor's heal target. Self-targeting is
// permitted.
func (m *Moderator) SetDoctorHeal(actor, target domain.PlayerId) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.valid(actor) || !m.valid(target) {
		return
	}
	t := target
	m.doctorHeal = &t
	m.Stats.DocHeals[actor]++
	m.journal.Append(events.NightDoctorHeal{Target: m.ref(target)})
}

// SetManiacTarget records the maniac's kill target.
func (m *Moderator) SetManiacTarget(actor, target domain.PlayerId) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.valid(actor) || !m.valid(target) || actor == target {
		return
	}
	p := m.state.Player(actor)
	if p.Role != domain.RoleManiac {
		return
	}
	t := target
	m.maniacTarget = &t
	m.Stats.ManiacTargets[actor]++
	m.journal.Append(events.NightManiacTarget{Target: m.ref(target)})
}

// SetJournalistCompare records a journalist's query over a and b.
func (m *Moderator) SetJournalistCompare(jid, a, b domain.PlayerId) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.valid(jid) || !m.valid(a) || !m.valid(b) {
		return
	}
	if a == jid || b == jid || a == b {
		return
	}
	m.journalistQueries = append(m.journalistQueries, journalistQuery{jid, a, b})
	m.journal.Append(events.NightJournalistCompare{Journalist: m.ref(jid), A: m.ref(a), B: m.ref(b)})
}

// SetEavesdropperTarget records an eavesdropper's observation request.
func (m *Moderator) SetEavesdropperTarget(eid, target domain.PlayerId) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.valid(eid) || !m.valid(target) || eid == target {
		return
	}
	m.eavesdropRequests = append(m.eavesdropRequests, eavesdropRequest{eid, target})
}

// Info appends a free-text diagnostic line to the current round's journal,
// e.g. the doctor skipping a heal with no valid target.
func (m *Moderator) Info(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.journal != nil {
		m.journal.Append(events.InfoLine{Text: fmt.Sprintf(format, args...)})
	}
	if m.sink != nil {
		m.sink.Info(fmt.Sprintf(format, args...))
	}
}

// FactionOf is the Detective's investigate read: the target's team. Callers
// must already know target is a valid, alive id (the Detective agent checks
// this against its own world view before calling).
func (m *Moderator) FactionOf(target domain.PlayerId) domain.Team {
	return m.state.Player(target).Team
}
