// Package engine builds the agent vector from configuration and drives the
// round loop to completion on one of two interchangeable backends. It owns
// match state directly and orchestrates package moderator and package roles
// in process, with no message queue between construction and resolution:
// everything happens in one process, one match.
package engine

import (
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"sort"

	"github.com/xyproto/randomstring"

	"mafiaengine/internal/config"
	"mafiaengine/internal/domain"
	"mafiaengine/internal/human"
	"mafiaengine/internal/logging"
	"mafiaengine/internal/mafiaerr"
	"mafiaengine/internal/moderator"
	"mafiaengine/internal/names"
	"mafiaengine/internal/rng"
	"mafiaengine/internal/roles"
)

// matchIDLength is the length of the random suffix appended to each match's
// log directory name.
const matchIDLength = 8

// namePool is the built-in display-name pool handed to names.Generator.
// Names are cosmetic; the population must never be starved of one (see
// names.NewWrappingGenerator).
var namePool = []string{
	"Ava", "Ben", "Cleo", "Dax", "Eli", "Fay", "Gus", "Hana", "Ivo", "Jael",
	"Kai", "Lior", "Mira", "Nash", "Oda", "Priya", "Quin", "Rhea", "Sol", "Tova",
}

// Engine owns the match's agent vector and state and dispatches to either
// backend per cfg.Engine.
type Engine struct {
	cfg   *config.Config
	state *domain.GameState
	mod   *moderator.Moderator

	agents    []roles.Agent
	agentRNGs []*rand.Rand
	humanIdx  int // -1 if no human

	matchID string
	sink    *logging.Sink
}

// New builds an Engine: resolves the role distribution, shuffles a role
// bag with the global RNG, optionally designates a human seat, and
// constructs one agent plus one RNG stream per seat.
func New(cfg *config.Config, sink *logging.Sink, stdin io.Reader, stdout io.Writer) (*Engine, error) {
	dist, err := domain.RoleDistribution(cfg.NPlayers, cfg.KMafiaDiv, cfg.ExecutionerCount, cfg.JournalistCount, cfg.EavesdropperCount)
	if err != nil {
		return nil, mafiaerr.Config("role_distribution", err)
	}

	globalSeed := rng.ResolveGlobalSeed(cfg.Seed)
	globalRNG := rng.New(globalSeed)

	bag := make([]domain.Role, 0, cfg.NPlayers)
	for role, count := range dist {
		for i := 0; i < count; i++ {
			bag = append(bag, role)
		}
	}
	sort.Slice(bag, func(i, j int) bool { return bag[i] < bag[j] })
	globalRNG.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })

	humanIdx := -1
	if cfg.Human {
		humanIdx = globalRNG.Intn(len(bag))
	}

	gen, err := names.NewWrappingGenerator(namePool)
	if err != nil {
		return nil, mafiaerr.Invariant("name_generator", err)
	}

	players := make([]*domain.Player, len(bag))
	agents := make([]roles.Agent, len(bag))
	agentRNGs := make([]*rand.Rand, len(bag))

	for i, role := range bag {
		id := domain.PlayerId(i)
		name, nerr := gen.Next()
		if nerr != nil {
			return nil, mafiaerr.Invariant("name_generator", nerr)
		}
		players[i] = domain.NewPlayer(id, name, role)
		agentRNGs[i] = rng.New(rng.AgentSeed(globalSeed, i))

		if i == humanIdx {
			agents[i] = human.NewConsole(id, role, stdin, stdout)
			continue
		}
		agents[i] = newRoleAgent(id, role)
	}

	// Every match gets its own round-file directory, suffixed with a random
	// string, so concurrent or repeated invocations against the same
	// --logs-dir never clobber each other's round_<N>.txt files.
	matchID := randomstring.String(matchIDLength)
	matchLogsDir := filepath.Join(cfg.LogsDir, matchID)

	state := domain.NewGameState(players)
	moderatorRNG := rng.New(rng.AgentSeed(globalSeed, len(bag)))
	mod := moderator.New(state, moderatorRNG, cfg.Tie, matchLogsDir, sink)

	if sink != nil {
		sink.Info(fmt.Sprintf("match %s: %d players, seed=%d, logs_dir=%s", matchID, len(bag), globalSeed, matchLogsDir))
	}

	return &Engine{
		cfg:       cfg,
		state:     state,
		mod:       mod,
		agents:    agents,
		agentRNGs: agentRNGs,
		humanIdx:  humanIdx,
		matchID:   matchID,
		sink:      sink,
	}, nil
}

// newRoleAgent builds the AI agent for role, per the closed role catalogue.
func newRoleAgent(id domain.PlayerId, role domain.Role) roles.Agent {
	switch role {
	case domain.RoleMafia:
		return roles.NewMafia(id)
	case domain.RoleDetective:
		return roles.NewDetective(id)
	case domain.RoleDoctor:
		return roles.NewDoctor(id)
	case domain.RoleManiac:
		return roles.NewManiac(id)
	case domain.RoleExecutioner:
		return roles.NewExecutioner(id)
	case domain.RoleJournalist:
		return roles.NewJournalist(id)
	case domain.RoleEavesdropper:
		return roles.NewEavesdropper(id)
	default:
		return roles.NewCitizen(id)
	}
}

// Run dispatches to the configured backend and returns once the match has
// reached a terminal outcome and the summary file has been written.
func (e *Engine) Run() error {
	switch e.cfg.Engine {
	case config.BackendCoro:
		e.runCoop()
	default:
		e.runThreaded()
	}

	if err := e.mod.FinalizeRoundFileIfPending(); err != nil {
		if e.sink != nil {
			e.sink.Warn(fmt.Sprintf("finalize round file: %v", err))
		}
	}
	if err := e.mod.WriteSummaryFile(); err != nil {
		return mafiaerr.FileIO("write_summary_file", err)
	}
	return nil
}

// DecideExecution implements moderator.ExecutionerPanel: it asks every
// alive Executioner-capable agent, in PlayerId order, and returns the
// first one willing to decide.
func (e *Engine) DecideExecution(leaders []domain.PlayerId) (domain.PlayerId, bool) {
	for i, a := range e.agents {
		if !e.state.IsAlive(domain.PlayerId(i)) {
			continue
		}
		if a.Role() != domain.RoleExecutioner {
			continue
		}
		panel, ok := a.(roles.ExecutionerAgent)
		if !ok {
			continue
		}
		victim, decided := panel.DecideExecution(e.contextFor(i), leaders)
		if decided {
			return victim, true
		}
	}
	return 0, false
}

func (e *Engine) contextFor(i int) *roles.Context {
	return &roles.Context{State: e.state, Mod: e.mod, RNG: e.agentRNGs[i]}
}

// sanitizeVote maps an agent's proposed vote to a valid target: alive, not
// self. An invalid vote is replaced with a uniform choice among valid
// targets.
func (e *Engine) sanitizeVote(i int, vote domain.PlayerId) domain.PlayerId {
	self := domain.PlayerId(i)
	if vote != self && e.state.IsAlive(vote) {
		return vote
	}
	candidates := make([]domain.PlayerId, 0, e.state.N())
	for _, p := range e.state.AlivePlayers() {
		if p.ID != self {
			candidates = append(candidates, p.ID)
		}
	}
	if len(candidates) == 0 {
		return self
	}
	return candidates[e.agentRNGs[i].Intn(len(candidates))]
}
