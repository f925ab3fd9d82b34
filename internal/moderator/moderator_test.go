package moderator

import (
	"math/rand"
	"testing"

	"mafiaengine/internal/config"
	"mafiaengine/internal/domain"
)

func buildState(roles ...domain.Role) *domain.GameState {
	players := make([]*domain.Player, len(roles))
	for i, r := range roles {
		players[i] = domain.NewPlayer(domain.PlayerId(i), "", r)
	}
	return domain.NewGameState(players)
}

func newModerator(state *domain.GameState, tie config.TiePolicy) *Moderator {
	return New(state, rand.New(rand.NewSource(1)), tie, "", nil)
}

type stubPanel struct {
	victim domain.PlayerId
	ok     bool
}

func (p stubPanel) DecideExecution(leaders []domain.PlayerId) (domain.PlayerId, bool) {
	return p.victim, p.ok
}

func TestResolveDayLynch_SingleLeader(t *testing.T) {
	state := buildState(domain.RoleCitizen, domain.RoleMafia, domain.RoleDoctor, domain.RoleDetective, domain.RoleManiac)
	m := newModerator(state, config.TieNone)
	m.BeginDay()

	m.SubmitDayVote(0, 1)
	m.SubmitDayVote(2, 1)
	m.SubmitDayVote(3, 1)

	victim, ok := m.ResolveDayLynch(nil)
	if !ok || victim != 1 {
		t.Fatalf("got victim=%v ok=%v, expected victim=1 ok=true", victim, ok)
	}
	if state.IsAlive(1) {
		t.Error("lynched player should be dead")
	}
}

func TestResolveDayLynch_NoVotes(t *testing.T) {
	state := buildState(domain.RoleCitizen, domain.RoleMafia, domain.RoleDoctor, domain.RoleDetective, domain.RoleManiac)
	m := newModerator(state, config.TieNone)
	m.BeginDay()

	_, ok := m.ResolveDayLynch(nil)
	if ok {
		t.Error("expected no lynch when no votes were cast")
	}
}

func TestResolveDayLynch_TieNone_NoExecutioner_NoLynch(t *testing.T) {
	state := buildState(domain.RoleCitizen, domain.RoleCitizen, domain.RoleMafia, domain.RoleDoctor, domain.RoleDetective, domain.RoleManiac)
	m := newModerator(state, config.TieNone)
	m.BeginDay()

	m.SubmitDayVote(2, 0)
	m.SubmitDayVote(3, 1)

	_, ok := m.ResolveDayLynch(nil)
	if ok {
		t.Error("expected no lynch on an unresolved tie")
	}
	if !state.IsAlive(0) || !state.IsAlive(1) {
		t.Error("both tied leaders should survive an unresolved tie")
	}
}

func TestResolveDayLynch_TieNone_ExecutionerBreaksTie(t *testing.T) {
	state := buildState(domain.RoleCitizen, domain.RoleCitizen, domain.RoleMafia, domain.RoleDoctor, domain.RoleDetective, domain.RoleManiac)
	m := newModerator(state, config.TieNone)
	m.BeginDay()

	m.SubmitDayVote(2, 0)
	m.SubmitDayVote(3, 1)

	victim, ok := m.ResolveDayLynch(stubPanel{victim: 1, ok: true})
	if !ok || victim != 1 {
		t.Fatalf("got victim=%v ok=%v, expected victim=1 ok=true", victim, ok)
	}
}

func TestResolveDayLynch_TieRandom_ExactlyOneDeath(t *testing.T) {
	state := buildState(domain.RoleCitizen, domain.RoleCitizen, domain.RoleMafia, domain.RoleDoctor, domain.RoleDetective, domain.RoleManiac)
	m := newModerator(state, config.TieRandom)
	m.BeginDay()

	m.SubmitDayVote(2, 0)
	m.SubmitDayVote(3, 1)

	victim, ok := m.ResolveDayLynch(nil)
	if !ok {
		t.Fatal("expected a victim under TieRandom")
	}
	if victim != 0 && victim != 1 {
		t.Errorf("victim should be one of the tied leaders, got %v", victim)
	}
	deadCount := 0
	if !state.IsAlive(0) {
		deadCount++
	}
	if !state.IsAlive(1) {
		deadCount++
	}
	if deadCount != 1 {
		t.Errorf("expected exactly one death, got %d", deadCount)
	}
}

func TestResolveNight_HealCancelsMark(t *testing.T) {
	// 0=citizen(target/heal), 1=mafia, 2=doctor, 3=detective, 4=maniac
	state := buildState(domain.RoleCitizen, domain.RoleMafia, domain.RoleDoctor, domain.RoleDetective, domain.RoleManiac)
	m := newModerator(state, config.TieNone)
	m.BeginDay()

	m.MafiaVoteTarget(1, 0)
	m.SetDoctorHeal(2, 0)

	dead := m.ResolveNight()
	if len(dead) != 0 {
		t.Errorf("expected no deaths, got %v", dead)
	}
	if !state.IsAlive(0) {
		t.Error("healed target should survive")
	}
}

func TestResolveNight_ConcurrentKillsAllDistinct(t *testing.T) {
	// 0=mafia target, 1=detective-shot target, 2=maniac target, 3=mafia, 4=doctor, 5=detective, 6=maniac
	state := buildState(
		domain.RoleCitizen, domain.RoleCitizen, domain.RoleCitizen,
		domain.RoleMafia, domain.RoleDoctor, domain.RoleDetective, domain.RoleManiac,
	)
	m := newModerator(state, config.TieNone)
	m.BeginDay()

	m.MafiaVoteTarget(3, 0)
	m.SetDetectiveShot(5, 1)
	m.SetManiacTarget(6, 2)

	dead := m.ResolveNight()
	if len(dead) != 3 {
		t.Fatalf("expected 3 deaths, got %d: %v", len(dead), dead)
	}
	for _, id := range []domain.PlayerId{0, 1, 2} {
		if state.IsAlive(id) {
			t.Errorf("player %d should be dead", id)
		}
	}
}

func TestResolveNight_JournalistSameTeam(t *testing.T) {
	state := buildState(
		domain.RoleJournalist, domain.RoleCitizen, domain.RoleCitizen,
		domain.RoleMafia, domain.RoleDoctor, domain.RoleDetective, domain.RoleManiac,
	)
	m := newModerator(state, config.TieNone)
	m.BeginDay()

	m.SetJournalistCompare(0, 1, 2)

	dead := m.ResolveNight()
	if len(dead) != 0 {
		t.Errorf("journalist query alone should cause no deaths, got %v", dead)
	}
	if !state.IsAlive(1) || !state.IsAlive(2) {
		t.Error("journalist targets should be unaffected")
	}
}

func TestEvaluateWinner(t *testing.T) {
	tests := []struct {
		name     string
		roles    []domain.Role
		kill     []domain.PlayerId
		expected domain.Outcome
	}{
		{
			name:     "town wins when mafia and maniac are gone",
			roles:    []domain.Role{domain.RoleCitizen, domain.RoleMafia, domain.RoleManiac},
			kill:     []domain.PlayerId{1, 2},
			expected: domain.OutcomeTown,
		},
		{
			name:     "maniac wins heads-up against last townsperson",
			roles:    []domain.Role{domain.RoleCitizen, domain.RoleMafia, domain.RoleManiac},
			kill:     []domain.PlayerId{1},
			expected: domain.OutcomeManiac,
		},
		{
			name:     "mafia wins when it outnumbers the rest",
			roles:    []domain.Role{domain.RoleCitizen, domain.RoleMafia, domain.RoleMafia},
			kill:     nil,
			expected: domain.OutcomeMafia,
		},
		{
			name:     "game continues",
			roles:    []domain.Role{domain.RoleCitizen, domain.RoleCitizen, domain.RoleMafia},
			kill:     nil,
			expected: domain.OutcomeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := buildState(tt.roles...)
			for _, id := range tt.kill {
				state.Kill(id)
			}
			m := newModerator(state, config.TieNone)
			if got := m.EvaluateWinner(); got != tt.expected {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
		})
	}
}
