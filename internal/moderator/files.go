package moderator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"mafiaengine/internal/domain"
	"mafiaengine/internal/events"
)

const utf8BOM = "﻿"

// WriteRoundFile flushes the current round's journal to
// logs_dir/round_<R>.txt. Idempotent per round: a second call after the
// first succeeded is a no-op, satisfying "a round file is written exactly
// once per round index."
func (m *Moderator) WriteRoundFile() error {
	m.mu.Lock()
	if m.roundWritten || m.journal == nil {
		m.mu.Unlock()
		return nil
	}
	body := m.journal.Render()
	round := m.state.Round
	m.mu.Unlock()

	if err := os.MkdirAll(m.logsDir, 0o755); err != nil {
		return fmt.Errorf("create logs dir: %w", err)
	}
	path := filepath.Join(m.logsDir, fmt.Sprintf("round_%d.txt", round))
	if err := os.WriteFile(path, []byte(utf8BOM+body+"\n"), 0o644); err != nil {
		// A failed round-file write is logged and the round is still marked
		// written, so the engine never retries it.
		m.mu.Lock()
		m.roundWritten = true
		m.mu.Unlock()
		return fmt.Errorf("write round file: %w", err)
	}

	m.mu.Lock()
	m.roundWritten = true
	m.mu.Unlock()
	return nil
}

// FinalizeRoundFileIfPending is called at game-over if the terminal outcome
// was reached during Day, before a Night ever ran for this round: it appends
// the "(no night)" footer and flushes whatever the journal holds.
func (m *Moderator) FinalizeRoundFileIfPending() error {
	m.mu.Lock()
	pending := !m.roundWritten && m.journal != nil
	round := m.state.Round
	m.mu.Unlock()

	if !pending {
		return nil
	}
	m.appendJournal(events.RoundFooter{Round: round, NightCompleted: false})
	return m.WriteRoundFile()
}

// WriteSummaryFile emits the fixed-width per-player statistics table and
// overwrites logs_dir/summary.txt on every call.
func (m *Moderator) WriteSummaryFile() error {
	if err := os.MkdirAll(m.logsDir, 0o755); err != nil {
		return fmt.Errorf("create logs dir: %w", err)
	}

	body := utf8BOM + fmt.Sprintf("Winner: %s\n", m.state.Winner)
	body += fmt.Sprintf("%-4s %-16s %-12s %-8s %-8s %-11s %-10s %-9s %-10s %-8s %-8s %-13s\n",
		"#", "Name", "Role", "Team", "Status", "Died@Round", "VotesGiven", "VotesRecv", "MafiaVotes", "DetShots", "DocHeals", "ManiacTargets")

	ids := make([]domain.PlayerId, m.state.N())
	for i := range ids {
		ids[i] = domain.PlayerId(i)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		p := m.state.Player(id)
		status := "dead"
		if p.Alive {
			status = "alive"
		}
		died := "-"
		if m.Stats.DiedAtRound[id] != -1 {
			died = fmt.Sprintf("%d", m.Stats.DiedAtRound[id])
		}
		body += fmt.Sprintf("%-4d %-16s %-12s %-8s %-8s %-11s %-10d %-9d %-10d %-8d %-8d %-13d\n",
			int(id)+1, p.DisplayName, p.Role, p.Team, status, died,
			m.Stats.VotesGiven[id], m.Stats.VotesReceived[id], m.Stats.MafiaVotes[id],
			m.Stats.DetShots[id], m.Stats.DocHeals[id], m.Stats.ManiacTargets[id])
	}

	path := filepath.Join(m.logsDir, "summary.txt")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("write summary file: %w", err)
	}
	return nil
}
