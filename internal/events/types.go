// Package events holds the typed journal lines a round produces. Each event
// is a small struct carrying just the fields needed to render its line; the
// payloads are a closed set of round facts, and Render produces the
// human-readable round-file prose that the moderator appends to the
// journal.
package events

import "fmt"

// PlayerRef is the minimal identity needed to render a journal line: the
// 1-based seat number shown to readers and the display name.
type PlayerRef struct {
	Seat int
	Name string
}

func (p PlayerRef) tag() string {
	return fmt.Sprintf("#%d %s", p.Seat, p.Name)
}

// Event is anything that can render itself as one (or more) round-file
// lines, newline-separated, with no trailing newline.
type Event interface {
	Render() string
}

// RoundHeader opens a round file with the phase banner and the alive roster.
type RoundHeader struct {
	Round   int
	Phase   string // "Day" or "Night"
	Players []RosterEntry
}

// RosterEntry is one alive-player line under a RoundHeader.
type RosterEntry struct {
	Seat int
	Name string
	Role string
	Team string
}

func (e RoundHeader) Render() string {
	s := fmt.Sprintf("=== ROUND %d (%s) ===\nAlive at start of day:", e.Round, e.Phase)
	for _, p := range e.Players {
		s += fmt.Sprintf("\n  #%d %s | role=%s | team=%s", p.Seat, p.Name, p.Role, p.Team)
	}
	return s
}

// DayVoteCast records one day-vote submission.
type DayVoteCast struct {
	Voter  PlayerRef
	Target PlayerRef
}

func (e DayVoteCast) Render() string {
	return fmt.Sprintf("DAY: vote %s -> %s", e.Voter.tag(), e.Target.tag())
}

// DayLynchOutcome is a closed variant over every way the day vote can end.
type DayLynchOutcome struct {
	Kind   DayLynchKind
	Victim PlayerRef
	Role   string
}

type DayLynchKind int

const (
	DayLynchNone DayLynchKind = iota
	DayLynchTieNoLynch
	DayLynchVictim
	DayLynchExecutioner
	DayLynchTieRandom
)

func (e DayLynchOutcome) Render() string {
	switch e.Kind {
	case DayLynchNone:
		return "DAY: no lynch"
	case DayLynchTieNoLynch:
		return "DAY: tie -> no lynch"
	case DayLynchVictim:
		return fmt.Sprintf("DAY: lynch victim %s (%s)", e.Victim.tag(), e.Role)
	case DayLynchExecutioner:
		return fmt.Sprintf("DAY: executioner-lynch victim %s (%s)", e.Victim.tag(), e.Role)
	case DayLynchTieRandom:
		return fmt.Sprintf("DAY: tie -> victim chosen randomly %s (%s)", e.Victim.tag(), e.Role)
	default:
		return "DAY: no lynch"
	}
}

// NightMafiaVote records one mafia-vote submission.
type NightMafiaVote struct {
	Voter  PlayerRef
	Target PlayerRef
}

func (e NightMafiaVote) Render() string {
	return fmt.Sprintf("NIGHT: mafia-vote %s -> %s", e.Voter.tag(), e.Target.tag())
}

// NightMafiaTally reports the final per-target mafia vote counts.
type NightMafiaTally struct {
	Entries []TallyEntry
}

type TallyEntry struct {
	Target PlayerRef
	Count  int
}

func (e NightMafiaTally) Render() string {
	if len(e.Entries) == 0 {
		return "NIGHT: mafia-tally none"
	}
	s := "NIGHT: mafia-tally"
	for _, t := range e.Entries {
		s += fmt.Sprintf(" %s(%d)", t.Target.tag(), t.Count)
	}
	return s
}

// NightDetectiveShot records a confirmed detective shot target.
type NightDetectiveShot struct{ Target PlayerRef }

func (e NightDetectiveShot) Render() string {
	return fmt.Sprintf("NIGHT: detective-shot -> %s", e.Target.tag())
}

// NightDoctorHeal records the doctor's chosen heal target.
type NightDoctorHeal struct{ Target PlayerRef }

func (e NightDoctorHeal) Render() string {
	return fmt.Sprintf("NIGHT: doctor-heal %s", e.Target.tag())
}

// NightManiacTarget records the maniac's chosen kill target.
type NightManiacTarget struct{ Target PlayerRef }

func (e NightManiacTarget) Render() string {
	return fmt.Sprintf("NIGHT: maniac-target -> %s", e.Target.tag())
}

// NightJournalistCompare records a journalist query submission.
type NightJournalistCompare struct {
	Journalist PlayerRef
	A, B       PlayerRef
}

func (e NightJournalistCompare) Render() string {
	return fmt.Sprintf("NIGHT: journalist-compare by %s -> %s vs %s", e.Journalist.tag(), e.A.tag(), e.B.tag())
}

// NightMarkedBy records one source adding a target to the kill set.
type NightMarkedBy struct {
	Source MarkSource
	Target PlayerRef
}

type MarkSource int

const (
	MarkedByMafia MarkSource = iota
	MarkedByDetective
	MarkedByManiac
)

func (s MarkSource) String() string {
	switch s {
	case MarkedByMafia:
		return "mafia"
	case MarkedByDetective:
		return "detective"
	case MarkedByManiac:
		return "maniac"
	default:
		return "invalid"
	}
}

func (e NightMarkedBy) Render() string {
	return fmt.Sprintf("NIGHT: marked-by-%s %s", e.Source, e.Target.tag())
}

// NightHealCancels records the doctor's heal preventing a death.
type NightHealCancels struct{ Target PlayerRef }

func (e NightHealCancels) Render() string {
	return fmt.Sprintf("NIGHT: heal-cancels %s", e.Target.tag())
}

// NightJournalistResult records the resolved same/different-team verdict.
type NightJournalistResult struct {
	Journalist PlayerRef
	A, B       PlayerRef
	Same       bool
}

func (e NightJournalistResult) Render() string {
	verdict := "DIFFERENT"
	if e.Same {
		verdict = "SAME"
	}
	return fmt.Sprintf("NIGHT: journalist-result by %s -> %s vs %s : %s", e.Journalist.tag(), e.A.tag(), e.B.tag(), verdict)
}

// NightEavesdropperResult records every action that targeted the observed
// player that night, or "none".
type NightEavesdropperResult struct {
	Target     PlayerRef
	Observer   PlayerRef
	Activities []string
}

func (e NightEavesdropperResult) Render() string {
	body := "none"
	if len(e.Activities) > 0 {
		body = e.Activities[0]
		for _, a := range e.Activities[1:] {
			body += ", " + a
		}
	}
	return fmt.Sprintf("NIGHT: eavesdropper-result for %s by %s -> %s", e.Target.tag(), e.Observer.tag(), body)
}

// NightDeath records one player's death and the role it died holding.
type NightDeath struct {
	Victim PlayerRef
	Role   string
}

func (e NightDeath) Render() string {
	return fmt.Sprintf("NIGHT: death %s (%s)", e.Victim.tag(), e.Role)
}

// RoundFooter closes a round file.
type RoundFooter struct {
	Round          int
	NightCompleted bool
}

func (e RoundFooter) Render() string {
	if e.NightCompleted {
		return fmt.Sprintf("=== ROUND %d END (night completed) ===", e.Round)
	}
	return fmt.Sprintf("=== ROUND %d END (no night) ===", e.Round)
}

// InfoLine wraps a free-text diagnostic (e.g. "doctor has no valid heal
// target") as a journal-compatible event for moderator logging.
type InfoLine struct{ Text string }

func (e InfoLine) Render() string { return e.Text }
