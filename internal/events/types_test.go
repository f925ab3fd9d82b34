package events

import "testing"

func ref(seat int, name string) PlayerRef { return PlayerRef{Seat: seat, Name: name} }

func TestRoundHeader_Render(t *testing.T) {
	h := RoundHeader{
		Round: 3,
		Phase: "Day",
		Players: []RosterEntry{
			{Seat: 1, Name: "Ava", Role: "mafia", Team: "mafia"},
			{Seat: 2, Name: "Ben", Role: "citizen", Team: "town"},
		},
	}
	got := h.Render()
	want := "=== ROUND 3 (Day) ===\nAlive at start of day:" +
		"\n  #1 Ava | role=mafia | team=mafia" +
		"\n  #2 Ben | role=citizen | team=town"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDayLynchOutcome_Render(t *testing.T) {
	tests := []struct {
		name string
		ev   DayLynchOutcome
		want string
	}{
		{"none", DayLynchOutcome{Kind: DayLynchNone}, "DAY: no lynch"},
		{"tie no lynch", DayLynchOutcome{Kind: DayLynchTieNoLynch}, "DAY: tie -> no lynch"},
		{"victim", DayLynchOutcome{Kind: DayLynchVictim, Victim: ref(2, "Ben"), Role: "mafia"}, "DAY: lynch victim #2 Ben (mafia)"},
		{"executioner", DayLynchOutcome{Kind: DayLynchExecutioner, Victim: ref(3, "Cleo"), Role: "citizen"}, "DAY: executioner-lynch victim #3 Cleo (citizen)"},
		{"tie random", DayLynchOutcome{Kind: DayLynchTieRandom, Victim: ref(4, "Dax"), Role: "doctor"}, "DAY: tie -> victim chosen randomly #4 Dax (doctor)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.Render(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNightMafiaTally_Render(t *testing.T) {
	empty := NightMafiaTally{}
	if got := empty.Render(); got != "NIGHT: mafia-tally none" {
		t.Errorf("empty tally: got %q", got)
	}

	tally := NightMafiaTally{Entries: []TallyEntry{
		{Target: ref(1, "Ava"), Count: 2},
		{Target: ref(2, "Ben"), Count: 1},
	}}
	want := "NIGHT: mafia-tally #1 Ava(2) #2 Ben(1)"
	if got := tally.Render(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNightMarkedBy_RenderPerSource(t *testing.T) {
	tests := []struct {
		source MarkSource
		want   string
	}{
		{MarkedByMafia, "NIGHT: marked-by-mafia #1 Ava"},
		{MarkedByDetective, "NIGHT: marked-by-detective #1 Ava"},
		{MarkedByManiac, "NIGHT: marked-by-maniac #1 Ava"},
	}
	for _, tt := range tests {
		ev := NightMarkedBy{Source: tt.source, Target: ref(1, "Ava")}
		if got := ev.Render(); got != tt.want {
			t.Errorf("source %v: got %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestNightEavesdropperResult_Render(t *testing.T) {
	none := NightEavesdropperResult{Target: ref(1, "Ava"), Observer: ref(2, "Ben")}
	if got := none.Render(); got != "NIGHT: eavesdropper-result for #1 Ava by #2 Ben -> none" {
		t.Errorf("got %q", got)
	}

	multi := NightEavesdropperResult{
		Target: ref(1, "Ava"), Observer: ref(2, "Ben"),
		Activities: []string{"mafia(2)", "doc-heal"},
	}
	want := "NIGHT: eavesdropper-result for #1 Ava by #2 Ben -> mafia(2), doc-heal"
	if got := multi.Render(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRoundFooter_Render(t *testing.T) {
	completed := RoundFooter{Round: 5, NightCompleted: true}
	if got := completed.Render(); got != "=== ROUND 5 END (night completed) ===" {
		t.Errorf("got %q", got)
	}
	pending := RoundFooter{Round: 5, NightCompleted: false}
	if got := pending.Render(); got != "=== ROUND 5 END (no night) ===" {
		t.Errorf("got %q", got)
	}
}

func TestJournal_RenderJoinsWithNewlines(t *testing.T) {
	j := NewJournal()
	j.Append(InfoLine{Text: "first"})
	j.Append(InfoLine{Text: "second"})

	if j.Len() != 2 {
		t.Fatalf("got len %d, expected 2", j.Len())
	}
	if got, want := j.Render(), "first\nsecond"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
