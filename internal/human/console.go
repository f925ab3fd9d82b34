// Package human implements the interactive player: every AI decision point
// in package roles is replaced here with a console prompt, so a human can
// sit in any seat alongside the autonomous agents. It satisfies the same
// roles.Agent surface those agents do.
package human

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"mafiaengine/internal/domain"
	"mafiaengine/internal/roles"
)

// Console is a human-controlled agent reading integer choices from in and
// writing prompts to out. It satisfies roles.ExecutionerAgent structurally
// so it can fill any seat, but DecideExecution is only ever invoked by the
// caller when the seat's role is actually Executioner.
type Console struct {
	self   domain.PlayerId
	role   domain.Role
	in     *bufio.Scanner
	out    io.Writer
}

// NewConsole builds a human agent for seat id holding role, reading from in
// and writing prompts to out.
func NewConsole(id domain.PlayerId, role domain.Role, in io.Reader, out io.Writer) *Console {
	return &Console{self: id, role: role, in: bufio.NewScanner(in), out: out}
}

func (c *Console) ID() domain.PlayerId { return c.self }
func (c *Console) Role() domain.Role   { return c.role }
func (c *Console) OnDay(ctx *roles.Context) {}

// prompt lists candidates and reads an integer choice; 0 means abstain.
// Unparsable input, a choice outside candidates, or EOF is treated as
// abstain (returns false) without re-prompting, so a garbled console
// session can't hang the match indefinitely.
func (c *Console) prompt(question string, candidates []domain.PlayerId, allowAbstain bool) (domain.PlayerId, bool) {
	fmt.Fprintf(c.out, "%s\n", question)
	for _, id := range candidates {
		fmt.Fprintf(c.out, "  %d) seat #%d\n", int(id)+1, int(id)+1)
	}
	if allowAbstain {
		fmt.Fprintf(c.out, "  0) abstain\n")
	}
	fmt.Fprint(c.out, "> ")

	if !c.in.Scan() {
		return 0, false
	}
	choice, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
	if err != nil {
		return 0, false
	}
	if choice == 0 && allowAbstain {
		return 0, false
	}
	picked := domain.PlayerId(choice - 1)
	for _, id := range candidates {
		if id == picked {
			return picked, true
		}
	}
	return 0, false
}

// promptYesNo asks a yes/no question and reads "1" for yes, anything else
// (including unparsable input or EOF) for no.
func (c *Console) promptYesNo(question string) bool {
	fmt.Fprintf(c.out, "%s (1=yes, 0=no)\n> ", question)
	if !c.in.Scan() {
		return false
	}
	choice, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
	if err != nil {
		return false
	}
	return choice == 1
}

func (c *Console) VoteDay(ctx *roles.Context) domain.PlayerId {
	candidates := make([]domain.PlayerId, 0)
	for _, p := range ctx.State.AlivePlayers() {
		if p.ID != c.self {
			candidates = append(candidates, p.ID)
		}
	}
	id, ok := c.prompt("Cast your day vote:", candidates, false)
	if !ok {
		return c.self
	}
	return id
}

func (c *Console) OnNight(ctx *roles.Context) {
	candidates := make([]domain.PlayerId, 0)
	for _, p := range ctx.State.AlivePlayers() {
		if p.ID != c.self {
			candidates = append(candidates, p.ID)
		}
	}

	switch c.role {
	case domain.RoleMafia:
		if id, ok := c.prompt("Choose the mafia kill target:", candidates, false); ok {
			ctx.Mod.MafiaVoteTarget(c.self, id)
		}
	case domain.RoleDetective:
		if id, ok := c.prompt("Investigate or shoot — choose a target (shoot is asked next):", candidates, true); ok {
			if c.promptYesNo(fmt.Sprintf("Shoot seat #%d instead of investigating?", int(id)+1)) {
				ctx.Mod.SetDetectiveShot(c.self, id)
			} else if ctx.Mod.FactionOf(id) == domain.TeamMafia {
				fmt.Fprintf(c.out, "seat #%d is Mafia\n", int(id)+1)
			} else {
				fmt.Fprintf(c.out, "seat #%d is not Mafia\n", int(id)+1)
			}
		}
	case domain.RoleDoctor:
		all := make([]domain.PlayerId, 0)
		for _, p := range ctx.State.AlivePlayers() {
			all = append(all, p.ID)
		}
		if id, ok := c.prompt("Choose a heal target (self permitted):", all, false); ok {
			ctx.Mod.SetDoctorHeal(c.self, id)
		}
	case domain.RoleManiac:
		if id, ok := c.prompt("Choose your kill target:", candidates, false); ok {
			ctx.Mod.SetManiacTarget(c.self, id)
		}
	case domain.RoleJournalist:
		a, ok := c.prompt("Choose the first comparison target:", candidates, false)
		if !ok {
			return
		}
		rest := make([]domain.PlayerId, 0)
		for _, id := range candidates {
			if id != a {
				rest = append(rest, id)
			}
		}
		b, ok := c.prompt("Choose the second comparison target:", rest, false)
		if !ok {
			return
		}
		ctx.Mod.SetJournalistCompare(c.self, a, b)
	case domain.RoleEavesdropper:
		if id, ok := c.prompt("Choose who to eavesdrop on:", candidates, false); ok {
			ctx.Mod.SetEavesdropperTarget(c.self, id)
		}
	}
}

// DecideExecution is asked only on a day-vote tie under tie_policy=None.
func (c *Console) DecideExecution(ctx *roles.Context, leaders []domain.PlayerId) (domain.PlayerId, bool) {
	return c.prompt("The vote tied. Choose one leader to execute, or abstain:", leaders, true)
}

var _ roles.ExecutionerAgent = (*Console)(nil)
