// constants and calculations to build a role bag
package domain

import "fmt"

// RoleDistribution is a pure function: given a population size and the
// configured knobs, it returns how many of each role to build, or an error
// if the mandatory roles don't fit.
func RoleDistribution(n, kMafiaDiv, execCount, journCount, earsCount int) (map[Role]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("n_players must be >= 1, got %d", n)
	}
	div := kMafiaDiv
	if div < 3 {
		div = 3
	}
	mafia := n / div
	if mafia < 1 {
		mafia = 1
	}

	dist := map[Role]int{
		RoleMafia:     mafia,
		RoleDetective: 1,
		RoleDoctor:    1,
		RoleManiac:    1,
	}
	if execCount > 0 {
		dist[RoleExecutioner] = 1
	}
	if journCount > 0 {
		dist[RoleJournalist] = 1
	}
	if earsCount > 0 {
		dist[RoleEavesdropper] = 1
	}

	sum := 0
	for _, c := range dist {
		sum += c
	}
	if sum > n {
		return nil, fmt.Errorf("role counts (%d) exceed n_players (%d)", sum, n)
	}

	dist[RoleCitizen] = n - sum
	return dist, nil
}
