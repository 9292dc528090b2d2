package referee

import (
	"fmt"
	"strings"

	"fish/player"
)

// GameResult ranks every agent that entered the match. Winners are
// the still-seated players with the maximum score, in seating order;
// losers are the remaining seated players. Failed and cheaters are in
// disqualification order.
type GameResult struct {
	Winners  []player.Player
	Losers   []player.Player
	Failed   []player.Player
	Cheaters []player.Player
}

// String renders a one-line ranked summary.
func (r GameResult) String() string {
	var sb strings.Builder
	sb.WriteString("winners: ")
	sb.WriteString(names(r.Winners))
	if len(r.Losers) > 0 {
		fmt.Fprintf(&sb, "; losers: %s", names(r.Losers))
	}
	if len(r.Failed) > 0 {
		fmt.Fprintf(&sb, "; failed: %s", names(r.Failed))
	}
	if len(r.Cheaters) > 0 {
		fmt.Fprintf(&sb, "; cheaters: %s", names(r.Cheaters))
	}
	return sb.String()
}

func names(players []player.Player) string {
	if len(players) == 0 {
		return "none"
	}
	parts := make([]string, len(players))
	for i, p := range players {
		parts[i] = p.Name()
	}
	return strings.Join(parts, ", ")
}
