// Package referee runs one full match of Fish: it drives the game's
// phases, calls into untrusted agents under strict time bounds,
// validates every response against the rules, disqualifies
// misbehaving agents, fans events out to observers, and produces the
// final ranked result.
package referee

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fish/game"
	"fish/meta"
	"fish/observer"
	"fish/player"
)

// Timeouts are the per-call budgets for agent and observer
// interaction. These are the referee's only tunables.
type Timeouts struct {
	ColorAssignment time.Duration
	Placement       time.Duration
	Turn            time.Duration
	Disqualify      time.Duration
	Observer        time.Duration
}

// DefaultTimeouts returns the standard budgets from meta.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		ColorAssignment: meta.COLOR_TIMEOUT,
		Placement:       meta.PLACEMENT_TIMEOUT,
		Turn:            meta.TURN_TIMEOUT,
		Disqualify:      meta.DISQUALIFY_TIMEOUT,
		Observer:        meta.OBSERVER_TIMEOUT,
	}
}

// Referee arbitrates a single match. All mutable state belongs to the
// instance and is touched only by the goroutine driving RunMatch;
// concurrent use is not supported. The instance is single-use.
type Referee struct {
	id       uuid.UUID
	log      zerolog.Logger
	timeouts Timeouts

	state     *game.GameState
	agents    map[game.PlayerColor]player.Player
	failed    []game.PlayerColor
	cheaters  []game.PlayerColor
	observers []observer.Observer
	started   bool
}

// Option configures a Referee.
type Option func(*Referee)

// WithTimeouts overrides the default call budgets.
func WithTimeouts(t Timeouts) Option {
	return func(r *Referee) {
		r.timeouts = t
	}
}

// WithLogger replaces the referee's logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Referee) {
		r.log = logger
	}
}

// WithObservers registers observers before the match starts.
func WithObservers(observers ...observer.Observer) Option {
	return func(r *Referee) {
		r.observers = append(r.observers, observers...)
	}
}

// New builds a referee ready to run one match.
func New(options ...Option) *Referee {
	id := uuid.New()
	r := &Referee{
		id:       id,
		log:      log.With().Str("match", id.String()).Logger(),
		timeouts: DefaultTimeouts(),
		agents:   map[game.PlayerColor]player.Player{},
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// AddObserver registers an observer. If a match is in progress the
// observer synchronously receives a Register event with the current
// state; an observer that fails that delivery is not kept.
func (r *Referee) AddObserver(o observer.Observer) {
	if r.state != nil {
		state := r.state.Copy()
		if !r.deliver(o, func(o observer.Observer) error { return o.Register(state) }) {
			r.log.Warn().Msg("dropping observer: registration delivery failed")
			return
		}
	}
	r.observers = append(r.observers, o)
}

// RunMatch drives one match between the given agents on a board built
// from config and returns the ranked result. The first agent plays
// Red, the second White, and so on. An error return means the input
// was rejected before any agent was contacted, or a referee invariant
// broke mid-match.
func (r *Referee) RunMatch(players []player.Player, config game.BoardConfig) (GameResult, error) {
	if r.started {
		return GameResult{}, fmt.Errorf("referee is single-use: match already run")
	}
	r.started = true

	if len(players) < meta.MIN_PLAYERS || len(players) > meta.MAX_PLAYERS {
		return GameResult{}, fmt.Errorf("need between %d and %d players, got %d",
			meta.MIN_PLAYERS, meta.MAX_PLAYERS, len(players))
	}
	board, err := game.NewBoard(config)
	if err != nil {
		return GameResult{}, fmt.Errorf("board config: %w", err)
	}
	needed := (meta.PENGUIN_BASE - len(players)) * len(players)
	if board.TileCount() < needed {
		return GameResult{}, fmt.Errorf("board has %d usable tiles, need %d for penguin placement",
			board.TileCount(), needed)
	}

	r.log.Info().Int("players", len(players)).Msg("match starting")

	colors := r.assignColors(players)
	if len(colors) == 0 {
		r.log.Warn().Msg("all agents removed during color assignment")
		return r.finish()
	}

	state, err := game.NewGameState(board, colors)
	if err != nil {
		return GameResult{}, err
	}
	r.state = state
	r.emit(func(o observer.Observer) error { return o.Register(state.Copy()) })

	// The quota is frozen at phase entry: agents removed during
	// placement do not change it.
	quota := meta.PENGUIN_BASE - len(r.state.Players)
	if err := r.runPlacement(quota); err != nil {
		return GameResult{}, err
	}
	if len(r.state.Players) > 0 {
		if err := r.runTurns(); err != nil {
			return GameResult{}, err
		}
	}
	return r.finish()
}

// assignColors runs phase 1. Agents that fail the call are recorded
// as failed and never seated.
func (r *Referee) assignColors(players []player.Player) []game.PlayerColor {
	var colors []game.PlayerColor
	for i, agent := range players {
		color := game.ColorOrder[i]
		r.agents[color] = agent
		_, err := call(r.timeouts.ColorAssignment, func() (struct{}, error) {
			return struct{}{}, agent.AssignColor(color)
		})
		if err != nil {
			r.log.Warn().Stringer("player", color).Err(err).Msg("agent failed color assignment")
			r.failed = append(r.failed, color)
			r.emit(func(o observer.Observer) error { return o.Disqualify(color) })
			r.informDisqualified(color)
			continue
		}
		colors = append(colors, color)
	}
	return colors
}

// runPlacement runs phase 2: each seated player places quota penguins
// in rotation. Any unusable response is a failure; placement offers
// no way to tell a cheat from a crash.
func (r *Referee) runPlacement(quota int) error {
	placed := map[game.PlayerColor]int{}
	for len(r.state.Players) > 0 {
		done := true
		for _, p := range r.state.Players {
			if placed[p.Color] < quota {
				done = false
				break
			}
		}
		if done {
			break
		}

		current := r.state.CurrentPlayer()
		if placed[current.Color] >= quota {
			r.state = r.state.RotateToNextPlayer()
			continue
		}
		agent, ok := r.agents[current.Color]
		if !ok {
			return fmt.Errorf("no agent seated for color %s", current.Color)
		}

		snapshot := r.state.Copy()
		pos, err := call(r.timeouts.Placement, func() (game.Position, error) {
			return agent.PlacePenguin(snapshot)
		})
		if err != nil {
			r.disqualifyCurrent(false, err)
			continue
		}
		next, err := r.state.PlacePenguin(current.Color, pos)
		if err != nil {
			r.disqualifyCurrent(false, err)
			continue
		}
		r.state = next
		placed[current.Color]++
		r.emit(func(o observer.Observer) error { return o.PenguinPlacement(current.Color, pos) })
		r.state = r.state.RotateToNextPlayer()
	}
	return nil
}

// runTurns runs phase 3 over a lazy game tree until it is terminal or
// every player has been removed.
func (r *Referee) runTurns() error {
	tree := game.NewGameTree(r.state)
	for len(r.state.Players) > 0 {
		children := tree.Children()
		if len(children) == 0 {
			break
		}

		current := r.state.CurrentPlayer()
		if children[0].Action == game.Skip {
			tree = children[0].Tree
			r.state = tree.State
			r.emit(func(o observer.Observer) error { return o.TurnAction(current.Color, game.Skip) })
			continue
		}

		agent, ok := r.agents[current.Color]
		if !ok {
			return fmt.Errorf("no agent seated for color %s", current.Color)
		}

		snapshot := game.NewGameTree(r.state.Copy())
		action, err := call(r.timeouts.Turn, func() (game.Action, error) {
			return agent.TakeTurn(snapshot)
		})
		if err != nil {
			r.disqualifyCurrent(false, err)
			tree = game.NewGameTree(r.state)
			continue
		}
		next, legal := tree.Find(action)
		if !legal {
			r.disqualifyCurrent(true, fmt.Errorf("action %s is not among the legal children", action))
			tree = game.NewGameTree(r.state)
			continue
		}
		tree = next
		r.state = tree.State
		r.emit(func(o observer.Observer) error { return o.TurnAction(current.Color, action) })
	}
	return nil
}

// disqualifyCurrent removes the current player from the match as a
// cheater or a failure, tells the observers, and notifies the agent.
func (r *Referee) disqualifyCurrent(cheat bool, reason error) {
	color := r.state.CurrentPlayer().Color
	if cheat {
		r.cheaters = append(r.cheaters, color)
	} else {
		r.failed = append(r.failed, color)
	}
	r.log.Warn().
		Stringer("player", color).
		Bool("cheat", cheat).
		Err(reason).
		Msg("disqualifying player")
	r.emit(func(o observer.Observer) error { return o.Disqualify(color) })
	r.state = r.state.RemoveCurrentPlayer()
	r.informDisqualified(color)
}

// informDisqualified sends the one-way notification. The outcome is
// ignored: the agent is already out of the match.
func (r *Referee) informDisqualified(color game.PlayerColor) {
	agent, ok := r.agents[color]
	if !ok {
		return
	}
	_, err := call(r.timeouts.Disqualify, func() (struct{}, error) {
		return struct{}{}, agent.InformDisqualified()
	})
	if err != nil {
		r.log.Debug().Stringer("player", color).Err(err).Msg("disqualified agent did not acknowledge")
	}
}

// finish runs phase 4: compute the ranked result, emit the final
// event, and return.
func (r *Referee) finish() (GameResult, error) {
	var result GameResult
	var summary observer.MatchResult

	if r.state != nil && len(r.state.Players) > 0 {
		maxScore := r.state.Players[0].Score
		for _, p := range r.state.Players[1:] {
			if p.Score > maxScore {
				maxScore = p.Score
			}
		}
		for _, p := range r.state.Players {
			agent, ok := r.agents[p.Color]
			if !ok {
				return GameResult{}, fmt.Errorf("no agent seated for color %s", p.Color)
			}
			if p.Score == maxScore {
				result.Winners = append(result.Winners, agent)
				summary.Winners = append(summary.Winners, p.Color)
			} else {
				result.Losers = append(result.Losers, agent)
				summary.Losers = append(summary.Losers, p.Color)
			}
		}
	}
	for _, color := range r.failed {
		result.Failed = append(result.Failed, r.agents[color])
	}
	for _, color := range r.cheaters {
		result.Cheaters = append(result.Cheaters, r.agents[color])
	}
	summary.Failed = append(summary.Failed, r.failed...)
	summary.Cheaters = append(summary.Cheaters, r.cheaters...)

	r.emit(func(o observer.Observer) error { return o.EndOfGame(summary) })
	r.log.Info().
		Int("winners", len(result.Winners)).
		Int("losers", len(result.Losers)).
		Int("failed", len(result.Failed)).
		Int("cheaters", len(result.Cheaters)).
		Msg("match over")
	return result, nil
}

// emit delivers one event to every observer in registration order,
// dropping the ones that fail. Observer failures never affect match
// state.
func (r *Referee) emit(event func(observer.Observer) error) {
	kept := r.observers[:0]
	for _, o := range r.observers {
		if r.deliver(o, event) {
			kept = append(kept, o)
		} else {
			r.log.Warn().Msg("dropping observer: delivery failed or timed out")
		}
	}
	r.observers = kept
}

func (r *Referee) deliver(o observer.Observer, event func(observer.Observer) error) bool {
	_, err := call(r.timeouts.Observer, func() (struct{}, error) {
		return struct{}{}, event(o)
	})
	return err == nil
}
