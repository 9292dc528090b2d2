package observer

import (
	"github.com/rs/zerolog"

	"fish/game"
)

// Logger is an Observer that writes one structured log line per
// event.
type Logger struct {
	log zerolog.Logger
}

// NewLogger builds a logging observer on top of log.
func NewLogger(log zerolog.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Register(state *game.GameState) error {
	l.log.Info().Int("players", len(state.Players)).Msg("registered to match")
	l.log.Debug().Msg("\n" + state.Board.String())
	return nil
}

func (l *Logger) PenguinPlacement(color game.PlayerColor, pos game.Position) error {
	l.log.Info().
		Stringer("player", color).
		Int("row", pos.Row).
		Int("col", pos.Col).
		Msg("penguin placed")
	return nil
}

func (l *Logger) TurnAction(color game.PlayerColor, action game.Action) error {
	l.log.Info().
		Stringer("player", color).
		Stringer("action", action).
		Msg("turn taken")
	return nil
}

func (l *Logger) Disqualify(color game.PlayerColor) error {
	l.log.Warn().Stringer("player", color).Msg("player disqualified")
	return nil
}

func (l *Logger) EndOfGame(result MatchResult) error {
	winners := make([]string, len(result.Winners))
	for i, c := range result.Winners {
		winners[i] = c.String()
	}
	l.log.Info().
		Strs("winners", winners).
		Int("losers", len(result.Losers)).
		Int("failed", len(result.Failed)).
		Int("cheaters", len(result.Cheaters)).
		Msg("game over")
	return nil
}
