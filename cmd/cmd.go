// Package cmd wires the fish command line: a demo surface for running
// matches between the in-house agents.
package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"fish/game"
	"fish/observer"
	"fish/player"
	"fish/referee"
)

// Root returns the fish root command.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "fish",
		Short: "Referee for the Fish board game",
		Long: heredoc.Doc(`
			fish runs full matches of the Fish board game: a trusted
			referee drives placement and movement phases, validates
			every action, disqualifies misbehaving agents, and ranks
			the players by harvested fish.
		`),
		SilenceUsage: true,
	}

	root.AddCommand(playCommand())
	return root
}

func playCommand() *cobra.Command {
	var (
		players int
		height  int
		width   int
		fish    int
		depth   int
		verbose bool
	)

	play := &cobra.Command{
		Use:   "play",
		Short: "Run one match between in-house agents",
		Long: heredoc.Doc(`
			Runs a single match between in-house agents, which place
			penguins with a row-major scan and pick moves with
			depth-bounded minimax, then prints the ranked result.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			agents := make([]player.Player, players)
			for i := range agents {
				agents[i] = player.NewInHouse(fmt.Sprintf("player-%d", i+1), depth)
			}

			options := []referee.Option{}
			if verbose {
				options = append(options, referee.WithObservers(observer.NewLogger(log.Logger)))
			}

			ref := referee.New(options...)
			result, err := ref.RunMatch(agents, game.BoardConfig{
				Height: height,
				Width:  width,
				Fish:   fish,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}

	play.Flags().IntVarP(&players, "players", "p", 2, "number of in-house agents (2-4)")
	play.Flags().IntVar(&height, "height", 6, "board height in rows")
	play.Flags().IntVar(&width, "width", 6, "board width in columns")
	play.Flags().IntVar(&fish, "fish", 2, "uniform fish count per tile")
	play.Flags().IntVarP(&depth, "depth", "d", 2, "minimax search depth")
	play.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every game event")

	return play
}
