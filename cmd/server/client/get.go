package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokemon-explorer/internal/entities"
	"github.com/KirkDiggler/pokemon-explorer/internal/views"
)

var getCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show the details of one Pokemon",
	Long:  `Show the stats, abilities and moves of a Pokemon by its numeric id.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid id %q: must be a number", args[0])
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	var pokemon entities.Pokemon
	body, err := getJSON(ctx, "/api/pokemon/"+strconv.Itoa(id), nil, &pokemon)
	if err != nil {
		return fmt.Errorf("failed to get pokemon %d: %w", id, err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		_, err := fmt.Fprintln(out, string(body))
		return err
	}

	detail := views.NewDetail(&pokemon, views.DefaultSpriteBaseURL)

	fmt.Fprintf(out, "%s (#%d)\n", detail.DisplayName, detail.ID)
	for _, t := range detail.Types {
		fmt.Fprintf(out, "  [%s]", t)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Height: %s m  Weight: %s kg\n", detail.Height, detail.Weight)

	fmt.Fprintf(out, "\nStats:\n")
	for _, s := range detail.Stats {
		fmt.Fprintf(out, "  %-16s %3d\n", s.Label, s.Value)
	}

	fmt.Fprintf(out, "\nAbilities:\n")
	for _, a := range detail.Abilities {
		if a.Hidden {
			fmt.Fprintf(out, "  - %s (Hidden)\n", a.Name)
			continue
		}
		fmt.Fprintf(out, "  - %s\n", a.Name)
	}

	fmt.Fprintf(out, "\nMoves:\n")
	for _, m := range detail.Moves.Shown {
		fmt.Fprintf(out, "  - %s\n", m)
	}
	if detail.Moves.Remaining > 0 {
		fmt.Fprintf(out, "  +%d more moves\n", detail.Moves.Remaining)
	}

	return nil
}
