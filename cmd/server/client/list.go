package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokemon-explorer/internal/handlers/web"
)

var (
	searchTerm string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Pokemon, optionally filtered by name",
	Long:  `List the catalog the home page shows. --search keeps names containing the term, ignoring case.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&searchTerm, "search", "", "Case-insensitive name filter")
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	query := url.Values{}
	if searchTerm != "" {
		query.Set("q", searchTerm)
	}

	var resp web.ListResponse
	body, err := getJSON(ctx, "/api/pokemon", query, &resp)
	if err != nil {
		return fmt.Errorf("failed to list pokemon: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		_, err := fmt.Fprintln(out, string(body))
		return err
	}

	if len(resp.Results) == 0 && resp.SearchTerm != "" {
		fmt.Fprintf(out, "No Pokemon found matching %q\n", resp.SearchTerm)
		return nil
	}

	fmt.Fprintf(out, "Showing %d of %d Pokemon:\n\n", len(resp.Results), resp.Total)
	for _, p := range resp.Results {
		fmt.Fprintf(out, "  #%-4d %s\n", p.ID, p.Name)
	}

	return nil
}
