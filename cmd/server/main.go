// Package main is the entry point for the explorer server and its client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokemon-explorer/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "pokemon-explorer",
	Short: "Pokemon Explorer web server",
	Long:  `Pokemon Explorer serves a searchable Pokemon catalog and per-Pokemon detail pages backed by PokeAPI.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
