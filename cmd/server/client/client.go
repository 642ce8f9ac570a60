// Package client provides commands that query a running explorer server
// through its JSON API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
	"github.com/KirkDiggler/pokemon-explorer/internal/handlers/web"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	jsonOutput bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Query a running Pokemon Explorer server",
	Long:  `Client commands call the JSON API of a running Pokemon Explorer server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8080", "Server base URL")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output the raw JSON response")

	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(getCmd)
}

// getJSON calls path on the server and decodes a successful body into out.
// Error bodies come back as *errors.Error carrying the server's code.
func getJSON(ctx context.Context, path string, query url.Values, out any) ([]byte, error) {
	target := strings.TrimSuffix(serverAddr, "/") + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp web.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Code == "" {
			return nil, errors.Newf(errors.CodeUnavailable, "server returned %s", resp.Status)
		}
		return nil, errors.New(errResp.Error.Code, errResp.Error.Message).
			WithMeta("kind", errResp.Error.Kind)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return body, nil
}
