// Package pokeapi is the client for the public Pokemon catalog API
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokemon-explorer/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/pokemon-explorer/internal/entities"
	"github.com/KirkDiggler/pokemon-explorer/internal/errors"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 root
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	// DefaultHTTPTimeout bounds a single upstream request
	DefaultHTTPTimeout = 30 * time.Second

	// ResourcePokemon is the path segment of the pokemon resource
	ResourcePokemon = "pokemon"

	tracerName = "github.com/KirkDiggler/pokemon-explorer/internal/clients/pokeapi"
)

// Client defines the interface for catalog API interactions
type Client interface {
	// ListPokemon fetches the first limit summaries, each with its id
	// derived from the detail URL
	ListPokemon(ctx context.Context, limit int) ([]*entities.PokemonSummary, error)

	// GetPokemon fetches the full record for a single pokemon
	GetPokemon(ctx context.Context, id int) (*entities.Pokemon, error)
}

// Config contains configuration options for the catalog client.
type Config struct {
	// BaseURL of the catalog API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateAbsoluteURL("BaseURL", cfg.BaseURL, vb)
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tracer     trace.Tracer
}

// New creates a new catalog client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid base url")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		baseURL:    baseURL,
		httpClient: httpClient,
		tracer:     otel.Tracer(tracerName),
	}, nil
}

func (c *client) ListPokemon(ctx context.Context, limit int) ([]*entities.PokemonSummary, error) {
	if limit <= 0 {
		return nil, errors.InvalidArgumentf("limit must be positive, got %d", limit)
	}

	ctx, span := c.tracer.Start(ctx, "pokeapi.ListPokemon",
		trace.WithAttributes(attribute.Int("pokemon.limit", limit)))
	defer span.End()

	endpoint := c.baseURL.JoinPath(ResourcePokemon)
	endpoint.RawQuery = url.Values{"limit": {strconv.Itoa(limit)}}.Encode()

	slog.Info("Calling catalog API to list pokemon", "limit", limit)

	var resp listResponse
	if err := c.getJSON(ctx, endpoint.String(), &resp); err != nil {
		recordSpanError(span, err)
		return nil, errors.Wrap(err, "failed to list pokemon")
	}

	summaries, err := convertListResponse(&resp)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	slog.Info("Got pokemon references", "count", len(summaries))
	span.SetAttributes(attribute.Int("pokemon.count", len(summaries)))

	return summaries, nil
}

func (c *client) GetPokemon(ctx context.Context, id int) (*entities.Pokemon, error) {
	if id <= 0 {
		return nil, errors.InvalidArgumentf("pokemon id must be positive, got %d", id)
	}

	ctx, span := c.tracer.Start(ctx, "pokeapi.GetPokemon",
		trace.WithAttributes(attribute.Int("pokemon.id", id)))
	defer span.End()

	endpoint := c.baseURL.JoinPath(ResourcePokemon, strconv.Itoa(id))

	slog.Debug("Calling catalog API for pokemon", "id", id)

	var resp pokemonResponse
	if err := c.getJSON(ctx, endpoint.String(), &resp); err != nil {
		recordSpanError(span, err)
		return nil, errors.Wrapf(err, "failed to get pokemon %d", id).WithMeta("pokemon_id", id)
	}

	pokemon, err := convertPokemonResponse(&resp)
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	return pokemon, nil
}

// getJSON issues a GET and decodes a 2xx JSON body into out. Failures are
// classified by code: 404 is NotFound, transport failures and other
// statuses are Unavailable, bodies that do not decode are DataLoss.
func (c *client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		switch {
		case ctx.Err() == context.Canceled:
			return errors.WrapWithCode(err, errors.CodeCanceled, "request canceled")
		case ctx.Err() == context.DeadlineExceeded || isTimeout(err):
			return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "catalog API timed out").
				WithMeta("url", rawURL)
		default:
			return errors.WrapWithCode(err, errors.CodeUnavailable, "catalog API unreachable").
				WithMeta("url", rawURL)
		}
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body already consumed
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return errors.NotFound("resource not found").WithMeta("url", rawURL)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return errors.Unavailablef("catalog API returned status %d", resp.StatusCode).
			WithMeta("url", rawURL).
			WithMeta("status", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.CodeDataLoss, "malformed catalog API response").
			WithMeta("url", rawURL)
	}

	return nil
}

// ParseResourceID extracts the numeric id from a detail resource URL such as
// https://pokeapi.co/api/v2/pokemon/25/. The id must be the final path
// segment and directly follow the resource segment.
func ParseResourceID(rawURL, resource string) (int, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, errors.WrapWithCodef(err, errors.CodeDataLoss, "invalid resource url %q", rawURL)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 {
		return 0, errors.DataLossf("resource url %q has no id segment", rawURL)
	}

	if got := segments[len(segments)-2]; got != resource {
		return 0, errors.DataLossf("resource url %q is not a %s url", rawURL, resource)
	}

	id, err := strconv.Atoi(segments[len(segments)-1])
	if err != nil {
		return 0, errors.WrapWithCodef(err, errors.CodeDataLoss, "resource url %q has a non-numeric id", rawURL)
	}
	if id <= 0 {
		return 0, errors.DataLossf("resource url %q has non-positive id %d", rawURL, id)
	}

	return id, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, fmt.Sprintf("%s: %s", errors.GetCode(err), errors.GetMessage(err)))
}
