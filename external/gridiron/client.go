// Package gridiron is the client for the upstream gridiron-data API the
// sync jobs pull reference teams and rosters from.
package gridiron

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/platform/logging"
	"github.com/nathanpradana/sportsdash/internal/platform/resilience"
	"github.com/nathanpradana/sportsdash/internal/usecase"
)

const defaultBaseURL = "https://api.gridiron-data.io/v1"

var apiKeyParamRegex = regexp.MustCompile(`api_key=[^&\s"']+`)
var errGridironTransient = crerr.New("gridiron transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     cfg.MaxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchTeams(ctx context.Context) ([]usecase.ExternalTeam, error) {
	var envelope teamsEnvelope
	if err := c.doJSON(ctx, "/teams", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}

	out := make([]usecase.ExternalTeam, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		if strings.TrimSpace(item.Name) == "" {
			continue
		}
		out = append(out, usecase.ExternalTeam{
			Name:      item.Name,
			City:      item.City,
			HeadCoach: item.HeadCoach,
			Stadium:   item.Stadium,
		})
	}

	return out, nil
}

func (c *Client) FetchPlayers(ctx context.Context, limit int) ([]usecase.ExternalPlayer, error) {
	if limit <= 0 {
		limit = 50
	}

	var envelope playersEnvelope
	query := map[string]string{"limit": strconv.Itoa(limit)}
	if err := c.doJSON(ctx, "/players", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch players: %w", err)
	}

	out := make([]usecase.ExternalPlayer, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		if strings.TrimSpace(item.Name) == "" {
			continue
		}
		out = append(out, usecase.ExternalPlayer{
			Name:     item.Name,
			Position: item.Position,
			TeamName: item.Team,
			Career: player.Career{
				PassingYards:        item.Career.PassYards,
				PassingTouchdowns:   item.Career.PassTouchdowns,
				PassingAttempts:     item.Career.PassAttempts,
				PassingCompletions:  item.Career.PassCompletions,
				RushingYards:        item.Career.RushYards,
				RushingTouchdowns:   item.Career.RushTouchdowns,
				RushingAttempts:     item.Career.RushAttempts,
				ReceivingYards:      item.Career.RecYards,
				ReceivingTouchdowns: item.Career.RecTouchdowns,
				Receptions:          item.Career.Receptions,
				Touchdowns:          item.Career.Touchdowns,
				Tackles:             item.Career.Tackles,
				Sacks:               item.Career.Sacks,
				Interceptions:       item.Career.Interceptions,
				PassesDefensed:      item.Career.PassesDefensed,
				Fumbles:             item.Career.Fumbles,
			},
		})
	}

	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "gridiron circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: sports data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	if c.apiKey != "" {
		values.Set("api_key", c.apiKey)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(path+"?"+values.Encode(), func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errGridironTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errGridironTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errGridironTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d", errGridironTransient, resp.StatusCode)
			default:
				return nil, fmt.Errorf("provider status=%d", resp.StatusCode)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "gridiron request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if key != "" {
		value = strings.ReplaceAll(value, key, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "api_key=REDACTED")
}

func redactAPIURL(fullURL string) string {
	return apiKeyParamRegex.ReplaceAllString(fullURL, "api_key=REDACTED")
}

type teamsEnvelope struct {
	Data []teamItem `json:"data"`
}

type teamItem struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	HeadCoach string `json:"head_coach"`
	Stadium   string `json:"stadium"`
}

type playersEnvelope struct {
	Data []playerItem `json:"data"`
}

type playerItem struct {
	Name     string     `json:"name"`
	Position string     `json:"position"`
	Team     string     `json:"team"`
	Career   careerItem `json:"career"`
}

type careerItem struct {
	PassYards       int64   `json:"pass_yards"`
	PassTouchdowns  int64   `json:"pass_touchdowns"`
	PassAttempts    int64   `json:"pass_attempts"`
	PassCompletions int64   `json:"pass_completions"`
	RushYards       int64   `json:"rush_yards"`
	RushTouchdowns  int64   `json:"rush_touchdowns"`
	RushAttempts    int64   `json:"rush_attempts"`
	RecYards        int64   `json:"rec_yards"`
	RecTouchdowns   int64   `json:"rec_touchdowns"`
	Receptions      int64   `json:"receptions"`
	Touchdowns      int64   `json:"touchdowns"`
	Tackles         int64   `json:"tackles"`
	Sacks           float64 `json:"sacks"`
	Interceptions   int64   `json:"interceptions"`
	PassesDefensed  int64   `json:"passes_defensed"`
	Fumbles         int64   `json:"fumbles"`
}
