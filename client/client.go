// Package client is the Go SDK for the sportsdash HTTP API. It carries
// the bearer credential from an injected session store and maps service
// failures onto a small sentinel taxonomy.
package client

import (
	"bytes"
	"context"
	"encoding/json"
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
	"github.com/valyala/bytebufferpool"

	"github.com/nathanpradana/sportsdash/internal/platform/logging"
	"github.com/nathanpradana/sportsdash/internal/platform/resilience"
	"github.com/nathanpradana/sportsdash/internal/session"
)

const defaultBaseURL = "http://localhost:8080"

var bearerTokenRegex = regexp.MustCompile(`(?i)bearer\s+[^\s"']+`)

type Config struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Sessions       *session.Store
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
	sessions       *session.Store
}

func New(cfg Config) (*Client, error) {
	if cfg.Sessions == nil {
		return nil, fmt.Errorf("client: session store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     cfg.MaxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		sessions:       cfg.Sessions,
	}, nil
}

// Authenticated reports whether the session store currently holds a
// bearer credential.
func (c *Client) Authenticated() bool {
	return c.sessions.Authenticated()
}

func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	var out Session
	payload := map[string]string{"username": username, "password": password}
	if err := c.postJSON(ctx, "/v1/auth/login", payload, &out); err != nil {
		return Session{}, fmt.Errorf("login: %w", err)
	}

	if err := c.sessions.Save(out.AccessToken, out.Username); err != nil {
		return Session{}, fmt.Errorf("persist session: %w", err)
	}

	return out, nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) (Session, error) {
	var out Session
	payload := map[string]string{"username": username, "email": email, "password": password}
	if err := c.postJSON(ctx, "/v1/auth/register", payload, &out); err != nil {
		return Session{}, fmt.Errorf("register: %w", err)
	}

	if err := c.sessions.Save(out.AccessToken, out.Username); err != nil {
		return Session{}, fmt.Errorf("persist session: %w", err)
	}

	return out, nil
}

// Logout discards the persisted credential. It never talks to the
// service; tokens expire server-side.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}

func (c *Client) ListLeagues(ctx context.Context) ([]League, error) {
	var out []League
	if err := c.getJSON(ctx, "/v1/leagues", nil, &out); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return out, nil
}

func (c *Client) ListTeams(ctx context.Context, filter TeamFilter) ([]Team, error) {
	query := url.Values{}
	setInt64(query, "league_id", filter.LeagueID)
	setString(query, "name", filter.Name)
	setString(query, "city", filter.City)

	var out []Team
	if err := c.getJSON(ctx, "/v1/teams", query, &out); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return out, nil
}

func (c *Client) ListPlayers(ctx context.Context, filter PlayerFilter) ([]Player, error) {
	query := url.Values{}
	setInt64(query, "team_id", filter.TeamID)
	setString(query, "position", filter.Position)
	setString(query, "name", filter.Name)

	var out []Player
	if err := c.getJSON(ctx, "/v1/players", query, &out); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return out, nil
}

func (c *Client) SearchPlayers(ctx context.Context, q string, limit int) ([]Player, error) {
	query := url.Values{}
	setString(query, "q", q)
	setInt64(query, "limit", int64(limit))

	var out []Player
	if err := c.getJSON(ctx, "/v1/players/search", query, &out); err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return out, nil
}

func (c *Client) ListGames(ctx context.Context, filter GameFilter) ([]Game, error) {
	query := url.Values{}
	setInt64(query, "league_id", filter.LeagueID)
	setInt64(query, "team_id", filter.TeamID)
	setInt64(query, "season", int64(filter.Season))
	setInt64(query, "week", int64(filter.Week))

	var out []Game
	if err := c.getJSON(ctx, "/v1/games", query, &out); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return out, nil
}

func (c *Client) GetPlayerStats(ctx context.Context, playerID int64) ([]GameLogRow, error) {
	var out []GameLogRow
	path := "/v1/players/" + strconv.FormatInt(playerID, 10) + "/stats"
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, fmt.Errorf("get player stats: %w", err)
	}
	return out, nil
}

func (c *Client) GetCareerLeaders(ctx context.Context, key string, limit int, position string) ([]CareerLeaderRow, error) {
	query := url.Values{}
	setString(query, "key", key)
	setInt64(query, "limit", int64(limit))
	setString(query, "position", position)

	var out []CareerLeaderRow
	if err := c.getJSON(ctx, "/v1/analytics/career-leaders", query, &out); err != nil {
		return nil, fmt.Errorf("get career leaders: %w", err)
	}
	return out, nil
}

func (c *Client) GetTopPerformers(ctx context.Context, limit int) (TopPerformers, error) {
	query := url.Values{}
	setInt64(query, "limit", int64(limit))

	var out TopPerformers
	if err := c.getJSON(ctx, "/v1/analytics/top-performers", query, &out); err != nil {
		return TopPerformers{}, fmt.Errorf("get top performers: %w", err)
	}
	return out, nil
}

func (c *Client) GetTeamPerformance(ctx context.Context, leagueID int64, season int) ([]TeamPerformanceRow, error) {
	query := url.Values{}
	setInt64(query, "league_id", leagueID)
	setInt64(query, "season", int64(season))

	var out []TeamPerformanceRow
	if err := c.getJSON(ctx, "/v1/analytics/team-performance", query, &out); err != nil {
		return nil, fmt.Errorf("get team performance: %w", err)
	}
	return out, nil
}

func (c *Client) GetTeamComparison(ctx context.Context, leagueID int64, season int) ([]TeamComparisonRow, error) {
	query := url.Values{}
	setInt64(query, "league_id", leagueID)
	setInt64(query, "season", int64(season))

	var out []TeamComparisonRow
	if err := c.getJSON(ctx, "/v1/analytics/team-comparison", query, &out); err != nil {
		return nil, fmt.Errorf("get team comparison: %w", err)
	}
	return out, nil
}

func (c *Client) GetInjuryReport(ctx context.Context, filter InjuryFilter) (InjuryReport, error) {
	query := url.Values{}
	setInt64(query, "player_id", filter.PlayerID)
	setInt64(query, "team_id", filter.TeamID)
	setString(query, "severity", filter.Severity)
	if filter.ActiveOnly {
		query.Set("active", "true")
	}

	var out InjuryReport
	if err := c.getJSON(ctx, "/v1/injuries/report", query, &out); err != nil {
		return InjuryReport{}, fmt.Errorf("get injury report: %w", err)
	}
	return out, nil
}

func (c *Client) ListSalaries(ctx context.Context, filter SalaryFilter) ([]Salary, error) {
	query := url.Values{}
	setInt64(query, "player_id", filter.PlayerID)
	if filter.SeasonYear != 0 {
		query.Set("season", strconv.Itoa(filter.SeasonYear))
	}

	var out []Salary
	if err := c.getJSON(ctx, "/v1/salaries", query, &out); err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	return out, nil
}

func (c *Client) CreateLeague(ctx context.Context, input NewLeague) (League, error) {
	var out League
	if err := c.postJSON(ctx, "/v1/leagues", input, &out); err != nil {
		return League{}, fmt.Errorf("create league: %w", err)
	}
	return out, nil
}

func (c *Client) CreateTeam(ctx context.Context, input NewTeam) (Team, error) {
	var out Team
	if err := c.postJSON(ctx, "/v1/teams", input, &out); err != nil {
		return Team{}, fmt.Errorf("create team: %w", err)
	}
	return out, nil
}

func (c *Client) CreatePlayer(ctx context.Context, input NewPlayer) (Player, error) {
	var out Player
	if err := c.postJSON(ctx, "/v1/players", input, &out); err != nil {
		return Player{}, fmt.Errorf("create player: %w", err)
	}
	return out, nil
}

func (c *Client) CreateGame(ctx context.Context, input NewGame) (Game, error) {
	var out Game
	if err := c.postJSON(ctx, "/v1/games", input, &out); err != nil {
		return Game{}, fmt.Errorf("create game: %w", err)
	}
	return out, nil
}

func (c *Client) CreateInjury(ctx context.Context, input NewInjury) (Injury, error) {
	var out Injury
	if err := c.postJSON(ctx, "/v1/injuries", input, &out); err != nil {
		return Injury{}, fmt.Errorf("create injury: %w", err)
	}
	return out, nil
}

func (c *Client) CreateSalary(ctx context.Context, input NewSalary) (Salary, error) {
	var out Salary
	if err := c.postJSON(ctx, "/v1/salaries", input, &out); err != nil {
		return Salary{}, fmt.Errorf("create salary: %w", err)
	}
	return out, nil
}

// SubmitBulkStats uploads a full stat sheet for one game.
func (c *Client) SubmitBulkStats(ctx context.Context, gameID int64, lines []StatLine) error {
	path := "/v1/games/" + strconv.FormatInt(gameID, 10) + "/stats/bulk"
	payload := map[string][]StatLine{"lines": lines}
	if err := c.postJSON(ctx, path, payload, nil); err != nil {
		return fmt.Errorf("submit bulk stats: %w", err)
	}
	return nil
}

type responseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       json.RawMessage  `json:"data"`
	Error      *responseErrBody `json:"error"`
}

type responseErrBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// getJSON runs a GET with retries, circuit breaking and singleflight
// collapse of identical in-flight requests.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "client circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return fmt.Errorf("%w: circuit breaker is open", ErrUnavailable)
		}
	}

	fullURL := c.baseURL + path
	encoded := ""
	if query != nil {
		encoded = query.Encode()
	}
	if encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(path+"?"+encoded, func() (any, error) {
		raw, reqErr := c.executeGet(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, ErrUnavailable) {
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

	return decodeEnvelope(raw, target)
}

func (c *Client) executeGet(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		c.attachBearer(req)

		raw, retryable, reqErr := c.roundTrip(req)
		if reqErr == nil {
			return raw, nil
		}
		lastErr = reqErr
		if !retryable || attempt == c.maxRetries {
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

	c.logger.WarnContext(ctx, "client request failed", "url", fullURL, "error", redactBearer(lastErr.Error()))
	return nil, lastErr
}

// postJSON runs a single POST attempt. Creates are not idempotent, so the
// client never retries them.
func (c *Client) postJSON(ctx context.Context, path string, payload any, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "client circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return fmt.Errorf("%w: circuit breaker is open", ErrUnavailable)
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		return fmt.Errorf("encode request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf.B))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.attachBearer(req)

	raw, _, reqErr := c.roundTrip(req)
	if c.circuitEnabled {
		if reqErr != nil && crerr.Is(reqErr, ErrUnavailable) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if reqErr != nil {
		c.logger.WarnContext(ctx, "client request failed", "path", path, "error", redactBearer(reqErr.Error()))
		return reqErr
	}

	return decodeEnvelope(raw, target)
}

// roundTrip sends one request and classifies the outcome. The retryable
// flag is meaningful only when err is non-nil.
func (c *Client) roundTrip(req *http.Request) (raw []byte, retryable bool, err error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%w: send request: %s", ErrUnavailable, redactBearer(err.Error()))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
	if readErr != nil {
		return nil, true, fmt.Errorf("%w: read response body: %v", ErrUnavailable, readErr)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, false, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		_ = c.sessions.Clear()
		return nil, false, fmt.Errorf("%w: %s", ErrAuthExpired, envelopeMessage(raw))
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, fmt.Errorf("%w: %s", ErrNotFound, envelopeMessage(raw))
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, false, fmt.Errorf("%w: %s", ErrValidation, envelopeMessage(raw))
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("%w: service status=%d", ErrUnavailable, resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("%w: service status=%d", ErrUnavailable, resp.StatusCode)
	}
}

func (c *Client) attachBearer(req *http.Request) {
	if token, ok := c.sessions.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func decodeEnvelope(raw []byte, target any) error {
	if target == nil {
		return nil
	}

	var envelope responseEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if len(envelope.Data) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(envelope.Data, target); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}

	return nil
}

func envelopeMessage(raw []byte) string {
	var envelope responseEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		return redactBearer(envelope.Error.Message)
	}
	return "request rejected by service"
}

func redactBearer(value string) string {
	return bearerTokenRegex.ReplaceAllString(value, "Bearer REDACTED")
}

func setInt64(query url.Values, key string, value int64) {
	if value > 0 {
		query.Set(key, strconv.FormatInt(value, 10))
	}
}

func setString(query url.Values, key, value string) {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		query.Set(key, trimmed)
	}
}
