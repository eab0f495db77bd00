package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/nathanpradana/sportsdash/internal/infrastructure/account/authgate"
	"github.com/nathanpradana/sportsdash/internal/usecase"
)

// AccountGateway proxies credential operations to the identity service.
type AccountGateway interface {
	Login(ctx context.Context, username, password string) (authgate.Session, error)
	Register(ctx context.Context, username, email, password string) (authgate.Session, error)
}

type Handler struct {
	catalogService   *usecase.CatalogService
	playerService    *usecase.PlayerService
	analyticsService *usecase.AnalyticsService
	injuryService    *usecase.InjuryService
	dashboardService *usecase.DashboardService
	bulkStatsService *usecase.BulkStatsService
	syncService      *usecase.SyncService
	accounts         AccountGateway
	logger           *slog.Logger
	validator        *validator.Validate
}

func NewHandler(
	catalogService *usecase.CatalogService,
	playerService *usecase.PlayerService,
	analyticsService *usecase.AnalyticsService,
	injuryService *usecase.InjuryService,
	dashboardService *usecase.DashboardService,
	bulkStatsService *usecase.BulkStatsService,
	syncService *usecase.SyncService,
	accounts AccountGateway,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		catalogService:   catalogService,
		playerService:    playerService,
		analyticsService: analyticsService,
		injuryService:    injuryService,
		dashboardService: dashboardService,
		bulkStatsService: bulkStatsService,
		syncService:      syncService,
		accounts:         accounts,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, target)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func queryInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	value, err := queryInt64(r, name)
	return int(value), err
}

func queryBool(r *http.Request, name string) bool {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	return strings.EqualFold(raw, "true") || raw == "1"
}
