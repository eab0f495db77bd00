package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nathanpradana/sportsdash/internal/domain/game"
	"github.com/nathanpradana/sportsdash/internal/domain/player"
	"github.com/nathanpradana/sportsdash/internal/domain/playerstats"
	"github.com/nathanpradana/sportsdash/internal/domain/team"
)

// GameLogRow is one game line in a player's detail view.
type GameLogRow struct {
	GameID     int64
	SeasonYear int
	Week       int
	GameDate   time.Time
	Opponent   string
	Line       playerstats.Line
}

// PlayerDetail is the full player page: profile, career counters and the
// per-game log.
type PlayerDetail struct {
	Player   player.Player
	TeamName string
	GameLog  []GameLogRow
}

// PlayerService serves player search and the player detail page.
type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	gameRepo   game.Repository
	statsRepo  playerstats.Repository
}

func NewPlayerService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	gameRepo game.Repository,
	statsRepo playerstats.Repository,
) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		gameRepo:   gameRepo,
		statsRepo:  statsRepo,
	}
}

func (s *PlayerService) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	players, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

func (s *PlayerService) Create(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, ok, err := s.teamRepo.GetByID(ctx, p.TeamID); err != nil {
		return player.Player{}, fmt.Errorf("check team: %w", err)
	} else if !ok {
		return player.Player{}, fmt.Errorf("%w: team %d", ErrNotFound, p.TeamID)
	}

	created, err := s.playerRepo.Create(ctx, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return created, nil
}

// Search matches players whose name contains the query,
// case-insensitively. An empty query returns no rows.
func (s *PlayerService) Search(ctx context.Context, query string, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Search")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	players, err := s.playerRepo.List(ctx, player.Filter{Name: query})
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	if len(players) > limit {
		players = players[:limit]
	}

	return players, nil
}

// GetDetail assembles the player page: the profile plus one log row per
// recorded stat line, joined with its game and opponent.
func (s *PlayerService) GetDetail(ctx context.Context, playerID int64) (PlayerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetDetail")
	defer span.End()

	p, ok, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("get player: %w", err)
	}
	if !ok {
		return PlayerDetail{}, fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}

	detail := PlayerDetail{Player: p}
	if t, ok, err := s.teamRepo.GetByID(ctx, p.TeamID); err != nil {
		return PlayerDetail{}, fmt.Errorf("get team: %w", err)
	} else if ok {
		detail.TeamName = t.Name
	}

	lines, err := s.statsRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("list stat lines: %w", err)
	}

	teamNames, err := s.teamNameIndex(ctx)
	if err != nil {
		return PlayerDetail{}, err
	}

	for _, line := range lines {
		row := GameLogRow{GameID: line.GameID, Line: line}
		if g, ok, err := s.gameRepo.GetByID(ctx, line.GameID); err != nil {
			return PlayerDetail{}, fmt.Errorf("get game: %w", err)
		} else if ok {
			row.SeasonYear = g.SeasonYear
			row.Week = g.Week
			row.GameDate = g.GameDate
			opponentID := g.HomeTeamID
			if opponentID == p.TeamID {
				opponentID = g.AwayTeamID
			}
			row.Opponent = teamNames[opponentID]
		}
		detail.GameLog = append(detail.GameLog, row)
	}

	return detail, nil
}

func (s *PlayerService) teamNameIndex(ctx context.Context) (map[int64]string, error) {
	teams, err := s.teamRepo.List(ctx, team.Filter{})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	names := make(map[int64]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}

	return names, nil
}
