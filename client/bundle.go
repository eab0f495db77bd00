package client

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"
)

// AnalyticsBundle is the raw data set behind the analytics screens,
// fetched in one round.
type AnalyticsBundle struct {
	Leagues []League
	Teams   []Team
	Players []Player
	Games   []Game
}

// FetchAnalyticsBundle issues the four reads concurrently and joins them
// all-or-nothing: the first failure cancels the remaining fetches and
// fails the whole batch.
func (c *Client) FetchAnalyticsBundle(ctx context.Context) (AnalyticsBundle, error) {
	var bundle AnalyticsBundle

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		leagues, err := c.ListLeagues(ctx)
		if err != nil {
			return err
		}
		bundle.Leagues = leagues
		return nil
	})
	p.Go(func(ctx context.Context) error {
		teams, err := c.ListTeams(ctx, TeamFilter{})
		if err != nil {
			return err
		}
		bundle.Teams = teams
		return nil
	})
	p.Go(func(ctx context.Context) error {
		players, err := c.ListPlayers(ctx, PlayerFilter{})
		if err != nil {
			return err
		}
		bundle.Players = players
		return nil
	})
	p.Go(func(ctx context.Context) error {
		games, err := c.ListGames(ctx, GameFilter{})
		if err != nil {
			return err
		}
		bundle.Games = games
		return nil
	})

	if err := p.Wait(); err != nil {
		return AnalyticsBundle{}, fmt.Errorf("fetch analytics bundle: %w", err)
	}

	return bundle, nil
}
