package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementMatchesHostedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementMatchesHostedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementAgentWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementAgentWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementChallengerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementChallengerWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementForfeitsCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementForfeitsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetMatchesHostedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetMatchesHostedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetAgentWinsCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetAgentWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetChallengerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetChallengerWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetForfeitsCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetForfeitsCount(ctx, serverIpNet)
}
