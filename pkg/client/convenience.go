package client

import (
	"context"

	"github.com/defitools/krystal-cloud-client/pkg/models"
	"github.com/defitools/krystal-cloud-client/pkg/query"
)

// Convenience wrappers for common queries. Each builds a one-shot query and
// dispatches it; nothing here adds behavior beyond the underlying operation.

// TopPoolsByTVL returns the largest pools on a chain by total value locked.
func (c *Client) TopPoolsByTVL(ctx context.Context, chainID, limit int) ([]models.Pool, error) {
	q := query.NewPools().ChainID(chainID).SortBy(models.SortByTVL).Limit(limit)
	return c.GetPools(ctx, q)
}

// TopPoolsByVolume returns the most traded pools on a chain over 24h.
func (c *Client) TopPoolsByVolume(ctx context.Context, chainID, limit int) ([]models.Pool, error) {
	q := query.NewPools().ChainID(chainID).SortBy(models.SortByVolume24h).Limit(limit)
	return c.GetPools(ctx, q)
}

// PoolsForToken returns pools containing the token. A chainID of 0 searches
// every chain.
func (c *Client) PoolsForToken(ctx context.Context, token string, chainID int) ([]models.Pool, error) {
	q := query.NewPools().Token(token)
	if chainID > 0 {
		q = q.ChainID(chainID)
	}
	return c.GetPools(ctx, q)
}

// PoolsForProtocol returns pools under one protocol. A chainID of 0 searches
// every chain; a limit of 0 leaves the server default.
func (c *Client) PoolsForProtocol(ctx context.Context, protocol string, chainID, limit int) ([]models.Pool, error) {
	q := query.NewPools().Protocol(protocol)
	if chainID > 0 {
		q = q.ChainID(chainID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	return c.GetPools(ctx, q)
}

// OpenPositions returns a wallet's open positions.
func (c *Client) OpenPositions(ctx context.Context, wallet string, chainID int) ([]models.Position, error) {
	return c.positionsWithStatus(ctx, wallet, chainID, models.StatusOpen)
}

// ClosedPositions returns a wallet's closed positions.
func (c *Client) ClosedPositions(ctx context.Context, wallet string, chainID int) ([]models.Position, error) {
	return c.positionsWithStatus(ctx, wallet, chainID, models.StatusClosed)
}

// AllPositions returns a wallet's positions regardless of status.
func (c *Client) AllPositions(ctx context.Context, wallet string, chainID int) ([]models.Position, error) {
	return c.positionsWithStatus(ctx, wallet, chainID, models.StatusAll)
}

func (c *Client) positionsWithStatus(ctx context.Context, wallet string, chainID int, status models.PositionStatus) ([]models.Position, error) {
	q := query.NewPositions(wallet).Status(status)
	if chainID > 0 {
		q = q.ChainID(chainID)
	}
	return c.GetPositions(ctx, q)
}

// RecentPoolTransactions returns the latest transactions of one pool.
func (c *Client) RecentPoolTransactions(ctx context.Context, chainID int, poolAddress string, limit int) ([]models.Transaction, error) {
	q := query.NewTransactions().Limit(limit)
	return c.GetPoolTransactions(ctx, chainID, poolAddress, "", q)
}
