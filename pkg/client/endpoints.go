package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/defitools/krystal-cloud-client/pkg/models"
	"github.com/defitools/krystal-cloud-client/pkg/query"
)

// GetChains returns the blockchain networks the API supports.
func (c *Client) GetChains(ctx context.Context) ([]models.ChainInfo, error) {
	raw, err := c.get(ctx, "/v1/chains", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.ChainInfo](c, raw, "chains")
}

// GetChainStats returns the stats payload for one chain. The payload has no
// fixed schema, so it is returned raw.
func (c *Client) GetChainStats(ctx context.Context, chainID int) (models.RawDetail, error) {
	return c.get(ctx, "/v1/chains/"+strconv.Itoa(chainID), nil)
}

// GetPools returns pools matching the query filters.
func (c *Client) GetPools(ctx context.Context, q *query.PoolsQuery) ([]models.Pool, error) {
	if q == nil {
		q = query.NewPools()
	}
	if err := c.validate(q); err != nil {
		return nil, err
	}
	raw, err := c.get(ctx, "/v1/pools", q.Values())
	if err != nil {
		return nil, err
	}
	return decodeList[models.Pool](c, raw, "pools")
}

// PoolDetailOptions are the secondary filters for GetPoolDetail.
type PoolDetailOptions struct {
	FactoryAddress string
	WithIncentives bool
}

// GetPoolDetail returns one pool, identified by chain and address.
func (c *Client) GetPoolDetail(ctx context.Context, chainID int, poolAddress string, opts PoolDetailOptions) (*models.Pool, error) {
	params := url.Values{}
	if opts.FactoryAddress != "" {
		params.Set("factoryAddress", opts.FactoryAddress)
	}
	params.Set("withIncentives", strconv.FormatBool(opts.WithIncentives))

	raw, err := c.get(ctx, fmt.Sprintf("/v1/pools/%d/%s", chainID, poolAddress), params)
	if err != nil {
		return nil, err
	}
	pool, err := decodeDetail[models.Pool](raw, "pool")
	if err != nil {
		return nil, err
	}
	return &pool, nil
}

// GetPoolHistorical returns historical data for one pool. Only the time
// range filters of q apply to this endpoint.
func (c *Client) GetPoolHistorical(ctx context.Context, chainID int, poolAddress, factoryAddress string, q *query.TransactionsQuery) (models.RawDetail, error) {
	params := url.Values{}
	if factoryAddress != "" {
		params.Set("factoryAddress", factoryAddress)
	}
	if q != nil {
		if err := c.validate(q); err != nil {
			return nil, err
		}
		for _, name := range []string{"startTime", "endTime"} {
			if v := q.PoolValues().Get(name); v != "" {
				params.Set(name, v)
			}
		}
	}
	return c.get(ctx, fmt.Sprintf("/v1/pools/%d/%s/historical", chainID, poolAddress), params)
}

// GetPoolTransactions returns the transaction history of one pool.
func (c *Client) GetPoolTransactions(ctx context.Context, chainID int, poolAddress, factoryAddress string, q *query.TransactionsQuery) ([]models.Transaction, error) {
	params := url.Values{}
	if q != nil {
		if err := c.validate(q); err != nil {
			return nil, err
		}
		params = q.PoolValues()
	}
	if factoryAddress != "" {
		params.Set("factoryAddress", factoryAddress)
	}

	raw, err := c.get(ctx, fmt.Sprintf("/v1/pools/%d/%s/transactions", chainID, poolAddress), params)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Transaction](c, raw, "transactions")
}

// GetPositions returns the positions of the wallet in the query.
func (c *Client) GetPositions(ctx context.Context, q *query.PositionsQuery) ([]models.Position, error) {
	if q == nil {
		return nil, invalidParams("positions query is required")
	}
	if err := c.validate(q); err != nil {
		return nil, err
	}
	raw, err := c.get(ctx, "/v1/positions", q.Values())
	if err != nil {
		return nil, err
	}
	return decodeList[models.Position](c, raw, "positions")
}

// GetPositionDetail returns one position, identified by chain and position
// id.
func (c *Client) GetPositionDetail(ctx context.Context, chainID int, positionID string) (*models.Position, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/v1/positions/%d/%s", chainID, positionID), nil)
	if err != nil {
		return nil, err
	}
	position, err := decodeDetail[models.Position](raw, "position")
	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetPositionTransactions returns the transaction history of one position,
// identified by its NFT token address. Wallet and token id narrow the match
// when set.
func (c *Client) GetPositionTransactions(ctx context.Context, chainID int, wallet, tokenAddress, tokenID string, q *query.TransactionsQuery) ([]models.Transaction, error) {
	params := url.Values{}
	if q != nil {
		if err := c.validate(q); err != nil {
			return nil, err
		}
		params = q.PositionValues()
	}
	params.Set("tokenAddress", tokenAddress)
	if wallet != "" {
		params.Set("wallet", wallet)
	}
	if tokenID != "" {
		params.Set("tokenId", tokenID)
	}

	raw, err := c.get(ctx, fmt.Sprintf("/v1/positions/%d/transactions", chainID), params)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Transaction](c, raw, "transactions")
}

// GetProtocols returns the protocol list payload. The payload has no fixed
// schema, so it is returned raw.
func (c *Client) GetProtocols(ctx context.Context) (models.RawDetail, error) {
	return c.get(ctx, "/v1/protocols", nil)
}
