// Package query provides fluent builders for the Krystal Cloud API list
// endpoints. A builder accumulates optional filters through chained setters,
// is validated once, rendered to wire parameters once, and then discarded.
//
// Parameter names follow the API contract exactly: absent filters contribute
// no parameter at all, never an empty placeholder.
package query

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/defitools/krystal-cloud-client/pkg/models"
)

// Bounds enforced by Validate on the pool query.
const (
	MaxPoolLimit = 1000
	MaxMinTVL    = 1_000_000_000
)

// PoolsQuery filters the pool list endpoint.
type PoolsQuery struct {
	chainID        *int
	factoryAddress string
	protocol       string
	token          string
	sortBy         *models.PoolSort
	minTVL         *int64
	minVolume24h   *int64
	limit          *int
	offset         *int
	withIncentives *bool
}

// NewPools creates an empty pool query.
func NewPools() *PoolsQuery {
	return &PoolsQuery{}
}

// ChainID filters pools to one network.
func (q *PoolsQuery) ChainID(id int) *PoolsQuery {
	q.chainID = &id
	return q
}

// FactoryAddress filters by the protocol factory contract.
func (q *PoolsQuery) FactoryAddress(addr string) *PoolsQuery {
	q.factoryAddress = addr
	return q
}

// Protocol filters by protocol key, e.g. "uniswapv3".
func (q *PoolsQuery) Protocol(protocol string) *PoolsQuery {
	q.protocol = protocol
	return q
}

// Token filters to pools containing the token address on either side.
func (q *PoolsQuery) Token(token string) *PoolsQuery {
	q.token = token
	return q
}

// SortBy orders the result set.
func (q *PoolsQuery) SortBy(sort models.PoolSort) *PoolsQuery {
	q.sortBy = &sort
	return q
}

// MinTVL sets the minimum total value locked threshold in USD.
func (q *PoolsQuery) MinTVL(tvl int64) *PoolsQuery {
	q.minTVL = &tvl
	return q
}

// MinVolume24h sets the minimum 24h volume threshold in USD.
func (q *PoolsQuery) MinVolume24h(volume int64) *PoolsQuery {
	q.minVolume24h = &volume
	return q
}

// Limit caps the number of returned pools.
func (q *PoolsQuery) Limit(limit int) *PoolsQuery {
	q.limit = &limit
	return q
}

// Offset skips results for pagination.
func (q *PoolsQuery) Offset(offset int) *PoolsQuery {
	q.offset = &offset
	return q
}

// WithIncentives restricts results to pools with active incentives.
func (q *PoolsQuery) WithIncentives(enabled bool) *PoolsQuery {
	q.withIncentives = &enabled
	return q
}

// Validate checks the filter invariants without touching the network.
func (q *PoolsQuery) Validate() error {
	if q.limit != nil && (*q.limit < 1 || *q.limit > MaxPoolLimit) {
		return fmt.Errorf("limit must be between 1 and %d (got %d)", MaxPoolLimit, *q.limit)
	}
	if q.minTVL != nil && *q.minTVL > MaxMinTVL {
		return fmt.Errorf("minimum TVL threshold too high (got %d, max %d)", *q.minTVL, MaxMinTVL)
	}
	return nil
}

// Values renders the set filters as wire parameters.
func (q *PoolsQuery) Values() url.Values {
	v := url.Values{}
	if q.chainID != nil {
		v.Set("chainId", strconv.Itoa(*q.chainID))
	}
	if q.factoryAddress != "" {
		v.Set("factoryAddress", q.factoryAddress)
	}
	if q.protocol != "" {
		v.Set("protocol", q.protocol)
	}
	if q.token != "" {
		v.Set("token", q.token)
	}
	if q.sortBy != nil {
		v.Set("sortBy", strconv.Itoa(int(*q.sortBy)))
	}
	if q.minTVL != nil {
		v.Set("tvlFrom", strconv.FormatInt(*q.minTVL, 10))
	}
	if q.minVolume24h != nil {
		v.Set("volume24hFrom", strconv.FormatInt(*q.minVolume24h, 10))
	}
	if q.limit != nil {
		v.Set("limit", strconv.Itoa(*q.limit))
	}
	if q.offset != nil {
		v.Set("offset", strconv.Itoa(*q.offset))
	}
	if q.withIncentives != nil {
		v.Set("withIncentives", strconv.FormatBool(*q.withIncentives))
	}
	return v
}
