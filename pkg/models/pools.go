// Package models defines the typed entities returned by the Krystal Cloud API:
// chains, pools, positions, transactions, and the paginated response envelope.
package models

import "encoding/json"

// ChainInfo describes a blockchain network supported by the API.
type ChainInfo struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Logo     string `json:"logo,omitempty"`
	Explorer string `json:"explorer,omitempty"`
}

// ProtocolInfo describes a DEX protocol (e.g. Uniswap V3).
type ProtocolInfo struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	FactoryAddress string `json:"factoryAddress"`
	Logo           string `json:"logo,omitempty"`
}

// TokenInfo describes an ERC-20 token.
type TokenInfo struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
	Logo     string `json:"logo,omitempty"`
}

// PoolStats holds volume, fee, and APR figures for one time window.
type PoolStats struct {
	Volume float64 `json:"volume"`
	Fee    float64 `json:"fee"`
	APR    float64 `json:"apr"`
}

// IncentiveInfo describes a reward program attached to a pool.
type IncentiveInfo struct {
	IncentiveType  string    `json:"incentiveType"`
	Token          TokenInfo `json:"token"`
	AmountPerDay   float64   `json:"amountPerDay"`
	DailyRewardUSD float64   `json:"dailyRewardUsd"`
	APR24h         float64   `json:"apr24h"`
}

// Pool is a liquidity pool as returned by the pools endpoints.
type Pool struct {
	Chain      *ChainInfo      `json:"chain,omitempty"`
	Address    string          `json:"poolAddress"`
	PoolPrice  float64         `json:"poolPrice"`
	Protocol   *ProtocolInfo   `json:"protocol,omitempty"`
	FeeTier    int             `json:"feeTier"`
	Token0     *TokenInfo      `json:"token0,omitempty"`
	Token1     *TokenInfo      `json:"token1,omitempty"`
	TVL        float64         `json:"tvl"`
	Stats1h    *PoolStats      `json:"stats1h,omitempty"`
	Stats24h   *PoolStats      `json:"stats24h,omitempty"`
	Stats7d    *PoolStats      `json:"stats7d,omitempty"`
	Stats30d   *PoolStats      `json:"stats30d,omitempty"`
	Incentives []IncentiveInfo `json:"incentives,omitempty"`
}

// VolumeTVLRatio returns the 24h volume to TVL ratio, or 0 when either side
// is missing.
func (p *Pool) VolumeTVLRatio() float64 {
	if p.TVL <= 0 || p.Stats24h == nil {
		return 0
	}
	return p.Stats24h.Volume / p.TVL
}

// IsHighActivity reports whether 24h volume is at least 10% of TVL.
func (p *Pool) IsHighActivity() bool {
	return p.VolumeTVLRatio() >= 0.1
}

// DisplayName formats the pool as "TOKEN0/TOKEN1 (Protocol) Pool".
func (p *Pool) DisplayName() string {
	t0, t1 := "?", "?"
	if p.Token0 != nil {
		t0 = p.Token0.Symbol
	}
	if p.Token1 != nil {
		t1 = p.Token1.Symbol
	}
	proto := "Unknown"
	if p.Protocol != nil {
		proto = p.Protocol.Name
	}
	return t0 + "/" + t1 + " (" + proto + ") Pool"
}

// Volume24h returns the 24h trading volume, or 0 when stats are absent.
func (p *Pool) Volume24h() float64 {
	if p.Stats24h == nil {
		return 0
	}
	return p.Stats24h.Volume
}

// APR returns the 24h APR and whether stats were present.
func (p *Pool) APR() (float64, bool) {
	if p.Stats24h == nil {
		return 0, false
	}
	return p.Stats24h.APR, true
}

// PoolSort selects the sort order for pool list queries. The API expects the
// small integer code on the wire.
type PoolSort int

const (
	SortByAPR PoolSort = iota
	SortByTVL
	SortByVolume24h
	SortByFee
)

func (s PoolSort) String() string {
	switch s {
	case SortByAPR:
		return "apr"
	case SortByTVL:
		return "tvl"
	case SortByVolume24h:
		return "volume24h"
	case SortByFee:
		return "fee"
	default:
		return "unknown"
	}
}

// RawDetail carries an endpoint payload that has no fixed schema, such as
// chain stats or pool historical data.
type RawDetail = json.RawMessage
