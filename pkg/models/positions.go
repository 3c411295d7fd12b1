package models

import "strings"

// PositionStatus filters position list queries. StatusAll deliberately maps
// to no wire parameter: the API returns every status when the filter is
// omitted.
type PositionStatus string

const (
	StatusOpen   PositionStatus = "OPEN"
	StatusClosed PositionStatus = "CLOSED"
	StatusAll    PositionStatus = ""
)

// PoolRef is the abbreviated pool reference embedded in a position.
type PoolRef struct {
	ID          string        `json:"id"`
	PoolAddress string        `json:"poolAddress"`
	Protocol    *ProtocolInfo `json:"protocol,omitempty"`
}

// TokenWithValue pairs a token with its balance and USD valuation.
type TokenWithValue struct {
	Token   TokenInfo `json:"token"`
	Balance string    `json:"balance"`
	Price   float64   `json:"price"`
	Value   float64   `json:"value"`
}

// FeeInfo groups pending and claimed amounts for fees or farming rewards.
type FeeInfo struct {
	Pending []TokenWithValue `json:"pending,omitempty"`
	Claimed []TokenWithValue `json:"claimed,omitempty"`
}

// AprBreakdown splits a position's APR into its sources.
type AprBreakdown struct {
	TotalAPR float64 `json:"totalApr"`
	FeeAPR   float64 `json:"feeApr"`
	FarmAPR  float64 `json:"farmApr"`
}

// PositionPerformance holds PnL and return metrics for a position.
type PositionPerformance struct {
	TotalDepositValue  float64       `json:"totalDepositValue"`
	TotalWithdrawValue float64       `json:"totalWithdrawValue"`
	ImpermanentLoss    float64       `json:"impermanentLoss"`
	PnL                float64       `json:"pnl"`
	ReturnOnInvestment float64       `json:"returnOnInvestment"`
	CompareToHold      *float64      `json:"compareToHold,omitempty"`
	APR                *AprBreakdown `json:"apr,omitempty"`
}

// Position is a wallet's stake in a pool, with price range and performance.
type Position struct {
	ID                   string               `json:"id"`
	Chain                *ChainInfo           `json:"chain,omitempty"`
	Pool                 *PoolRef             `json:"pool,omitempty"`
	OwnerAddress         string               `json:"ownerAddress"`
	TokenAddress         string               `json:"tokenAddress"`
	TokenID              string               `json:"tokenId"`
	Liquidity            string               `json:"liquidity"`
	MinPrice             float64              `json:"minPrice"`
	MaxPrice             float64              `json:"maxPrice"`
	CurrentPositionValue float64              `json:"currentPositionValue"`
	Status               string               `json:"status"`
	CurrentAmounts       []TokenWithValue     `json:"currentAmounts,omitempty"`
	ProvidedAmounts      []TokenWithValue     `json:"providedAmounts,omitempty"`
	TradingFee           *FeeInfo             `json:"tradingFee,omitempty"`
	FarmingReward        *FeeInfo             `json:"farmingReward,omitempty"`
	Performance          *PositionPerformance `json:"performance,omitempty"`
}

// TotalValue sums the USD value of current token amounts, falling back to
// the reported position value when amounts are absent.
func (p *Position) TotalValue() float64 {
	if len(p.CurrentAmounts) == 0 {
		return p.CurrentPositionValue
	}
	var total float64
	for _, a := range p.CurrentAmounts {
		total += a.Value
	}
	return total
}

// IsActive reports whether the position is still providing liquidity,
// in or out of its price range.
func (p *Position) IsActive() bool {
	s := strings.ToUpper(p.Status)
	return s == "IN_RANGE" || s == "OUT_RANGE"
}

// IsClosed reports whether the position has been withdrawn.
func (p *Position) IsClosed() bool {
	return strings.ToUpper(p.Status) == "CLOSED"
}
