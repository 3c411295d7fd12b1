package models

import (
	"encoding/json"
	"testing"
)

func TestPool_Decode(t *testing.T) {
	payload := `{
		"chain": {"id": 1, "name": "Ethereum", "logo": "https://example.com/eth.png", "explorer": "https://etherscan.io"},
		"poolAddress": "0x88e6a0c2ddd26feeb64f039a2c41296fcb3f5640",
		"poolPrice": 1850.75,
		"protocol": {"key": "uniswapv3", "name": "Uniswap V3", "factoryAddress": "0x1f98431c8ad98523631ae4a59f267346ea31f984"},
		"feeTier": 500,
		"token0": {"address": "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", "symbol": "USDC", "name": "USD Coin", "decimals": 6},
		"token1": {"address": "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", "symbol": "WETH", "name": "Wrapped Ether", "decimals": 18},
		"tvl": 250000000.5,
		"stats1h": {"volume": 2000000, "fee": 1000, "apr": 11.2},
		"stats24h": {"volume": 50000000, "fee": 25000, "apr": 12.5},
		"incentives": [
			{"incentiveType": "FARMING", "token": {"address": "0xdef1", "symbol": "ARB", "name": "Arbitrum", "decimals": 18}, "amountPerDay": 1000, "dailyRewardUsd": 850.5, "apr24h": 3.2}
		]
	}`

	var p Pool
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if p.Address != "0x88e6a0c2ddd26feeb64f039a2c41296fcb3f5640" {
		t.Errorf("Address = %q", p.Address)
	}
	if p.Chain == nil || p.Chain.ID != 1 {
		t.Errorf("Chain = %+v, want Ethereum/1", p.Chain)
	}
	if p.FeeTier != 500 {
		t.Errorf("FeeTier = %d, want 500", p.FeeTier)
	}
	if p.Token0 == nil || p.Token0.Decimals != 6 {
		t.Errorf("Token0 = %+v, want USDC with 6 decimals", p.Token0)
	}
	if p.TVL != 250000000.5 {
		t.Errorf("TVL = %v", p.TVL)
	}
	if len(p.Incentives) != 1 || p.Incentives[0].DailyRewardUSD != 850.5 {
		t.Errorf("Incentives = %+v", p.Incentives)
	}
}

func TestPool_DecodeMinimal(t *testing.T) {
	// Sparse payloads leave the optional sub-objects nil rather than failing.
	var p Pool
	if err := json.Unmarshal([]byte(`{"poolAddress": "0xabc", "tvl": 100}`), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if p.Chain != nil || p.Token0 != nil || p.Stats24h != nil {
		t.Errorf("optional fields not nil: %+v", p)
	}
}

func TestPool_VolumeTVLRatio(t *testing.T) {
	tests := []struct {
		name string
		pool Pool
		want float64
	}{
		{
			name: "normal ratio",
			pool: Pool{TVL: 1000, Stats24h: &PoolStats{Volume: 250}},
			want: 0.25,
		},
		{
			name: "zero TVL",
			pool: Pool{TVL: 0, Stats24h: &PoolStats{Volume: 250}},
			want: 0,
		},
		{
			name: "missing stats",
			pool: Pool{TVL: 1000},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pool.VolumeTVLRatio(); got != tt.want {
				t.Errorf("VolumeTVLRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPool_IsHighActivity(t *testing.T) {
	active := Pool{TVL: 1000, Stats24h: &PoolStats{Volume: 100}}
	if !active.IsHighActivity() {
		t.Error("IsHighActivity() = false at exactly 10%, want true")
	}
	quiet := Pool{TVL: 1000, Stats24h: &PoolStats{Volume: 99}}
	if quiet.IsHighActivity() {
		t.Error("IsHighActivity() = true below 10%, want false")
	}
}

func TestPool_DisplayName(t *testing.T) {
	full := Pool{
		Token0:   &TokenInfo{Symbol: "USDC"},
		Token1:   &TokenInfo{Symbol: "WETH"},
		Protocol: &ProtocolInfo{Name: "Uniswap V3"},
	}
	if got := full.DisplayName(); got != "USDC/WETH (Uniswap V3) Pool" {
		t.Errorf("DisplayName() = %q", got)
	}

	sparse := Pool{}
	if got := sparse.DisplayName(); got != "?/? (Unknown) Pool" {
		t.Errorf("DisplayName() = %q for sparse pool", got)
	}
}

func TestPool_APR(t *testing.T) {
	with := Pool{Stats24h: &PoolStats{APR: 12.5}}
	if apr, ok := with.APR(); !ok || apr != 12.5 {
		t.Errorf("APR() = %v, %v, want 12.5, true", apr, ok)
	}
	without := Pool{}
	if _, ok := without.APR(); ok {
		t.Error("APR() ok = true without stats, want false")
	}
}

func TestPoolSort_String(t *testing.T) {
	tests := []struct {
		sort PoolSort
		want string
	}{
		{SortByAPR, "apr"},
		{SortByTVL, "tvl"},
		{SortByVolume24h, "volume24h"},
		{SortByFee, "fee"},
		{PoolSort(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.sort.String(); got != tt.want {
			t.Errorf("PoolSort(%d).String() = %q, want %q", tt.sort, got, tt.want)
		}
	}
}

func TestPoolSort_WireCodes(t *testing.T) {
	// The API contract fixes the integer codes; reordering the constants
	// would silently change every sorted query.
	if SortByAPR != 0 || SortByTVL != 1 || SortByVolume24h != 2 || SortByFee != 3 {
		t.Errorf("sort codes = %d %d %d %d, want 0 1 2 3",
			SortByAPR, SortByTVL, SortByVolume24h, SortByFee)
	}
}
