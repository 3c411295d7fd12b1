package query

import (
	"testing"

	"github.com/defitools/krystal-cloud-client/pkg/models"
)

const testWallet = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"

func TestPositionsQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		wallet  string
		wantErr bool
	}{
		{
			name:    "checksummed address",
			wallet:  testWallet,
			wantErr: false,
		},
		{
			name:    "lowercase address",
			wallet:  "0x742d35cc6634c0532925a3b844bc454e4438f44e",
			wantErr: false,
		},
		{
			name:    "empty wallet",
			wallet:  "",
			wantErr: true,
		},
		{
			name:    "missing 0x prefix",
			wallet:  "742d35Cc6634C0532925a3b844Bc454e4438f44e",
			wantErr: true,
		},
		{
			name:    "uppercase 0X prefix",
			wallet:  "0X742d35Cc6634C0532925a3b844Bc454e4438f44e",
			wantErr: true,
		},
		{
			name:    "too short",
			wallet:  "0x742d35Cc",
			wantErr: true,
		},
		{
			name:    "too long",
			wallet:  testWallet + "ff",
			wantErr: true,
		},
		{
			name:    "non-hex characters",
			wallet:  "0x742d35Cc6634C0532925a3b844Bc454e4438fZZZ",
			wantErr: true,
		},
		{
			name:    "ENS name rejected",
			wallet:  "vitalik.eth",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPositions(tt.wallet).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPositionsQuery_Values(t *testing.T) {
	q := NewPositions(testWallet).
		ChainID(137).
		Status(models.StatusOpen).
		Protocols("uniswapv3", "pancakev3")

	v := q.Values()
	if got := v.Get("wallet"); got != testWallet {
		t.Errorf("wallet = %q, want %q", got, testWallet)
	}
	if got := v.Get("chainId"); got != "137" {
		t.Errorf("chainId = %q, want %q", got, "137")
	}
	if got := v.Get("positionStatus"); got != "OPEN" {
		t.Errorf("positionStatus = %q, want %q", got, "OPEN")
	}
	protocols := v["protocols"]
	if len(protocols) != 2 || protocols[0] != "uniswapv3" || protocols[1] != "pancakev3" {
		t.Errorf("protocols = %v, want [uniswapv3 pancakev3]", protocols)
	}
}

func TestPositionsQuery_StatusAllOmitsParameter(t *testing.T) {
	v := NewPositions(testWallet).Status(models.StatusAll).Values()
	if _, ok := v["positionStatus"]; ok {
		t.Errorf("positionStatus rendered for StatusAll: %v", v)
	}
	if len(v) != 1 {
		t.Errorf("Values() has %d keys, want only wallet: %v", len(v), v)
	}
}

func TestPositionsQuery_AddProtocol(t *testing.T) {
	q := NewPositions(testWallet).
		AddProtocol("uniswapv3").
		AddProtocol("sushiv3")

	protocols := q.Values()["protocols"]
	if len(protocols) != 2 {
		t.Fatalf("protocols = %v, want 2 entries", protocols)
	}
}
