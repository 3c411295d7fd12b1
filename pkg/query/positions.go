package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/defitools/krystal-cloud-client/pkg/models"
)

// PositionsQuery filters the position list endpoint. The wallet address is
// mandatory; everything else is optional.
type PositionsQuery struct {
	wallet    string
	chainID   *int
	status    models.PositionStatus
	protocols []string
}

// NewPositions creates a position query for one wallet.
func NewPositions(wallet string) *PositionsQuery {
	return &PositionsQuery{wallet: wallet, status: models.StatusAll}
}

// ChainID filters positions to one network.
func (q *PositionsQuery) ChainID(id int) *PositionsQuery {
	q.chainID = &id
	return q
}

// Status filters by position status. models.StatusAll clears the filter.
func (q *PositionsQuery) Status(status models.PositionStatus) *PositionsQuery {
	q.status = status
	return q
}

// Protocols replaces the protocol filter set.
func (q *PositionsQuery) Protocols(protocols ...string) *PositionsQuery {
	q.protocols = protocols
	return q
}

// AddProtocol appends one protocol to the filter set.
func (q *PositionsQuery) AddProtocol(protocol string) *PositionsQuery {
	q.protocols = append(q.protocols, protocol)
	return q
}

// Wallet returns the wallet address the query targets.
func (q *PositionsQuery) Wallet() string {
	return q.wallet
}

// Validate checks that the wallet is a well-formed Ethereum address
// (0x followed by 40 hex characters).
func (q *PositionsQuery) Validate() error {
	if q.wallet == "" {
		return fmt.Errorf("wallet address cannot be empty")
	}
	// IsHexAddress alone also accepts unprefixed and 0X-prefixed forms;
	// the API requires the literal lowercase 0x prefix.
	if !strings.HasPrefix(q.wallet, "0x") || !common.IsHexAddress(q.wallet) {
		return fmt.Errorf("invalid Ethereum address format: %q", q.wallet)
	}
	return nil
}

// Values renders the set filters as wire parameters. The protocols filter is
// repeated, one parameter per protocol.
func (q *PositionsQuery) Values() url.Values {
	v := url.Values{}
	v.Set("wallet", q.wallet)
	if q.chainID != nil {
		v.Set("chainId", strconv.Itoa(*q.chainID))
	}
	if q.status != models.StatusAll {
		v.Set("positionStatus", string(q.status))
	}
	for _, p := range q.protocols {
		v.Add("protocols", p)
	}
	return v
}
