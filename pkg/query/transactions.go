package query

import (
	"fmt"
	"net/url"
	"strconv"
)

// MaxTransactionLimit bounds the limit filter on transaction queries.
const MaxTransactionLimit = 10000

// TransactionsQuery filters transaction history endpoints. The same builder
// serves pool- and position-scoped endpoints; they disagree on the wire
// names for the time range, so each scope has its own Values variant.
type TransactionsQuery struct {
	startTime *int64
	endTime   *int64
	limit     *int
	offset    *int
}

// NewTransactions creates an empty transaction query.
func NewTransactions() *TransactionsQuery {
	return &TransactionsQuery{}
}

// StartTime sets the inclusive lower bound as a Unix timestamp.
func (q *TransactionsQuery) StartTime(ts int64) *TransactionsQuery {
	q.startTime = &ts
	return q
}

// EndTime sets the exclusive upper bound as a Unix timestamp.
func (q *TransactionsQuery) EndTime(ts int64) *TransactionsQuery {
	q.endTime = &ts
	return q
}

// TimeRange sets both bounds at once.
func (q *TransactionsQuery) TimeRange(start, end int64) *TransactionsQuery {
	q.startTime = &start
	q.endTime = &end
	return q
}

// Limit caps the number of returned transactions.
func (q *TransactionsQuery) Limit(limit int) *TransactionsQuery {
	q.limit = &limit
	return q
}

// Offset skips results for pagination.
func (q *TransactionsQuery) Offset(offset int) *TransactionsQuery {
	q.offset = &offset
	return q
}

// Validate checks the filter invariants without touching the network.
func (q *TransactionsQuery) Validate() error {
	if q.startTime != nil && q.endTime != nil && *q.startTime >= *q.endTime {
		return fmt.Errorf("start time must be before end time (%d >= %d)", *q.startTime, *q.endTime)
	}
	if q.limit != nil && (*q.limit < 1 || *q.limit > MaxTransactionLimit) {
		return fmt.Errorf("limit must be between 1 and %d (got %d)", MaxTransactionLimit, *q.limit)
	}
	return nil
}

// PoolValues renders parameters for pool-scoped endpoints, which use
// startTime/endTime.
func (q *TransactionsQuery) PoolValues() url.Values {
	v := url.Values{}
	if q.startTime != nil {
		v.Set("startTime", strconv.FormatInt(*q.startTime, 10))
	}
	if q.endTime != nil {
		v.Set("endTime", strconv.FormatInt(*q.endTime, 10))
	}
	if q.limit != nil {
		v.Set("limit", strconv.Itoa(*q.limit))
	}
	if q.offset != nil {
		v.Set("offset", strconv.Itoa(*q.offset))
	}
	return v
}

// PositionValues renders parameters for the position transactions endpoint,
// which uses startTimestamp/endTimestamp and does not accept an offset.
func (q *TransactionsQuery) PositionValues() url.Values {
	v := url.Values{}
	if q.startTime != nil {
		v.Set("startTimestamp", strconv.FormatInt(*q.startTime, 10))
	}
	if q.endTime != nil {
		v.Set("endTimestamp", strconv.FormatInt(*q.endTime, 10))
	}
	if q.limit != nil {
		v.Set("limit", strconv.Itoa(*q.limit))
	}
	return v
}
