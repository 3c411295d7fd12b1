package models

import "time"

// Transaction is a single pool or position transaction.
type Transaction struct {
	Hash      string  `json:"hash"`
	Timestamp int64   `json:"timestamp"`
	Type      string  `json:"type"`
	Amount0   float64 `json:"amount0"`
	Amount1   float64 `json:"amount1"`
}

// Age returns how long ago the transaction happened.
func (t *Transaction) Age() time.Duration {
	age := time.Since(time.Unix(t.Timestamp, 0))
	if age < 0 {
		return 0
	}
	return age
}

// IsRecent reports whether the transaction is less than an hour old.
func (t *Transaction) IsRecent() bool {
	return t.Age() < time.Hour
}
