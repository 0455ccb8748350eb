package models

import "time"

// DateRange is an inclusive pair of instants rendered as ISO-8601 strings
// with an explicit numeric UTC offset and millisecond precision, e.g.
// "2024-07-15T00:00:00.000+02:00". The encoded instant is authoritative;
// the displayed offset is informational.
type DateRange struct {
	Start string
	End   string
}

// SalesTotal is the normalized answer for one period:
// a fixed 2-decimal amount plus the display currency (symbol or code).
type SalesTotal struct {
	Total    string `json:"total" example:"1542.50"`
	Currency string `json:"currency" example:"$"`
}

// CacheEntry is one cached sales result, keyed externally by
// domain|timezone|period. Entries older than the cache TTL are treated
// as absent by the store.
type CacheEntry struct {
	Total     string    `json:"total"`
	Currency  string    `json:"currency"`
	WrittenAt time.Time `json:"written_at"`
}
