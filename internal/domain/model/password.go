package model

import "time"

// PasswordRecord is the stored result of the most recent generation for a
// seed text. SeedText is the primary key; a newer generation for the same
// seed replaces Password and CreatedAt.
type PasswordRecord struct {
	SeedText  string
	Password  string
	CreatedAt time.Time
}

// TimestampLayout is the sortable local-time layout used for CreatedAt in storage.
const TimestampLayout = "2006-01-02 15:04:05"

// FormattedCreatedAt renders CreatedAt in TimestampLayout.
func (r PasswordRecord) FormattedCreatedAt() string {
	return r.CreatedAt.Format(TimestampLayout)
}
