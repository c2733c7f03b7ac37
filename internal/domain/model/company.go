package model

import "time"

// Company is an internal carrier known to the portal. TrimbleCode links the
// company to its customer key in the upstream Trimble system and is unique,
// compared upper-case.
type Company struct {
	ID          int64
	Name        string
	TrimbleCode string
	Address     string
	CreatedAt   time.Time
}
