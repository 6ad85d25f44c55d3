package model

import "time"

// Metadata is the audit trail attached to records created through the API.
type Metadata struct {
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by"`
}
