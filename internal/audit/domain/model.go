package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Entry records one mutating operation against the account store or the
// selection session. Entries live in memory for the process lifetime,
// like every other piece of state in this service.
type Entry struct {
	ID         snowflake.ID   `json:"id"`
	Action     string         `json:"action"`
	TargetType string         `json:"targetType"`
	TargetID   string         `json:"targetId,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

const (
	ActionAccountCreate       = "account.create"
	ActionAccountUpdate       = "account.update"
	ActionAccountAmountUpdate = "account.amount_update"
	ActionAccountDelete       = "account.delete"
	ActionAccountSelect       = "account.select"
	ActionSessionAmountSet    = "session.amount_set"
	ActionSessionClear        = "session.clear"
)
