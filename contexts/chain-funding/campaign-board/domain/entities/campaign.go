package entities

import (
	"math/big"
	"time"
)

type ActionKind string

const (
	ActionDonate     ActionKind = "donate"
	ActionDeactivate ActionKind = "deactivate"
)

// Placeholder values applied to a CampaignView when the off-chain metadata
// document (or one of its fields) is unavailable.
const (
	PlaceholderTitle       = "Untitled campaign"
	PlaceholderDescription = "No description available"
)

// Campaign is the raw on-chain record as returned by the ledger client.
// Amounts are integers in the smallest currency unit and are authoritative;
// nothing in this module rounds or re-derives them.
type Campaign struct {
	Owner           string
	Target          *big.Int
	AmountCollected *big.Int
	Deadline        int64 // unix seconds
	Claimed         bool
	Active          bool
	MetadataRef     string
}

// Metadata is the off-chain descriptive document resolved from a
// content-addressed reference. Image may itself be a content-addressed
// reference and is rewritten before display.
type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CampaignView is the merged, display-ready record. The full view set is
// rebuilt on every reconciliation pass; ID is the sequence index of the raw
// campaign and is stable only within one pass.
type CampaignView struct {
	ID              int
	Owner           string
	Target          string
	AmountCollected string
	Deadline        time.Time
	Claimed         bool
	Active          bool
	Title           string
	Description     string
	Image           string
}
