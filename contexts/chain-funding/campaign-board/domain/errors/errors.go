package errors

import "errors"

var (
	ErrClientUnavailable = errors.New("ledger client unavailable")
	ErrTransactionFailed = errors.New("transaction submission or confirmation failed")
	ErrInvalidAmount     = errors.New("donation amount must be a positive decimal")
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrActionInProgress  = errors.New("an action is already in progress for this campaign")
)
