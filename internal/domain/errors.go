package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance  = errors.New("not enough balance")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrOwnerConflict     = errors.New("owner conflict")
	ErrUnbalancedSplit   = errors.New("allocations do not sum to total")
	ErrIdempotencyReplay = errors.New("idempotency key already used")
	ErrTypeSignMismatch  = errors.New("transaction type does not match amount sign")
	ErrNoParticipants    = errors.New("no participants")
)
