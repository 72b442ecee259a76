package store

import "errors"

var (
	// ErrConfigNotFound indicates the sync configuration row has never
	// been created for this installation.
	ErrConfigNotFound = errors.New("sync config not found")

	// ErrRecordNotFound indicates the requested record does not exist in
	// the local replica.
	ErrRecordNotFound = errors.New("record not found")
)
