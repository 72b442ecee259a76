package service

import "errors"

var (
	// ErrNotPaired is a local configuration error: the device has no sync
	// configuration, so sync operations fail fast without a network call.
	ErrNotPaired = errors.New("device is not paired")

	// ErrNotMaster guards master-only operations.
	ErrNotMaster = errors.New("operation requires the master role")

	// ErrAlreadyPaired guards bootstrap and claim on a configured device.
	ErrAlreadyPaired = errors.New("device is already paired")

	// ErrNoClaimedPayload means RegisterSlave was called before a
	// successful Claim.
	ErrNoClaimedPayload = errors.New("no claimed pairing payload")

	// ErrPayloadVersion means the claimed payload carries a version this
	// build does not understand.
	ErrPayloadVersion = errors.New("unsupported pairing payload version")

	// ErrPromotionRejected means the relay refused the promotion request.
	ErrPromotionRejected = errors.New("promotion rejected by relay")
)
