package domain

import "errors"

var (
	// ErrInvalidParameters marks a parameter set rejected before any trial runs.
	ErrInvalidParameters = errors.New("invalid simulation parameters")

	// ErrUnknownAssetMix is returned for asset-mix keys outside the four recognised series.
	ErrUnknownAssetMix = errors.New("unknown asset mix")

	// ErrDataUnavailable means a historical series could not be supplied.
	ErrDataUnavailable = errors.New("historical data unavailable")
)
