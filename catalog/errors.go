package catalog

import "errors"

// sentinel errors surfaced by Store.Load. the underlying I/O error is logged
// server-side only; clients never see file paths or parser details.
var (
	// ErrDataUnavailable means the catalog resource is missing or unreadable.
	ErrDataUnavailable = errors.New("catalog data source unavailable")

	// ErrDataFormat means the resource exists but is not valid JSON.
	ErrDataFormat = errors.New("catalog data format error")

	// ErrDataShape means the resource parsed but is missing the people list.
	ErrDataShape = errors.New("catalog data has invalid structure: missing people array")
)
