package snapshot

import "errors"

var (
	// ErrInvalidDate signals a malformed target date. User-correctable;
	// no state changes anywhere.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrDataSourceUnavailable signals that the catalog store or the
	// booking ledger could not be read. A build is all-or-nothing, so
	// there is never a partial snapshot.
	ErrDataSourceUnavailable = errors.New("data source unavailable")

	// ErrBuildTimeout signals that a build exceeded its deadline. It is
	// handled exactly like ErrDataSourceUnavailable.
	ErrBuildTimeout = errors.New("snapshot build timed out")
)
