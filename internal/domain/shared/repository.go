package shared

import "context"

// Filter holds common list parameters. Offset/Limit follow the
// (skip, limit) pagination contract; Limit <= 0 means the store default.
type Filter struct {
	Offset int
	Limit  int
}

// DefaultFilter returns a filter with the default page size
func DefaultFilter() Filter {
	return Filter{Offset: 0, Limit: 100}
}

// Normalize clamps the filter to sane bounds
func (f Filter) Normalize() Filter {
	if f.Offset < 0 {
		f.Offset = 0
	}
	if f.Limit <= 0 || f.Limit > 1000 {
		f.Limit = 100
	}
	return f
}

// TxManager runs a function inside a single transactional session.
// The session is released on every exit path; if fn returns an error
// the transaction is rolled back, otherwise it is committed.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
