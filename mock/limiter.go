package mock

import (
	"context"

	"github.com/fwojciec/ngoscan"
)

var _ ngoscan.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of ngoscan.DomainLimiter.
// When WaitFn is unset, Wait returns immediately.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn == nil {
		return nil
	}
	return l.WaitFn(ctx, domain)
}
