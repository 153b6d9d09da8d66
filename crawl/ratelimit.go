package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/navdoc"
	"golang.org/x/time/rate"
)

var _ navdoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out page requests with one token bucket per domain.
// An export only talks to one host, so in practice it paces the whole run.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each domain, without bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
	}
}

// Wait blocks until the domain's bucket has a token.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiter(domain).Wait(ctx)
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.limiters[domain]
	if !ok {
		l = rate.NewLimiter(d.limit, 1)
		d.limiters[domain] = l
	}
	return l
}
