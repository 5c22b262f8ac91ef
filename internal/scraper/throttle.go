package scraper

import "time"

// Limiter is a static courtesy throttle: a fixed, unconditional delay after
// every page and every product, with no jitter or backoff.
type Limiter struct {
	page    time.Duration
	product time.Duration
	sleep   func(time.Duration)
}

func NewLimiter(page, product time.Duration) *Limiter {
	return &Limiter{page: page, product: product, sleep: time.Sleep}
}

func (l *Limiter) Page()    { l.sleep(l.page) }
func (l *Limiter) Product() { l.sleep(l.product) }
