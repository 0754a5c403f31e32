package transport

import (
	"fmt"
	"net/http"

	"github.com/Kargones/travis/travis"
	"golang.org/x/time/rate"
)

// RateLimited ограничивает частоту запросов к Travis до отправки,
// чтобы реже получать 429 от API.
type RateLimited struct {
	next    travis.Transport
	limiter *rate.Limiter
}

var _ travis.Transport = (*RateLimited)(nil)

// NewRateLimited оборачивает next ограничителем rps запросов в секунду с пиком burst.
// rps <= 0 отключает ограничение и возвращает next как есть.
func NewRateLimited(next travis.Transport, rps float64, burst int) travis.Transport {
	if rps <= 0 {
		return next
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{next: next, limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Do ждёт разрешения ограничителя с учётом контекста запроса.
// Отмена контекста во время ожидания возвращает ошибку без отправки запроса.
func (t *RateLimited) Do(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("ожидание ограничителя частоты: %w", err)
	}
	return t.next.Do(req)
}
