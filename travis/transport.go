package travis

import "net/http"

// Transport отправляет HTTP запрос и возвращает ответ.
// *http.Client удовлетворяет интерфейсу. Таймауты, TLS и пул соединений
// целиком на стороне Transport.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportFunc позволяет использовать функцию как Transport.
type TransportFunc func(req *http.Request) (*http.Response, error)

// Do вызывает f(req).
func (f TransportFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}
