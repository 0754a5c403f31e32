package travistest

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/Kargones/travis/travis"
)

// NewResponse создаёт *http.Response с заданным статусом и телом.
// headers — пары ключ/значение.
func NewResponse(status int, body string, headers ...string) *http.Response {
	h := make(http.Header)
	for i := 0; i+1 < len(headers); i += 2 {
		h.Add(headers[i], headers[i+1])
	}
	if h.Get("Content-Type") == "" {
		h.Set("Content-Type", "application/json")
	}
	return &http.Response{
		Status:        strconv.Itoa(status) + " " + http.StatusText(status),
		StatusCode:    status,
		Header:        h,
		Body:          io.NopCloser(bytes.NewBufferString(body)),
		ContentLength: int64(len(body)),
	}
}

// RecordedRequest — снимок запроса, прошедшего через Recorder.
type RecordedRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Recorder — Transport, записывающий запросы и отвечающий через Respond.
// Безопасен для конкурентного использования.
type Recorder struct {
	// Respond формирует ответ на запрос. nil — всегда 200 "{}".
	Respond func(req *http.Request) (*http.Response, error)

	mu       sync.Mutex
	requests []RecordedRequest
}

var _ travis.Transport = (*Recorder)(nil)

// NewRecorder создаёт Recorder с функцией ответа.
func NewRecorder(respond func(req *http.Request) (*http.Response, error)) *Recorder {
	return &Recorder{Respond: respond}
}

// StaticRecorder отвечает одним и тем же статусом и телом на любой запрос.
func StaticRecorder(status int, body string, headers ...string) *Recorder {
	return NewRecorder(func(*http.Request) (*http.Response, error) {
		return NewResponse(status, body, headers...), nil
	})
}

// Do записывает запрос и возвращает ответ Respond.
func (r *Recorder) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		_ = req.Body.Close() //nolint:errcheck // тело прочитано
		body = data
		req.Body = io.NopCloser(bytes.NewReader(data))
	}

	r.mu.Lock()
	r.requests = append(r.requests, RecordedRequest{
		Method: req.Method,
		URL:    req.URL.String(),
		Header: req.Header.Clone(),
		Body:   body,
	})
	r.mu.Unlock()

	if r.Respond == nil {
		resp := NewResponse(http.StatusOK, "{}")
		resp.Request = req
		return resp, nil
	}
	resp, err := r.Respond(req)
	if resp != nil && resp.Request == nil {
		resp.Request = req
	}
	return resp, err
}

// Requests возвращает копию записанных запросов.
func (r *Recorder) Requests() []RecordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedRequest, len(r.requests))
	copy(out, r.requests)
	return out
}

// Last возвращает последний запрос. ok=false если запросов не было.
func (r *Recorder) Last() (RecordedRequest, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		return RecordedRequest{}, false
	}
	return r.requests[len(r.requests)-1], true
}
