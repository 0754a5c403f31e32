package travis

import (
	"bytes"
	"io"
	"net/http"
)

// newResponse — локальная копия travistest.NewResponse: внутренние тесты
// не могут импортировать travistest из-за цикла импортов.
func newResponse(status int, body string, headers ...string) *http.Response {
	h := make(http.Header)
	for i := 0; i+1 < len(headers); i += 2 {
		h.Add(headers[i], headers[i+1])
	}
	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}
