package output

import (
	"encoding/json"
	"io"
)

// JSONWriter форматирует Result в JSON с отступами.
type JSONWriter struct{}

// NewJSONWriter создаёт JSONWriter.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// Write сериализует result. Summary переносится в metadata.summary
// без мутации исходного result.
func (j *JSONWriter) Write(w io.Writer, result *Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if result == nil || result.Summary == nil || result.Metadata == nil {
		return encoder.Encode(result)
	}

	out := *result
	meta := *result.Metadata
	meta.Summary = result.Summary
	out.Metadata = &meta
	return encoder.Encode(&out)
}
