package output

import "io"

// Writer форматирует Result и записывает в w.
// Реализации: JSONWriter, TextWriter.
type Writer interface {
	Write(w io.Writer, result *Result) error
}

// TextRenderer реализуют payload-ы команд с собственным текстовым видом,
// например таблица сборок.
type TextRenderer interface {
	WriteText(w io.Writer) error
}
