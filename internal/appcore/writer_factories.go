package appcore

import (
	"io"

	"strtrace/internal/engine"
	"strtrace/internal/output"
	"strtrace/internal/pretty"
	"strtrace/internal/writers"
)

// ResultWriterFactory starts the writer for one output format.
type ResultWriterFactory struct {
	Format string
	Config writers.Config
}

// NewResultWriterFactory maps CLI switches onto writer settings.
func NewResultWriterFactory(format string, header, prettyMode, steps bool) ResultWriterFactory {
	return ResultWriterFactory{
		Format: format,
		Config: writers.Config{
			Header:        header,
			Pretty:        prettyMode && format == output.FormatText,
			PrettyOptions: pretty.DefaultOptions,
			Output:        output.Options{Steps: steps},
		},
	}
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	return writers.StartResultWriter(out, w.Format, w.Config, bufSize)
}
