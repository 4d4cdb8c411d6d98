// logutil.go - Gemeinsamer slog-Logger fuer Server und CLI
package logutil

import (
	"io"
	"log/slog"
	"path/filepath"
)

// NewLogger returns a text slog logger writing to w at the given level,
// with source file names shortened to their base.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}
