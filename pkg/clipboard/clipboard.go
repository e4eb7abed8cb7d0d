// Package clipboard exports link lists to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/zromick/linkscrape/pkg/links"
)

// ErrUnavailable is returned when no clipboard mechanism exists on this
// system.
var ErrUnavailable = errors.New("clipboard not available")

// Writer writes a string to a clipboard. The system implementation talks
// to the real clipboard; tests substitute their own.
type Writer interface {
	Write(text string) error
}

type systemWriter struct{}

func (systemWriter) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// NewSystemWriter returns a Writer backed by the OS clipboard.
func NewSystemWriter() Writer {
	return systemWriter{}
}

// CopyLinks writes urls to w, newline-joined in the given order. The
// slice is never modified; a failed write only produces an error.
func CopyLinks(w Writer, urls []string) error {
	if err := w.Write(links.Join(urls)); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
