package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// SupportedFormats returns the names of all supported formats.
func SupportedFormats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return false
	default:
		return true
	}
}

// Serializer writes a value in some format.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is implemented by serializers that own their destination.
type Closer interface {
	Close() error
}

// TextRenderer is implemented by values with a dedicated human-readable
// rendering. FormatText uses it when available.
type TextRenderer interface {
	RenderText(w io.Writer) error
}

// Writer serializes values to an io.Writer.
type Writer struct {
	format Format
	out    io.Writer
	closer io.Closer
	once   sync.Once
}

// NewWriter returns a Writer for out. Unknown formats fall back to JSON.
// A nil out means stdout.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	if out == nil {
		out = os.Stdout
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter returns a Writer for stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout returns a Writer for path, or for stdout when path
// is blank or StdoutURI. The file is created or truncated.
func NewFileWriterOrStdout(format Format, path string) (Serializer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}

	w := NewWriter(format, f)
	w.closer = f
	return w, nil
}

// Serialize writes v in the writer's format.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	switch w.format {
	case FormatText:
		return w.serializeText(v)
	case FormatYAML:
		return w.serializeYAML(v)
	default:
		return w.serializeJSON(v)
	}
}

// Close releases the destination if the writer owns it. It is safe to call
// more than once.
func (w *Writer) Close() error {
	var err error
	w.once.Do(func() {
		if w.closer != nil {
			err = w.closer.Close()
		}
	})
	return err
}

func (w *Writer) serializeText(v any) error {
	if r, ok := v.(TextRenderer); ok {
		if err := r.RenderText(w.out); err != nil {
			return fmt.Errorf("failed to render text: %w", err)
		}
		return nil
	}
	if _, err := fmt.Fprintf(w.out, "%+v\n", v); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	return nil
}

func (w *Writer) serializeJSON(v any) error {
	j, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize to json: %w", err)
	}
	if _, err := fmt.Fprintln(w.out, string(j)); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}

func (w *Writer) serializeYAML(v any) error {
	enc := yaml.NewEncoder(w.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush yaml: %w", err)
	}
	return nil
}
