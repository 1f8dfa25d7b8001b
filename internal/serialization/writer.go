package serialization

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/nlpodyssey/safetensors"

	"github.com/born-ml/minitensor/internal/tensor"
)

// SafeTensorsWriter writes tensors in SafeTensors format to a file.
type SafeTensorsWriter struct {
	file   *os.File
	closed bool
}

// NewSafeTensorsWriter creates a new SafeTensors file writer.
func NewSafeTensorsWriter(path string) (*SafeTensorsWriter, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return &SafeTensorsWriter{
		file:   file,
		closed: false,
	}, nil
}

// WriteSafeTensors writes tensors to a SafeTensors file at path.
func WriteSafeTensors[T tensor.Numeric](path string, tensors map[string]*tensor.Tensor[T], metadata map[string]string) error {
	writer, err := NewSafeTensorsWriter(path)
	if err != nil {
		return err
	}

	if err := WriteTo(writer.file, tensors, metadata); err != nil {
		_ = writer.Close() // Best effort close, the write error wins
		return err
	}
	return writer.Close()
}

// Close closes the writer and the underlying file.
func (w *SafeTensorsWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}

// WriteTo serializes tensors in SafeTensors format to an io.Writer.
//
// Tensors are written in alphabetical order by name.
func WriteTo[T tensor.Numeric](w io.Writer, tensors map[string]*tensor.Tensor[T], metadata map[string]string) error {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]safetensors.Tensor, len(names))
	for i, name := range names {
		st, err := toSafeTensors(name, tensors[name])
		if err != nil {
			return err
		}
		list[i] = st
	}

	bw := bufio.NewWriter(w)
	if err := safetensors.Serialize(bw, list, metadata); err != nil {
		return fmt.Errorf("failed to serialize tensors: %w", err)
	}
	return bw.Flush()
}
