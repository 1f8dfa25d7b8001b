package serialization

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/nlpodyssey/safetensors"
	"github.com/nlpodyssey/safetensors/header"

	"github.com/born-ml/minitensor/internal/tensor"
)

// File is the decoded content of a SafeTensors stream.
type File[T tensor.Numeric] struct {
	Tensors  map[string]*tensor.Tensor[T]
	Metadata map[string]string
}

// Names returns the tensor names in alphabetical order.
func (f *File[T]) Names() []string {
	names := make([]string, 0, len(f.Tensors))
	for name := range f.Tensors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tensor returns the named tensor or ErrTensorNotFound.
func (f *File[T]) Tensor(name string) (*tensor.Tensor[T], error) {
	t, ok := f.Tensors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTensorNotFound, name)
	}
	return t, nil
}

// ReadSafeTensors reads a SafeTensors file, converting every tensor to T.
func ReadSafeTensors[T tensor.Numeric](path string) (*File[T], error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close() // Best effort close for a read-only file
	}()

	return ReadFrom[T](bufio.NewReader(file))
}

// ReadFrom reads a SafeTensors stream, converting every tensor to T.
//
// The header is checked for tensor names, dtypes, shapes and data offsets
// before any tensor data is decoded.
func ReadFrom[T tensor.Numeric](r io.Reader) (*File[T], error) {
	var size [8]byte
	if _, err := io.ReadFull(r, size[:]); err != nil {
		return nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize := binary.LittleEndian.Uint64(size[:]); headerSize > MaxHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read tensor data: %w", err)
	}
	buf := append(size[:], rest...)

	head, err := header.Read(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	if err := validateHeader(head, int64(len(buf)-head.ByteBufferOffset)); err != nil {
		return nil, err
	}

	st, err := safetensors.ReadAll(bytes.NewReader(buf), 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read tensors: %w", err)
	}

	out := &File[T]{
		Tensors:  make(map[string]*tensor.Tensor[T], len(st.Tensors)),
		Metadata: st.Metadata,
	}
	for _, t := range st.Tensors {
		values, err := fromSafeTensors[T](t)
		if err != nil {
			return nil, fmt.Errorf("tensor %s: %w", t.Name(), err)
		}
		tt, err := tensor.FromSlice(values, tensor.Shape(t.Shape()))
		if err != nil {
			return nil, fmt.Errorf("tensor %s: %w", t.Name(), err)
		}
		out.Tensors[t.Name()] = tt
	}

	return out, nil
}

// validateHeader applies name, dtype, offset and shape checks to a parsed
// header, then the format's own consistency rules.
func validateHeader(head header.Header, dataSize int64) error {
	spans := make([]tensorSpan, 0, len(head.Tensors))
	for name, ht := range head.Tensors {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		if !supported(ht.DType) {
			return fmt.Errorf("tensor %s: %w: %s", name, ErrUnsupportedDType, ht.DType)
		}
		spans = append(spans, tensorSpan{
			Name:   name,
			Offset: int64(ht.DataOffsets.Begin),
			Size:   int64(ht.DataOffsets.End - ht.DataOffsets.Begin),
		})
	}
	if err := validateTensorOffsets(spans, dataSize); err != nil {
		return err
	}

	for name, ht := range head.Tensors {
		shape := tensor.Shape(ht.Shape)
		if err := shape.Validate(); err != nil {
			return fmt.Errorf("tensor %s: %w", name, err)
		}
		size, span := ht.DType.Size(), ht.DataOffsets.End-ht.DataOffsets.Begin
		if span%size != 0 || span/size != shape.NumElements() {
			return fmt.Errorf("%w: tensor %s has shape %v but %d data bytes", tensor.ErrInvalidShape, name, shape, span)
		}
	}

	if err := head.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHeader, err)
	}
	return nil
}
