package serialization

import (
	"fmt"
	"sort"
	"strings"
)

// Validation limits for security and resource protection.
const (
	MaxHeaderSize    = 100 * 1024 * 1024 // 100MB - maximum header size
	MaxTensorCount   = 100_000           // Maximum number of tensors in a file
	MaxTensorNameLen = 4096              // Maximum tensor name length
)

// tensorSpan is the data region of one tensor.
type tensorSpan struct {
	Name   string
	Offset int64
	Size   int64
}

// validateTensorOffsets checks for overlapping tensor offsets and out-of-bounds access.
func validateTensorOffsets(spans []tensorSpan, dataSize int64) error {
	if len(spans) > MaxTensorCount {
		return &ValidationError{
			Type:    "too_many_tensors",
			Details: fmt.Sprintf("got %d, max %d", len(spans), MaxTensorCount),
			Err:     ErrOutOfBounds,
		}
	}

	sorted := make([]tensorSpan, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	for i, t := range sorted {
		if t.Offset < 0 || t.Size < 0 {
			return &ValidationError{
				Type:    "negative_offset",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset=%d, size=%d (negative values not allowed)", t.Offset, t.Size),
				Err:     ErrOutOfBounds,
			}
		}

		if t.Offset+t.Size > dataSize {
			return &ValidationError{
				Type:    "out_of_bounds",
				Tensor:  t.Name,
				Details: fmt.Sprintf("offset %d + size %d > data_size %d", t.Offset, t.Size, dataSize),
				Err:     ErrOutOfBounds,
			}
		}

		if i < len(sorted)-1 {
			next := sorted[i+1]
			if t.Offset+t.Size > next.Offset {
				return &ValidationError{
					Type:    "offset_overlap",
					Tensor:  t.Name,
					Tensor2: next.Name,
					Details: fmt.Sprintf("regions [%d-%d] and [%d-%d] overlap",
						t.Offset, t.Offset+t.Size, next.Offset, next.Offset+next.Size),
					Err: ErrOutOfBounds,
				}
			}
		}
	}

	return nil
}

// ValidateTensorName rejects empty names, the reserved metadata key, and
// names carrying path separators, ".." or null bytes.
func ValidateTensorName(name string) error {
	invalid := func(details string) error {
		return &ValidationError{Type: "invalid_name", Tensor: name, Details: details, Err: ErrInvalidTensorName}
	}

	switch {
	case name == "":
		return invalid("empty name")
	case name == metadataKey:
		return invalid("reserved name")
	case len(name) > MaxTensorNameLen:
		return invalid(fmt.Sprintf("length %d > max %d", len(name), MaxTensorNameLen))
	case strings.Contains(name, ".."):
		return invalid("contains '..'")
	case strings.ContainsAny(name, "/\\"):
		return invalid("contains path separator (/ or \\)")
	case strings.Contains(name, "\x00"):
		return invalid("contains null byte")
	}
	return nil
}
