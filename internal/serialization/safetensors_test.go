package serialization

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/nlpodyssey/safetensors/dtype"
	"github.com/nlpodyssey/safetensors/header"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/minitensor/internal/tensor"
)

func mustMatrix(t *testing.T, rows [][]float64) *tensor.Tensor[float64] {
	t.Helper()
	m, err := tensor.Matrix(rows)
	require.NoError(t, err)
	return m
}

// rawFile builds a SafeTensors stream from a literal header and data section.
func rawFile(header string, data []byte) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint64(len(header)))
	buf.WriteString(header)
	buf.Write(data)
	return buf.Bytes()
}

func TestRoundTrip_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.safetensors")
	weight := mustMatrix(t, [][]float64{{2}, {-0.5}})
	bias := tensor.Scalar(1.25)

	err := WriteSafeTensors(path, map[string]*tensor.Tensor[float64]{
		"weight": weight,
		"bias":   bias,
	}, map[string]string{"format": "linear"})
	require.NoError(t, err)

	file, err := ReadSafeTensors[float64](path)
	require.NoError(t, err)

	assert.Equal(t, []string{"bias", "weight"}, file.Names())
	assert.Equal(t, map[string]string{"format": "linear"}, file.Metadata)

	gotW, err := file.Tensor("weight")
	require.NoError(t, err)
	assert.True(t, weight.Equal(gotW), gotW.String())

	gotB, err := file.Tensor("bias")
	require.NoError(t, err)
	assert.Equal(t, 0, gotB.Rank())
	assert.True(t, bias.Equal(gotB), gotB.String())

	_, err = file.Tensor("missing")
	assert.ErrorIs(t, err, ErrTensorNotFound)
}

func TestWriteTo_Layout(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTo(&buf, map[string]*tensor.Tensor[int32]{
		"b": tensor.Vector([]int32{3}),
		"a": tensor.Vector([]int32{1, 2}),
	}, nil)
	require.NoError(t, err)

	raw := buf.Bytes()
	head, err := header.Read(bytes.NewReader(raw))
	require.NoError(t, err)
	require.NoError(t, head.Validate())
	require.Len(t, head.Tensors, 2)

	a, b := head.Tensors["a"], head.Tensors["b"]
	assert.Equal(t, dtype.I32, a.DType)
	assert.Equal(t, []int{2}, []int(a.Shape))
	assert.Equal(t, header.DataOffsets{Begin: 0, End: 8}, a.DataOffsets)
	assert.Equal(t, dtype.I32, b.DType)
	assert.Equal(t, header.DataOffsets{Begin: 8, End: 12}, b.DataOffsets)
	assert.Zero(t, head.ByteBufferOffset%8, "header is padded to 8 bytes")

	data := raw[head.ByteBufferOffset:]
	require.Len(t, data, 12)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(data[0:]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(data[4:]))
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(data[8:]))
}

func TestWriteTo_ScalarAndIntLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, map[string]*tensor.Tensor[int]{"s": tensor.Scalar(-3)}, nil))

	head, err := header.Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	s := head.Tensors["s"]
	assert.Equal(t, dtype.I64, s.DType)
	assert.Empty(t, s.Shape)
	assert.Equal(t, header.DataOffsets{Begin: 0, End: 8}, s.DataOffsets)
}

func TestReadFrom_ConvertsDTypes(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTo(&buf, map[string]*tensor.Tensor[int]{
		"m": mustInt(t, [][]int{{1, -2}, {3, 4}}),
	}, nil)
	require.NoError(t, err)

	file, err := ReadFrom[float64](&buf)
	require.NoError(t, err)
	m, err := file.Tensor("m")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, m.Shape())
	assert.Equal(t, []float64{1, -2, 3, 4}, m.Data())
}

func TestRoundTrip_Float32(t *testing.T) {
	var buf bytes.Buffer
	in := tensor.Vector([]float32{0.5, -1.5})
	require.NoError(t, WriteTo(&buf, map[string]*tensor.Tensor[float32]{"v": in}, nil))

	file, err := ReadFrom[float32](&buf)
	require.NoError(t, err)
	assert.True(t, in.Equal(file.Tensors["v"]))
}

func TestWriteTo_InvalidName(t *testing.T) {
	for _, name := range []string{"", "../etc", "a/b", metadataKey, "nul\x00"} {
		var buf bytes.Buffer
		err := WriteTo(&buf, map[string]*tensor.Tensor[float64]{name: tensor.Scalar(1.0)}, nil)
		assert.ErrorIs(t, err, ErrInvalidTensorName, "name %q", name)
	}
}

func TestReadFrom_Errors(t *testing.T) {
	eight := make([]byte, 8)

	tests := []struct {
		name   string
		stream []byte
		want   error
	}{
		{
			name:   "out of bounds",
			stream: rawFile(`{"x":{"dtype":"F64","shape":[2],"data_offsets":[0,16]}}`, eight),
			want:   ErrOutOfBounds,
		},
		{
			name: "overlap",
			stream: rawFile(`{"x":{"dtype":"F64","shape":[1],"data_offsets":[0,8]},`+
				`"y":{"dtype":"F64","shape":[1],"data_offsets":[4,12]}}`, make([]byte, 16)),
			want: ErrOutOfBounds,
		},
		{
			name:   "negative offset",
			stream: rawFile(`{"x":{"dtype":"F64","shape":[1],"data_offsets":[-8,0]}}`, eight),
			want:   ErrInvalidHeader,
		},
		{
			name:   "gap before first tensor",
			stream: rawFile(`{"x":{"dtype":"F64","shape":[1],"data_offsets":[8,16]}}`, make([]byte, 16)),
			want:   ErrInvalidHeader,
		},
		{
			name:   "unknown dtype",
			stream: rawFile(`{"x":{"dtype":"Q4","shape":[1],"data_offsets":[0,8]}}`, eight),
			want:   ErrInvalidHeader,
		},
		{
			name:   "element count overflows",
			stream: rawFile(`{"x":{"dtype":"F64","shape":[4294967296,4294967296],"data_offsets":[0,0]}}`, nil),
			want:   tensor.ErrInvalidShape,
		},
		{
			name:   "unsupported dtype",
			stream: rawFile(`{"x":{"dtype":"BF16","shape":[4],"data_offsets":[0,8]}}`, eight),
			want:   ErrUnsupportedDType,
		},
		{
			name:   "bad name",
			stream: rawFile(`{"../x":{"dtype":"F64","shape":[1],"data_offsets":[0,8]}}`, eight),
			want:   ErrInvalidTensorName,
		},
		{
			name:   "shape does not match data",
			stream: rawFile(`{"x":{"dtype":"F64","shape":[3],"data_offsets":[0,8]}}`, eight),
			want:   tensor.ErrInvalidShape,
		},
		{
			name:   "rank 3",
			stream: rawFile(`{"x":{"dtype":"F64","shape":[1,1,1],"data_offsets":[0,8]}}`, eight),
			want:   tensor.ErrRankTooHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFrom[float64](bytes.NewReader(tt.stream))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReadFrom_SmallerDTypes(t *testing.T) {
	stream := rawFile(`{"__metadata__":{"k":"v"},"x":{"dtype":"I16","shape":[2],"data_offsets":[0,4]}}`,
		[]byte{0xff, 0xff, 0x02, 0x00})

	file, err := ReadFrom[int](bytes.NewReader(stream))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "v"}, file.Metadata)
	assert.Equal(t, []int{-1, 2}, file.Tensors["x"].Data())
}

func TestReadFrom_HeaderTooLarge(t *testing.T) {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint64(MaxHeaderSize+1))
	_, err := ReadFrom[float64](&buf)
	assert.ErrorIs(t, err, ErrHeaderTooLarge)
}

func TestReadFrom_Truncated(t *testing.T) {
	_, err := ReadFrom[float64](bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)

	_, err = ReadFrom[float64](bytes.NewReader(rawFile(`{"x":`, nil)))
	assert.Error(t, err)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Type: "offset_overlap", Tensor: "a", Tensor2: "b", Details: "regions overlap"}
	assert.Equal(t, `offset_overlap: tensors "a" and "b": regions overlap`, err.Error())

	err = &ValidationError{Type: "too_many_tensors", Details: "got 2"}
	assert.Equal(t, "too_many_tensors: got 2", err.Error())
}

func mustInt(t *testing.T, rows [][]int) *tensor.Tensor[int] {
	t.Helper()
	m, err := tensor.Matrix(rows)
	require.NoError(t, err)
	return m
}
