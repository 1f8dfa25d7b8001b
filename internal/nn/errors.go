package nn

import "errors"

// Common errors.
var (
	ErrEmpty          = errors.New("nn: no samples")
	ErrMissingTensor  = errors.New("nn: missing tensor in state dict")
	ErrBiasShape      = errors.New("nn: bias must be a scalar or match the output width")
	ErrWeightRank     = errors.New("nn: weight must be a 2D tensor")
	ErrParameterShape = errors.New("nn: parameter shape mismatch")
)
