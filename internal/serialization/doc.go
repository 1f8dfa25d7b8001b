// Package serialization saves and loads named tensors in SafeTensors format.
//
// SafeTensors is the Hugging Face standard for storing weights:
//
//	Format Structure:
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON object]
//	  [Tensor data: raw little-endian bytes]
//
// The JSON header maps each tensor name to its dtype ("F32", "F64", "I32",
// "I64"), shape and [begin, end) data offsets relative to the start of the
// data section. An optional "__metadata__" entry holds string pairs. Tensors
// are written in alphabetical order, back to back. Scalars use shape [].
//
// Example usage:
//
//	// Save
//	err := serialization.WriteSafeTensors("model.safetensors",
//	    map[string]*tensor.Tensor[float64]{"weight": w, "bias": b},
//	    map[string]string{"format": "linear"})
//
//	// Load
//	file, err := serialization.ReadSafeTensors[float64]("model.safetensors")
//	w := file.Tensors["weight"]
package serialization
