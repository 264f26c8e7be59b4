// SPDX-License-Identifier: Apache-2.0

package refsuite

// Fixed-width aliases matching the target binary's types header. The
// reference functions are defined on S32 so that overflow wraps exactly
// like the 32-bit int arithmetic in the compiled target.
type (
	S8  = int8
	S16 = int16
	S32 = int32
	S64 = int64

	U8  = uint8
	U16 = uint16
	U32 = uint32
	U64 = uint64

	F32 = float32
	F64 = float64

	// Pointer-sized. Go has no signed counterpart to uintptr, so the
	// header's signed pointer alias has no rendition here.
	UPtr = uintptr
)
