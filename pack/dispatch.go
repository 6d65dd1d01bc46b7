package pack

import (
	"os"
	"strconv"
	"unsafe"
)

// Level identifies the SIMD instruction-set tier selected at startup.
type Level int

const (
	// LevelScalar indicates no SIMD; per-element fallback only.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	LevelSSE2

	// LevelAVX2 indicates AVX2 instructions (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 instructions (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON instructions (128-bit).
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected tier for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentWidth is the register width in bytes for the current tier.
// Set by init() in dispatch_*.go files. Never zero: scalar mode keeps a
// 16-byte nominal width so pack arithmetic stays well-defined.
var currentWidth int

// CurrentLevel returns the instruction-set tier being used.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current tier.
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv reports whether the LIGHTMAT_NO_SIMD environment variable is
// set. When set, the scalar tier is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("LIGHTMAT_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Width returns the number of lanes a Pack[T] holds with the current
// register width.
//
// For example, with a 128-bit tier:
//   - float32: 16/4 = 4 lanes
//   - float64: 16/8 = 2 lanes
func Width[T Lanes]() int {
	var dummy T
	return currentWidth / int(unsafe.Sizeof(dummy))
}

// HasNative reports whether T has a native vector register at the
// current tier. Floating-point types are natively supported on every
// non-scalar tier; integer types fall back to per-element code on the
// baseline tiers. The access-policy layer consults this before choosing
// a vectorized traversal.
func HasNative[T Lanes]() bool {
	if currentLevel == LevelScalar {
		return false
	}
	var dummy T
	switch any(dummy).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}
