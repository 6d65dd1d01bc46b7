//go:build !amd64 && !arm64

package pack

func init() {
	// Other architectures use the scalar tier for now.
	// A 16-byte nominal width keeps pack shapes consistent with the
	// 128-bit baseline tiers.
	currentLevel = LevelScalar
	currentWidth = 16
}
