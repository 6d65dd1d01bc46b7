//go:build arm64

package pack

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		currentLevel = LevelScalar
		currentWidth = 16
		return
	}

	// NEON (ASIMD) is part of the ARMv8-A base architecture, so this
	// branch is taken on every arm64 machine in practice.
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelNEON
		currentWidth = 16
	} else {
		currentLevel = LevelScalar
		currentWidth = 16
	}
}
