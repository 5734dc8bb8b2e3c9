// SPDX-License-Identifier: Unlicense OR MIT

//go:build !linux
// +build !linux

package app

// threadID disables the toolkit thread check where thread ids are not
// available.
func threadID() int {
	return 0
}
