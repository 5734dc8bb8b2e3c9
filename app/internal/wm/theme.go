// SPDX-License-Identifier: Unlicense OR MIT

package wm

import "strings"

var darkSuffixes = []string{"-dark", "-Dark", "-Darker"}

// LightThemeName returns the light variant of a toolkit theme name by
// removing a dark suffix, as in "Adwaita-dark".
func LightThemeName(name string) string {
	for _, s := range darkSuffixes {
		if strings.HasSuffix(name, s) {
			return strings.TrimSuffix(name, s)
		}
	}
	return name
}
