// SPDX-License-Identifier: Unlicense OR MIT

// Package gtk implements the native toolkit on GTK 3 with X11 and
// Wayland support. It is excluded from builds with the nogtk tag.
package gtk
