// SPDX-License-Identifier: Unlicense OR MIT

//go:build linux && !nogtk
// +build linux,!nogtk

package gtk

/*
#cgo pkg-config: gtk+-3.0
#include <stdint.h>
#include <stdlib.h>
#include <gtk/gtk.h>
#include <gdk/gdk.h>
#ifdef GDK_WINDOWING_X11
#include <gdk/gdkx.h>
#endif
#ifdef GDK_WINDOWING_WAYLAND
#include <gdk/gdkwayland.h>
#endif

static void gtkwin_wakeup(void) {
	g_main_context_wakeup(NULL);
}

static int gtkwin_is_wayland(void) {
#ifdef GDK_WINDOWING_WAYLAND
	GdkDisplay *d = gdk_display_get_default();
	return d != NULL && GDK_IS_WAYLAND_DISPLAY(d);
#else
	return 0;
#endif
}

static int gtkwin_is_x11(void) {
#ifdef GDK_WINDOWING_X11
	GdkDisplay *d = gdk_display_get_default();
	return d != NULL && GDK_IS_X11_DISPLAY(d);
#else
	return 0;
#endif
}

static uintptr_t gtkwin_display_handle(int *screen) {
	GdkDisplay *d = gdk_display_get_default();
	*screen = 0;
	if (d == NULL) {
		return 0;
	}
#ifdef GDK_WINDOWING_X11
	if (GDK_IS_X11_DISPLAY(d)) {
		*screen = gdk_x11_screen_get_screen_number(gdk_display_get_default_screen(d));
		return (uintptr_t)gdk_x11_display_get_xdisplay(d);
	}
#endif
#ifdef GDK_WINDOWING_WAYLAND
	if (GDK_IS_WAYLAND_DISPLAY(d)) {
		return (uintptr_t)gdk_wayland_display_get_wl_display(d);
	}
#endif
	return 0;
}

static unsigned long gtkwin_x11_xid(GtkWidget *w) {
#ifdef GDK_WINDOWING_X11
	GdkWindow *g = gtk_widget_get_window(w);
	if (g != NULL && GDK_IS_X11_WINDOW(g)) {
		return gdk_x11_window_get_xid(g);
	}
#endif
	return 0;
}

static uintptr_t gtkwin_wl_surface(GtkWidget *w) {
#ifdef GDK_WINDOWING_WAYLAND
	GdkWindow *g = gtk_widget_get_window(w);
	if (g != NULL && GDK_IS_WAYLAND_WINDOW(g)) {
		return (uintptr_t)gdk_wayland_window_get_wl_surface(g);
	}
#endif
	return 0;
}

static int gtkwin_event_type(GdkEvent *ev) {
	return gdk_event_get_event_type(ev);
}

static void gtkwin_root_coords(GdkEvent *ev, double *x, double *y) {
	*x = 0;
	*y = 0;
	gdk_event_get_root_coords(ev, x, y);
}

static void gtkwin_coords(GdkEvent *ev, double *x, double *y) {
	*x = 0;
	*y = 0;
	gdk_event_get_coords(ev, x, y);
}

static guint32 gtkwin_event_time(GdkEvent *ev) {
	return gdk_event_get_time(ev);
}

static guint gtkwin_event_button(GdkEvent *ev) {
	guint b = 0;
	gdk_event_get_button(ev, &b);
	return b;
}

static void gtkwin_configure(GdkEvent *ev, int *x, int *y, int *w, int *h) {
	GdkEventConfigure *c = (GdkEventConfigure *)ev;
	*x = c->x;
	*y = c->y;
	*w = c->width;
	*h = c->height;
}

static void gtkwin_window_state(GdkEvent *ev, guint *changed, guint *state) {
	GdkEventWindowState *s = (GdkEventWindowState *)ev;
	*changed = s->changed_mask;
	*state = s->new_window_state;
}

static void gtkwin_window_bounds(GtkWidget *w, int *x, int *y, int *width, int *height) {
	GdkWindow *g = gtk_widget_get_window(w);
	*x = *y = *width = *height = 0;
	if (g == NULL) {
		return;
	}
	gdk_window_get_position(g, x, y);
	*width = gdk_window_get_width(g);
	*height = gdk_window_get_height(g);
}

static void gtkwin_set_double_buffered(GtkWidget *w, int on) {
	G_GNUC_BEGIN_IGNORE_DEPRECATIONS
	gtk_widget_set_double_buffered(w, on);
	G_GNUC_END_IGNORE_DEPRECATIONS
}

static void gtkwin_set_wmclass(GtkWindow *w, const char *name, const char *class) {
	G_GNUC_BEGIN_IGNORE_DEPRECATIONS
	gtk_window_set_wmclass(w, name, class);
	G_GNUC_END_IGNORE_DEPRECATIONS
}

static void gtkwin_set_size_hints(GtkWindow *w, int minw, int minh, int maxw, int maxh, int flags) {
	GdkGeometry g;
	g.min_width = minw;
	g.min_height = minh;
	g.max_width = maxw;
	g.max_height = maxh;
	gtk_window_set_geometry_hints(w, NULL, &g, (GdkWindowHints)flags);
}

static void gtkwin_set_passthrough(GtkWidget *w, int on) {
	GdkWindow *g = gtk_widget_get_window(w);
	if (g == NULL) {
		return;
	}
	if (on) {
		cairo_region_t *r = cairo_region_create();
		gdk_window_input_shape_combine_region(g, r, 0, 0);
		cairo_region_destroy(r);
	} else {
		gdk_window_input_shape_combine_region(g, NULL, 0, 0);
	}
}

static int gtkwin_set_cursor(GtkWidget *w, const char *name) {
	GdkWindow *g = gtk_widget_get_window(w);
	GdkCursor *c;
	if (g == NULL) {
		return 1;
	}
	c = gdk_cursor_new_from_name(gdk_window_get_display(g), name);
	if (c == NULL) {
		return 0;
	}
	gdk_window_set_cursor(g, c);
	g_object_unref(c);
	return 1;
}

static GdkDevice *gtkwin_pointer(void) {
	GdkDisplay *d = gdk_display_get_default();
	if (d == NULL) {
		return NULL;
	}
	return gdk_seat_get_pointer(gdk_display_get_default_seat(d));
}

static void gtkwin_warp_pointer(GtkWidget *w, int x, int y) {
	GdkWindow *g = gtk_widget_get_window(w);
	GdkDevice *p = gtkwin_pointer();
	int ox, oy;
	if (g == NULL || p == NULL) {
		return;
	}
	gdk_window_get_origin(g, &ox, &oy);
	gdk_device_warp(p, gdk_window_get_screen(g), ox + x, oy + y);
}

static int gtkwin_pointer_position(int *x, int *y) {
	GdkDevice *p = gtkwin_pointer();
	if (p == NULL) {
		return 0;
	}
	gdk_device_get_position(p, NULL, x, y);
	return 1;
}

static int gtkwin_n_monitors(void) {
	GdkDisplay *d = gdk_display_get_default();
	return d != NULL ? gdk_display_get_n_monitors(d) : 0;
}

static int gtkwin_monitor_index(GdkDisplay *d, GdkMonitor *m) {
	int i, n = gdk_display_get_n_monitors(d);
	for (i = 0; i < n; i++) {
		if (gdk_display_get_monitor(d, i) == m) {
			return i;
		}
	}
	return -1;
}

static int gtkwin_monitor(int i, int *x, int *y, int *w, int *h, int *scale, int *refresh, const char **model) {
	GdkDisplay *d = gdk_display_get_default();
	GdkMonitor *m;
	GdkRectangle r;
	if (d == NULL || (m = gdk_display_get_monitor(d, i)) == NULL) {
		return 0;
	}
	gdk_monitor_get_geometry(m, &r);
	*x = r.x;
	*y = r.y;
	*w = r.width;
	*h = r.height;
	*scale = gdk_monitor_get_scale_factor(m);
	*refresh = gdk_monitor_get_refresh_rate(m);
	*model = gdk_monitor_get_model(m);
	return 1;
}

static int gtkwin_primary_monitor(void) {
	GdkDisplay *d = gdk_display_get_default();
	GdkMonitor *m;
	if (d == NULL || (m = gdk_display_get_primary_monitor(d)) == NULL) {
		return -1;
	}
	return gtkwin_monitor_index(d, m);
}

static int gtkwin_window_monitor(GtkWidget *w) {
	GdkWindow *g = gtk_widget_get_window(w);
	GdkDisplay *d = gdk_display_get_default();
	GdkMonitor *m;
	if (g == NULL || d == NULL || (m = gdk_display_get_monitor_at_window(d, g)) == NULL) {
		return -1;
	}
	return gtkwin_monitor_index(d, m);
}

static void gtkwin_fullscreen_on_monitor(GtkWindow *w, int monitor) {
	gtk_window_fullscreen_on_monitor(w, gtk_window_get_screen(w), monitor);
}
*/
import "C"

import (
	"image"
	"unsafe"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"

	"gtkwin.org/app/internal/wm"
)

const (
	hintMinSize     = C.GDK_HINT_MIN_SIZE
	hintMaxSize     = C.GDK_HINT_MAX_SIZE
	eventTouchBegin = C.GDK_TOUCH_BEGIN
	currentTime     = C.GDK_CURRENT_TIME
)

// inputMask selects the events delivered to WireUp handlers.
const inputMask = C.GDK_POINTER_MOTION_MASK |
	C.GDK_BUTTON1_MOTION_MASK |
	C.GDK_BUTTON_PRESS_MASK |
	C.GDK_BUTTON_RELEASE_MASK |
	C.GDK_TOUCH_MASK |
	C.GDK_STRUCTURE_MASK |
	C.GDK_FOCUS_CHANGE_MASK |
	C.GDK_SCROLL_MASK |
	C.GDK_SMOOTH_SCROLL_MASK |
	C.GDK_ENTER_NOTIFY_MASK |
	C.GDK_LEAVE_NOTIFY_MASK |
	C.GDK_KEY_PRESS_MASK |
	C.GDK_KEY_RELEASE_MASK

// unlimited is the maximum size hint for an unconstrained dimension.
const unlimited = 1<<31 - 1

func widgetPtr(w *gtk.Window) *C.GtkWidget {
	return (*C.GtkWidget)(unsafe.Pointer(w.Native()))
}

func windowPtr(w *gtk.Window) *C.GtkWindow {
	return (*C.GtkWindow)(unsafe.Pointer(w.Native()))
}

func eventPtr(ev *gdk.Event) *C.GdkEvent {
	return (*C.GdkEvent)(unsafe.Pointer(ev.Native()))
}

func wakeup() {
	C.gtkwin_wakeup()
}

func isWayland() bool {
	return C.gtkwin_is_wayland() != 0
}

func isX11() bool {
	return C.gtkwin_is_x11() != 0
}

func displayHandle() wm.DisplayHandle {
	var screen C.int
	ptr := C.gtkwin_display_handle(&screen)
	h := wm.DisplayHandle{Display: uintptr(ptr), Screen: int(screen)}
	switch {
	case ptr == 0:
	case isX11():
		h.Kind = wm.HandleXlib
	case isWayland():
		h.Kind = wm.HandleWayland
	}
	return h
}

func windowHandle(w *gtk.Window) wm.WindowHandle {
	switch {
	case isX11():
		if xid := C.gtkwin_x11_xid(widgetPtr(w)); xid != 0 {
			return wm.WindowHandle{Kind: wm.HandleXlib, Window: uint64(xid)}
		}
	case isWayland():
		if s := C.gtkwin_wl_surface(widgetPtr(w)); s != 0 {
			return wm.WindowHandle{Kind: wm.HandleWayland, Surface: uintptr(s)}
		}
	}
	return wm.WindowHandle{}
}

func eventType(ev *gdk.Event) int {
	return int(C.gtkwin_event_type(eventPtr(ev)))
}

func rootCoords(ev *gdk.Event) (float64, float64) {
	var x, y C.double
	C.gtkwin_root_coords(eventPtr(ev), &x, &y)
	return float64(x), float64(y)
}

func coords(ev *gdk.Event) (float64, float64) {
	var x, y C.double
	C.gtkwin_coords(eventPtr(ev), &x, &y)
	return float64(x), float64(y)
}

func eventTime(ev *gdk.Event) uint32 {
	return uint32(C.gtkwin_event_time(eventPtr(ev)))
}

func eventButton(ev *gdk.Event) uint {
	return uint(C.gtkwin_event_button(eventPtr(ev)))
}

func configureGeometry(ev *gdk.Event) (x, y, w, h int) {
	var cx, cy, cw, ch C.int
	C.gtkwin_configure(eventPtr(ev), &cx, &cy, &cw, &ch)
	return int(cx), int(cy), int(cw), int(ch)
}

func windowState(ev *gdk.Event) (changed, state uint32) {
	var c, s C.guint
	C.gtkwin_window_state(eventPtr(ev), &c, &s)
	return uint32(c), uint32(s)
}

func windowBounds(w *gtk.Window) (x, y, width, height int) {
	var cx, cy, cw, ch C.int
	C.gtkwin_window_bounds(widgetPtr(w), &cx, &cy, &cw, &ch)
	return int(cx), int(cy), int(cw), int(ch)
}

func setDoubleBuffered(w *gtk.Window, on bool) {
	C.gtkwin_set_double_buffered(widgetPtr(w), cbool(on))
}

func setWMClass(w *gtk.Window, name, class string) {
	cname, cclass := C.CString(name), C.CString(class)
	defer C.free(unsafe.Pointer(cname))
	defer C.free(unsafe.Pointer(cclass))
	C.gtkwin_set_wmclass(windowPtr(w), cname, cclass)
}

func setSizeHints(w *gtk.Window, min, max *image.Point) {
	var flags int
	var minw, minh, maxw, maxh = 0, 0, unlimited, unlimited
	if min != nil {
		flags |= hintMinSize
		minw, minh = min.X, min.Y
	}
	if max != nil {
		flags |= hintMaxSize
		maxw, maxh = max.X, max.Y
	}
	C.gtkwin_set_size_hints(windowPtr(w), C.int(minw), C.int(minh), C.int(maxw), C.int(maxh), C.int(flags))
}

func setPassthrough(w *gtk.Window, on bool) {
	C.gtkwin_set_passthrough(widgetPtr(w), cbool(on))
}

// setCursor shows the named cursor over a realized window. It reports
// false if the display has no such cursor.
func setCursor(w *gtk.Window, name string) bool {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.gtkwin_set_cursor(widgetPtr(w), cname) != 0
}

func warpPointer(w *gtk.Window, x, y int) {
	C.gtkwin_warp_pointer(widgetPtr(w), C.int(x), C.int(y))
}

func pointerPosition() (x, y int, ok bool) {
	var cx, cy C.int
	if C.gtkwin_pointer_position(&cx, &cy) == 0 {
		return 0, 0, false
	}
	return int(cx), int(cy), true
}

func monitorCount() int {
	return int(C.gtkwin_n_monitors())
}

func monitorAt(i int) (wm.Monitor, bool) {
	var x, y, w, h, scale, refresh C.int
	var model *C.char
	if C.gtkwin_monitor(C.int(i), &x, &y, &w, &h, &scale, &refresh, &model) == 0 {
		return wm.Monitor{}, false
	}
	m := wm.Monitor{
		Index:       i,
		Bounds:      image.Rect(int(x), int(y), int(x+w), int(y+h)),
		Scale:       int(scale),
		RefreshRate: int(refresh),
	}
	if model != nil {
		m.Name = C.GoString(model)
	}
	return m, true
}

func primaryMonitor() int {
	return int(C.gtkwin_primary_monitor())
}

func windowMonitor(w *gtk.Window) int {
	return int(C.gtkwin_window_monitor(widgetPtr(w)))
}

func fullscreenOnMonitor(w *gtk.Window, monitor int) {
	C.gtkwin_fullscreen_on_monitor(windowPtr(w), C.int(monitor))
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
