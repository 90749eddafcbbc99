// SPDX-License-Identifier: Unlicense OR MIT

// Package platform holds window settings specific to a platform.
// The settings are carried to window creation and never read by
// layout.
package platform

// Specific is the platform specific window settings of an
// application.
type Specific struct {
	// ID identifies the window to the compositor. Nil leaves the
	// choice to the windowing system.
	ID *WindowID
}

// WindowID names a window on Wayland and X11.
type WindowID struct {
	// Instance is the instance name, the first half of the X11
	// WM_CLASS property.
	Instance string
	// General is the class name shared by all windows of the
	// application. It is also the Wayland app_id.
	General string
}

// WMClass returns the X11 WM_CLASS property value: the instance and
// general names, each terminated by a NUL byte.
func (id WindowID) WMClass() []byte {
	b := make([]byte, 0, len(id.Instance)+len(id.General)+2)
	b = append(b, id.Instance...)
	b = append(b, 0)
	b = append(b, id.General...)
	return append(b, 0)
}

// AppID returns the Wayland application id.
func (id WindowID) AppID() string {
	return id.General
}

func (id WindowID) String() string {
	return id.General + "." + id.Instance
}
