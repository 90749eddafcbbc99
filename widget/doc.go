// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the Widget contract and a handful of
// representative widgets. Widgets are configuration values rebuilt
// every frame; persistent data such as press or hover state lives in
// state objects the widgets borrow, never own.
//
// Every widget participates in three passes: Layout resolves a
// layout.Node under limits, Hash contributes the widget's layout
// affecting fields to a fingerprint, and Draw emits primitives for a
// previously resolved layout.
package widget
