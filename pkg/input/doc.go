// Package input defines the viewer input event taxonomy and the static
// tables that translate browser event identifiers into internal codes:
// the key resolution table, the physical-code hook, and the pointer button
// remap. All tables are read-only and safe for concurrent use.
package input
