// Package textutil provides small text helpers shared by the rendering
// layers: a generic conditional and rune-aware truncation for table cells.
package textutil
