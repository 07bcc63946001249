// Package psd holds a star's power spectral density as two aligned columns,
// frequency (µHz) and power (ppm²/µHz), and the band reductions used to
// estimate background levels from it.
//
// A [Series] is only obtainable through [New] or the readers, which enforce
// the invariants every consumer relies on: equal non-empty columns, strictly
// ascending positive frequencies on a uniform grid and finite non-negative
// power.
//
// # File format
//
// PSD files are whitespace-separated tables with one sample per row:
//
//	0.00791  1234.5
//	0.01582  1187.2
//
// Lines starting with '#' and blank lines are ignored. Columns after the
// second are ignored.
package psd
