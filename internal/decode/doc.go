// Package decode implements the frame decoding engine: length
// reconciliation, bit-level signal extraction and statistics aggregation,
// orchestrated by a single-pass pipeline.
//
// The engine is pure computation. It does no I/O and no logging; malformed
// input frames become data (length adjustments, decode errors) rather than
// propagated failures.
package decode
