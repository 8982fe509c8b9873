package format

// Package format turns timestamps, byte counts, durations and scaled-integer
// bonus point values into display strings. Host dependent inputs (clock,
// time zone, language, month names) are injected through Formatter so output
// is deterministic under test. Nothing here returns an error: unparseable
// input degrades to a safe value.
