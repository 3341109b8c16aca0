// Package calibration discovers the logical brightness range at runtime.
//
// The range comes from two sources:
//
//   - a live pair published by the platform, which is authoritative but may
//     not exist yet right after boot
//   - a pair persisted by a previous run, which may be stale
//
// A Calibrator converges to the live pair as soon as it is valid and then
// locks for the lifetime of the process. Until then it degrades to the
// persisted pair or to fixed fallback constants.
package calibration
