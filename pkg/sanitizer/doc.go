// Package sanitizer normalizes free-text input before validation and storage.
//
// All functions are idempotent and never fail: input that cannot be normalized
// comes back trimmed or empty, and callers decide what to do with it.
//
// Normalization includes:
//   - Phone numbers: E.164 when the number parses as valid for a supported region
//   - Strings: trim, optionally collapsing internal whitespace
//   - URLs: trim, lowercase scheme and host, keep path and query untouched
package sanitizer
