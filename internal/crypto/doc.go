// Package crypto holds the few byte-level helpers stegcalc needs. It does not
// encrypt anything: that is the remote service's job.
//
// Contents
//
//   - Short fingerprints of carrier images for display/logging (Fingerprint)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
package crypto
