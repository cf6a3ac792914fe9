// Package exchange runs the covert tool's two workflows against the remote
// service.
//
// Encrypt: validate locally, report progress, upload, then offer the
// returned carrier image as secret.png. Decrypt: hide any earlier result,
// validate, report progress, upload, then display the recovered plaintext
// and enable the copy action.
//
// Each invocation ends with exactly one terminal status in the shared slot.
// Invocations are independent; if two overlap, the one finishing last owns
// the status line.
package exchange
