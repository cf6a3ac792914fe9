// Package store places files the covert tool hands to the operator.
//
// Downloads writes each offered file into one directory, replacing any
// previous file of the same name atomically: the bytes go to a temp file in
// the same directory, which is then renamed over the target. Files are
// created owner-only.
package store
