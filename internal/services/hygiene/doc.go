// Package hygiene copies recovered plaintext to the clipboard and overwrites
// it later.
//
// Every successful Copy schedules one Scrub: after ClearDelay the clipboard
// is overwritten with a single space, whatever it holds by then. Scrubs
// cannot be cancelled and are not coalesced, so two quick copies produce two
// overwrites. A failed copy schedules nothing.
package hygiene
