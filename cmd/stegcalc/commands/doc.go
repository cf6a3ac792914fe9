// Package commands implements the stegcalc command line.
//
// With no subcommand stegcalc shows the calculator; entering the unlock
// code and pressing = reveals the covert tool. The encrypt, decrypt and
// inspect subcommands run the same workflows without the disguise.
package commands
