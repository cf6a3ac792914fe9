// Package tui is the terminal front-end: a calculator that turns into the
// covert tool when the unlock code is entered.
//
// Calculator keys
//
//	0-9 .        digits
//	+ - * /      operators
//	= enter      equals
//	backspace    delete last character
//	c esc        clear
//	ctrl+c q     quit
//
// Covert tool keys
//
//	tab shift+tab    move between fields
//	ctrl+t           switch between the Encrypt and Decrypt tabs
//	ctrl+s enter     run the current tab's workflow
//	ctrl+y           copy the decrypted message (when offered)
//	esc              back to the calculator
//	ctrl+c           quit
//
// Everything runs on the bubbletea event loop. Network calls and clipboard
// scrubs are commands whose completion arrives as messages; status changes
// made from those commands trigger a redraw.
package tui
