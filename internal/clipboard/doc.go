// Package clipboard implements domain.Clipboard backends.
//
//   - OSC52 asks the terminal emulator to set the clipboard with an OSC 52
//     escape sequence. It works over SSH and needs no helper program.
//   - Exec pipes the text into a helper such as xclip, wl-copy or pbcopy.
//   - Memory keeps the clipboard in-process; tests use it.
//
// ByName builds a backend from its config name; "auto" picks a helper
// program that is installed and falls back to OSC52.
package clipboard
