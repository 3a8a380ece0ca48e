//go:build !(darwin || dragonfly || freebsd || netbsd || openbsd || linux)

// Package tty clears terminal replies that arrive on stdin before the TUI
// starts reading it.
package tty

// FlushStdin is a no-op where termios is unavailable.
func FlushStdin() {}
