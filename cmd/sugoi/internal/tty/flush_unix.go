//go:build darwin || dragonfly || freebsd || netbsd || openbsd || linux

// Package tty clears terminal replies that arrive on stdin before the TUI
// starts reading it.
package tty

import (
	"os"

	"golang.org/x/sys/unix"
)

// FlushStdin discards whatever is buffered on stdin, such as the reply to
// the background-color query made while picking a theme.
func FlushStdin() {
	//nolint:gosec // Stdin fd is always a small non-negative int.
	fd := int(os.Stdin.Fd())

	old, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}

	raw := *old
	raw.Lflag &^= unix.ECHO | unix.ICANON
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return
	}
	defer func() { _ = unix.IoctlSetTermios(fd, ioctlSetTermios, old) }()

	buf := make([]byte, 256)
	for {
		n, err := unix.Read(fd, buf)
		if n <= 0 || err != nil {
			return
		}
	}
}
