package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// setRawMode switches the terminal to byte-at-a-time input without echo.
// Output processing stays on so server frames keep their line breaks.
func setRawMode(fileDescriptor uintptr) (*unix.Termios, error) {
	terminalSettings, err := unix.IoctlGetTermios(int(fileDescriptor), unix.TCGETS)
	if err != nil {
		return nil, err
	}
	savedTerminalSettings := *terminalSettings
	terminalSettings.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	terminalSettings.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	terminalSettings.Cflag &^= unix.CSIZE | unix.PARENB
	terminalSettings.Cflag |= unix.CS8
	terminalSettings.Oflag |= unix.OPOST | unix.ONLCR

	if err := unix.IoctlSetTermios(int(fileDescriptor), unix.TCSETS, terminalSettings); err != nil {
		return nil, err
	}
	return &savedTerminalSettings, nil
}

func restoreMode(saved *unix.Termios) {
	if saved == nil {
		return
	}
	_ = unix.IoctlSetTermios(int(os.Stdin.Fd()), unix.TCSETS, saved)
}
