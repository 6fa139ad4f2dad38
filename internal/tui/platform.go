package tui

import "github.com/atotto/clipboard"

// systemClipboard writes to the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) SetText(text string) error {
	return clipboard.WriteAll(text)
}
