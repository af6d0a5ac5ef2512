// Package browser opens URLs in the local default browser.
package browser

import (
	"fmt"

	"github.com/pkg/browser"

	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driven"
)

// Ensure Launcher implements the interface.
var _ driven.BrowserLauncher = (*Launcher)(nil)

// Launcher opens URLs via the operating system's default browser.
type Launcher struct{}

// NewLauncher creates a browser launcher.
func NewLauncher() *Launcher {
	return &Launcher{}
}

// Open opens the URL in the default browser.
func (l *Launcher) Open(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}
