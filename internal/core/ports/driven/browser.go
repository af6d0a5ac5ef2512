package driven

// BrowserLauncher opens a URL in the OS default browser. This is an
// observable side effect with no rollback; failure is reported in-band
// by the composer, never raised.
type BrowserLauncher interface {
	// Open launches the URL. Best-effort.
	Open(url string) error
}
