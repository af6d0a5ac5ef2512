package loaders

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

// ExtractPDF reads the résumé PDF at path and returns its cleaned plain
// text. Extraction artefacts (layout runs, stray glyphs) are removed by
// the cleaner before the text enters the corpus.
func ExtractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening pdf: %w", domain.ErrLoaderFailure, err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: extracting pdf text: %w", domain.ErrLoaderFailure, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("%w: reading pdf text: %w", domain.ErrLoaderFailure, err)
	}

	text := Clean(buf.String())
	if text == "" {
		return "", fmt.Errorf("%w: pdf contained no extractable text", domain.ErrLoaderFailure)
	}
	return text, nil
}
