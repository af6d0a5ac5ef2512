package loaders

import (
	"os"

	"github.com/google/uuid"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
	"github.com/sandipbaste/My-Portfolio/internal/logger"
)

// Source tags recorded on documents and reported as provenance.
const (
	SourceProfileData     = "profile_data"
	SourceResumePDF       = "resume_pdf"
	SourceFallbackProfile = "fallback_profile"
)

// Loader assembles the corpus from the configured sources.
type Loader struct {
	profilePath string
	resumePath  string
}

// New creates a loader. Either path may be empty or point at a missing
// file; the loader degrades through its tiers instead of failing.
func New(profilePath, resumePath string) *Loader {
	return &Loader{
		profilePath: profilePath,
		resumePath:  resumePath,
	}
}

// Load produces the corpus and the effective profile record. It is total:
// on any source error it degrades to the next tier, bottoming out at the
// built-in fallback text, so the returned slice is never empty and the
// profile is never nil.
func (l *Loader) Load() ([]domain.Document, *domain.Profile) {
	logger.Section("Corpus Loading")

	var docs []domain.Document
	profile := DefaultProfile()

	if l.profilePath != "" {
		if parsed, err := ParseProfile(l.profilePath); err != nil {
			logger.Warn("profile record unavailable, trying next tier: %v", err)
		} else {
			profile = parsed
			docs = append(docs, domain.Document{
				ID:      uuid.New().String(),
				Source:  SourceProfileData,
				Type:    "profile",
				Content: Clean(RenderProfile(parsed)),
			})
			logger.Info("loaded structured profile from %s", l.profilePath)
		}
	}

	if l.resumePath != "" {
		if _, err := os.Stat(l.resumePath); err != nil {
			logger.Debug("no resume file at %s", l.resumePath)
		} else if text, err := ExtractPDF(l.resumePath); err != nil {
			logger.Warn("resume extraction failed, trying next tier: %v", err)
		} else {
			docs = append(docs, domain.Document{
				ID:      uuid.New().String(),
				Source:  SourceResumePDF,
				Type:    "resume",
				Content: text,
			})
			logger.Info("loaded resume PDF from %s", l.resumePath)
		}
	}

	if len(docs) == 0 {
		logger.Warn("no corpus source available, using built-in fallback profile")
		docs = append(docs, domain.Document{
			ID:      uuid.New().String(),
			Source:  SourceFallbackProfile,
			Type:    "profile",
			Content: Clean(fallbackText),
		})
	}

	logger.Info("corpus loaded: %d document(s)", len(docs))
	return docs, profile
}
