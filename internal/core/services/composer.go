package services

import (
	"context"
	"fmt"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driven"
	"github.com/sandipbaste/My-Portfolio/internal/logger"
)

// llmTemperature matches the source system's low-variance generation.
const llmTemperature = 0.1

// llmMaxTokens bounds generated answers.
const llmMaxTokens = 512

// Composer turns a classified intent and optional retrieved context into
// the final response text. Every method is total: LLM failures degrade to
// keyword-driven canned answers, never to errors.
type Composer struct {
	profile *domain.Profile
	llm     driven.LLMService
	browser driven.BrowserLauncher
}

// NewComposer creates a composer. llm and browser may be nil; the
// corresponding paths then use their deterministic fallbacks.
func NewComposer(profile *domain.Profile, llm driven.LLMService, browser driven.BrowserLauncher) *Composer {
	return &Composer{
		profile: profile,
		llm:     llm,
		browser: browser,
	}
}

// Greeting returns the canned greeting reply.
func (c *Composer) Greeting() string {
	return greetingReply
}

// SocialNav handles a navigation command. For a resolved platform it
// attempts the OS browser launch (a best-effort side effect whose failure
// is reported in-band) and always returns the URL in text. An unresolved
// platform gets the full profile directory.
func (c *Composer) SocialNav(platform domain.Platform) domain.Envelope {
	url, ok := c.profile.SocialURL(platform)
	if !ok {
		return domain.Envelope{
			Response: directoryReply(c.profile),
			Sources:  []string{domain.SourceSocialMedia},
		}
	}

	response := fmt.Sprintf("Opening my %s profile: %s", platform, url)
	if c.browser != nil {
		if err := c.browser.Open(url); err != nil {
			logger.Warn("browser launch failed: %v", err)
			response = fmt.Sprintf("I couldn't open a browser here, but you can find my %s profile at %s", platform, url)
		}
	}

	return domain.Envelope{
		Response: response,
		Sources:  []string{domain.SourceSocialMedia},
		Action:   domain.ActionOpenURL,
		URL:      url,
		Platform: platform,
	}
}

// ResumeAnswer composes the reply for a résumé-fact query. Categories
// with deterministic templates render directly from the profile and a
// literal scan of the context; the generic category delegates to the LLM
// grounded in the retrieved context, falling back to a keyword-driven
// canned answer on LLM failure.
func (c *Composer) ResumeAnswer(ctx context.Context, query string, category domain.ResumeCategory, contextText string, sources []string) (string, []string) {
	if contextText == "" {
		return notFoundReply, []string{domain.SourceResumeNotFound}
	}

	switch category {
	case domain.CategorySkills:
		return skillsTemplate(contextText, c.profile), sources
	case domain.CategoryExperience:
		return experienceTemplate(c.profile), sources
	case domain.CategoryEducation:
		return educationTemplate(c.profile), sources
	case domain.CategoryContact:
		return contactTemplate(c.profile), sources
	case domain.CategoryGithub:
		return githubTemplate(c.profile), sources
	case domain.CategoryProjects:
		return projectsTemplate(c.profile), sources
	case domain.CategorySummary:
		return summaryTemplate(c.profile), sources
	}

	answer, err := c.generate(ctx, fmt.Sprintf(promptGrounded, contextText, query))
	if err != nil {
		logger.Warn("grounded generation failed, using canned answer: %v", err)
		return c.cannedAnswer(query), sources
	}
	return answer, sources
}

// OpenDomainAnswer answers a general-knowledge question via the LLM with
// no retrieved context.
func (c *Composer) OpenDomainAnswer(ctx context.Context, query string) (string, []string) {
	answer, err := c.generate(ctx, fmt.Sprintf(promptOpenDomain, query))
	if err != nil {
		logger.Warn("open-domain generation failed, using canned answer: %v", err)
		return fmt.Sprintf("I can provide general information about %q, but my knowledge services are temporarily unavailable. Feel free to ask me about Sandip's work instead.", query),
			[]string{domain.SourceSystemFallback}
	}
	return answer, []string{domain.SourceGeneralKnowledge}
}

// cannedAnswer maps the question text onto the deterministic templates.
// Used when the LLM is unavailable: the same keyword-to-template mapping
// as classification, applied to the question rather than the context.
func (c *Composer) cannedAnswer(query string) string {
	classifier := NewClassifier()
	category := classifier.resumeCategory(normalise(query))

	switch category {
	case domain.CategorySkills:
		return skillsTemplate("", c.profile)
	case domain.CategoryExperience:
		return experienceTemplate(c.profile)
	case domain.CategoryEducation:
		return educationTemplate(c.profile)
	case domain.CategoryContact:
		return contactTemplate(c.profile)
	case domain.CategoryGithub:
		return githubTemplate(c.profile)
	case domain.CategoryProjects:
		return projectsTemplate(c.profile)
	default:
		return summaryTemplate(c.profile)
	}
}

// generate calls the LLM, mapping a nil service onto ErrLLMUnavailable so
// callers have a single failure path.
func (c *Composer) generate(ctx context.Context, prompt string) (string, error) {
	if c.llm == nil {
		return "", domain.ErrLLMUnavailable
	}
	answer, err := c.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   llmMaxTokens,
		Temperature: llmTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrLLMUnavailable, err)
	}
	if answer == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrLLMUnavailable)
	}
	return answer, nil
}
