// Package services contains the application logic of the portfolio
// assistant: query classification, enhancement, retrieval, response
// composition and the fallback ladder.
package services

import (
	"strings"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

// greetings is the exact-match salutation set. Matched case-insensitively
// after trimming; substring matches do not count.
var greetings = map[string]struct{}{
	"hi":             {},
	"hello":          {},
	"hey":            {},
	"hi there":       {},
	"hello there":    {},
	"good morning":   {},
	"good afternoon": {},
	"good evening":   {},
	"namaste":        {},
	"yo":             {},
}

// navigationVerbs are the action words of a social-navigation command.
var navigationVerbs = []string{
	"open", "visit", "go to", "show me", "launch", "take me to",
}

// platformAliases maps query substrings to platforms. Ordered slice, not
// a map: alias checks must run in a fixed order so classification is
// deterministic ("portfolio" before "website" etc. is irrelevant for
// correctness but keeps behaviour stable across runs).
var platformAliases = []struct {
	alias    string
	platform domain.Platform
}{
	{"github", domain.PlatformGithub},
	{"linkedin", domain.PlatformLinkedin},
	{"instagram", domain.PlatformInstagram},
	{"facebook", domain.PlatformFacebook},
	{"twitter", domain.PlatformTwitter},
	{"portfolio", domain.PlatformPortfolio},
	{"website", domain.PlatformPortfolio},
}

// resumeKeywords is the curated list that marks a query résumé-related:
// identity terms, professional terms, and generic inquiry phrasing.
var resumeKeywords = []string{
	// identity
	"sandip", "baste",
	// professional
	"resume", "cv", "experience", "skill", "project", "education",
	"background", "qualification", "contact", "email", "phone", "github",
	"work", "career", "intern", "degree", "college",
	// inquiry
	"what is", "what are", "tell me about", "explain", "describe",
	"how", "where", "when", "who",
}

// categoryRules map keyword hits to résumé categories. Evaluated in
// order; the first matching rule wins, so more specific categories come
// first (github > projects > skills > contact > experience > education >
// summary).
var categoryRules = []struct {
	keywords []string
	category domain.ResumeCategory
}{
	{[]string{"github", "git ", "repository", "repo"}, domain.CategoryGithub},
	{[]string{"project"}, domain.CategoryProjects},
	{[]string{"skill", "technolog", "stack", "proficien"}, domain.CategorySkills},
	{[]string{"contact", "email", "phone", "reach", "location"}, domain.CategoryContact},
	{[]string{"experience", "work", "career", "intern", "job"}, domain.CategoryExperience},
	{[]string{"education", "degree", "college", "qualification", "study", "studied"}, domain.CategoryEducation},
	{[]string{"summary", "about", "yourself", "who are you", "who is"}, domain.CategorySummary},
}

// Classifier assigns a QueryIntent to each raw query. Purely keyword
// driven and stateless: repeated calls with the same input always return
// the same intent.
type Classifier struct{}

// NewClassifier creates a classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify runs the precedence ladder: greeting, social navigation,
// résumé fact, open domain. Social navigation deliberately outranks
// résumé keywords, so "open your github and tell me your skills" still
// navigates.
func (c *Classifier) Classify(query string) domain.QueryIntent {
	normalised := normalise(query)
	if normalised == "" {
		return domain.OpenDomain()
	}

	if _, ok := greetings[strings.Trim(normalised, "!. ")]; ok {
		return domain.Greeting()
	}

	if platform, ok := c.matchSocialNav(normalised); ok {
		return domain.SocialNav(platform)
	}

	if c.isResumeRelated(normalised) {
		return domain.ResumeFact(c.resumeCategory(normalised))
	}

	return domain.OpenDomain()
}

// matchSocialNav reports whether the query is a navigation command and
// which platform it targets. A match requires an action verb combined
// with a platform name, or a possessive/profile reference to a platform.
func (c *Classifier) matchSocialNav(query string) (domain.Platform, bool) {
	platform, named := c.namedPlatform(query)
	if !named {
		return domain.PlatformUnknown, false
	}

	for _, verb := range navigationVerbs {
		if strings.Contains(query, verb) {
			return platform, true
		}
	}

	for _, pa := range platformAliases {
		if pa.platform != platform {
			continue
		}
		if strings.Contains(query, "your "+pa.alias) ||
			strings.Contains(query, pa.alias+" profile") ||
			strings.Contains(query, pa.alias+" page") {
			return platform, true
		}
	}

	return domain.PlatformUnknown, false
}

// namedPlatform finds the first platform alias present in the query.
func (c *Classifier) namedPlatform(query string) (domain.Platform, bool) {
	for _, pa := range platformAliases {
		if strings.Contains(query, pa.alias) {
			return pa.platform, true
		}
	}
	return domain.PlatformUnknown, false
}

// isResumeRelated reports whether any curated résumé keyword appears.
func (c *Classifier) isResumeRelated(query string) bool {
	for _, kw := range resumeKeywords {
		if strings.Contains(query, kw) {
			return true
		}
	}
	return false
}

// normalise lower-cases and trims a query for keyword matching.
func normalise(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// resumeCategory picks the most specific category whose keywords appear,
// in fixed priority order. Defaults to generic, which delegates to the
// LLM with retrieved context.
func (c *Classifier) resumeCategory(query string) domain.ResumeCategory {
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(query, kw) {
				return rule.category
			}
		}
	}
	return domain.CategoryGeneric
}
