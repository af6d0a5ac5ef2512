package domain

// IntentKind discriminates the query intent variants.
type IntentKind int

const (
	// IntentOpenDomain is a general-knowledge question with no résumé
	// connection. Answered by the LLM without retrieval.
	IntentOpenDomain IntentKind = iota

	// IntentGreeting is an exact-match salutation ("hi", "hello", ...).
	IntentGreeting

	// IntentSocialNav is a navigation command naming a social platform
	// ("open your github"). Bypasses retrieval entirely.
	IntentSocialNav

	// IntentResumeFact is a question about the résumé, refined into a
	// ResumeCategory for enhancement and templating.
	IntentResumeFact
)

// String returns a human-readable name for logging.
func (k IntentKind) String() string {
	switch k {
	case IntentGreeting:
		return "greeting"
	case IntentSocialNav:
		return "social_nav"
	case IntentResumeFact:
		return "resume_fact"
	default:
		return "open_domain"
	}
}

// ResumeCategory refines a résumé-fact intent. Categories with a
// deterministic answer template map 1:1 onto template renderers; the
// generic category delegates to the LLM with retrieved context.
type ResumeCategory string

// Résumé fact categories, from most to least specific.
const (
	CategoryGithub     ResumeCategory = "github"
	CategoryProjects   ResumeCategory = "projects"
	CategorySkills     ResumeCategory = "skills"
	CategoryContact    ResumeCategory = "contact"
	CategoryExperience ResumeCategory = "experience"
	CategoryEducation  ResumeCategory = "education"
	CategorySummary    ResumeCategory = "summary"
	CategoryGeneric    ResumeCategory = "generic"
)

// Platform identifies a social destination the assistant can open.
type Platform string

// Known social platforms.
const (
	PlatformGithub    Platform = "github"
	PlatformLinkedin  Platform = "linkedin"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformPortfolio Platform = "portfolio"

	// PlatformUnknown marks a navigation command whose target could not
	// be resolved; the composer answers with the full profile directory.
	PlatformUnknown Platform = ""
)

// QueryIntent is the classification result for one query. It is a tagged
// variant: Platform is meaningful only for IntentSocialNav, Category only
// for IntentResumeFact. Computed per request, never persisted.
type QueryIntent struct {
	Kind     IntentKind
	Platform Platform
	Category ResumeCategory
}

// Greeting returns a greeting intent.
func Greeting() QueryIntent {
	return QueryIntent{Kind: IntentGreeting}
}

// SocialNav returns a social-navigation intent for the given platform.
func SocialNav(p Platform) QueryIntent {
	return QueryIntent{Kind: IntentSocialNav, Platform: p}
}

// ResumeFact returns a résumé-fact intent for the given category.
func ResumeFact(c ResumeCategory) QueryIntent {
	return QueryIntent{Kind: IntentResumeFact, Category: c}
}

// OpenDomain returns an open-domain intent.
func OpenDomain() QueryIntent {
	return QueryIntent{Kind: IntentOpenDomain}
}
