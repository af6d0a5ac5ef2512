package domain

// Profile is the structured professional profile record. It mirrors the
// portfolio owner's data file and is rendered by the profile loader into
// the retrievable corpus. It also backs the deterministic answer templates
// and the social-navigation directory.
type Profile struct {
	Name       string
	Headline   string
	About      About
	Skills     []string
	Projects   []Project
	Contact    Contact
	Education  []EducationEntry
	Experience []ExperienceEntry
}

// About describes the owner's professional summary.
type About struct {
	Journey string
	WhatIDo []string
	Belief  string
}

// Project is a portfolio project entry.
type Project struct {
	Title       string
	Description string
	Tech        []string
	Link        string
}

// Contact holds contact details and social profile URLs.
type Contact struct {
	Email     string
	Phone     string
	Location  string
	Github    string
	Linkedin  string
	Instagram string
	Facebook  string
	Twitter   string
	Portfolio string
}

// EducationEntry is one qualification.
type EducationEntry struct {
	Degree      string
	Institution string
	Grade       string
}

// ExperienceEntry is one professional engagement.
type ExperienceEntry struct {
	Role        string
	Description string
}

// SocialURL resolves a platform to its configured URL. The second return
// reports whether the platform has a destination in this profile.
func (p *Profile) SocialURL(platform Platform) (string, bool) {
	var url string
	switch platform {
	case PlatformGithub:
		url = p.Contact.Github
	case PlatformLinkedin:
		url = p.Contact.Linkedin
	case PlatformInstagram:
		url = p.Contact.Instagram
	case PlatformFacebook:
		url = p.Contact.Facebook
	case PlatformTwitter:
		url = p.Contact.Twitter
	case PlatformPortfolio:
		url = p.Contact.Portfolio
	}
	return url, url != ""
}
