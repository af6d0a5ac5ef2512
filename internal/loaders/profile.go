package loaders

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

// profileFile is the on-disk JSON schema of the profile record. It is a
// separate type so the domain stays free of serialisation tags.
type profileFile struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	About    struct {
		Journey string   `json:"journey"`
		WhatIDo []string `json:"what_i_do"`
		Belief  string   `json:"belief"`
	} `json:"about"`
	Skills   []string `json:"skills"`
	Projects []struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Tech        []string `json:"tech"`
		Link        string   `json:"link"`
	} `json:"projects"`
	Contact struct {
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Location  string `json:"location"`
		Github    string `json:"github"`
		Linkedin  string `json:"linkedin"`
		Instagram string `json:"instagram"`
		Facebook  string `json:"facebook"`
		Twitter   string `json:"twitter"`
		Portfolio string `json:"portfolio"`
	} `json:"contact"`
	Education []struct {
		Degree      string `json:"degree"`
		Institution string `json:"institution"`
		Grade       string `json:"grade"`
	} `json:"education"`
	Experience []struct {
		Role        string `json:"role"`
		Description string `json:"description"`
	} `json:"experience"`
}

// ParseProfile reads and parses a structured profile record from disk.
func ParseProfile(path string) (*domain.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading profile: %w", domain.ErrLoaderFailure, err)
	}

	var pf profileFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("%w: parsing profile: %w", domain.ErrLoaderFailure, err)
	}
	if pf.Name == "" {
		return nil, fmt.Errorf("%w: profile record has no name", domain.ErrLoaderFailure)
	}

	p := &domain.Profile{
		Name:     pf.Name,
		Headline: pf.Headline,
		About: domain.About{
			Journey: pf.About.Journey,
			WhatIDo: pf.About.WhatIDo,
			Belief:  pf.About.Belief,
		},
		Skills: pf.Skills,
	}
	for _, proj := range pf.Projects {
		p.Projects = append(p.Projects, domain.Project{
			Title:       proj.Title,
			Description: proj.Description,
			Tech:        proj.Tech,
			Link:        proj.Link,
		})
	}
	p.Contact = domain.Contact{
		Email:     pf.Contact.Email,
		Phone:     pf.Contact.Phone,
		Location:  pf.Contact.Location,
		Github:    pf.Contact.Github,
		Linkedin:  pf.Contact.Linkedin,
		Instagram: pf.Contact.Instagram,
		Facebook:  pf.Contact.Facebook,
		Twitter:   pf.Contact.Twitter,
		Portfolio: pf.Contact.Portfolio,
	}
	for _, edu := range pf.Education {
		p.Education = append(p.Education, domain.EducationEntry{
			Degree:      edu.Degree,
			Institution: edu.Institution,
			Grade:       edu.Grade,
		})
	}
	for _, exp := range pf.Experience {
		p.Experience = append(p.Experience, domain.ExperienceEntry{
			Role:        exp.Role,
			Description: exp.Description,
		})
	}
	return p, nil
}

// RenderProfile lays the profile out as canonical labelled sections:
// contact block, summary, skills, experience, projects, education.
// The order is deterministic so repeated loads produce identical corpora.
func RenderProfile(p *domain.Profile) string {
	var sb strings.Builder

	sb.WriteString(p.Name)
	if p.Headline != "" {
		sb.WriteString(" - " + p.Headline)
	}
	sb.WriteString("\n\n")

	sb.WriteString("Contact:\n")
	writeLabelled(&sb, "Email", p.Contact.Email)
	writeLabelled(&sb, "Phone", p.Contact.Phone)
	writeLabelled(&sb, "Location", p.Contact.Location)
	writeLabelled(&sb, "GitHub", p.Contact.Github)
	writeLabelled(&sb, "LinkedIn", p.Contact.Linkedin)
	writeLabelled(&sb, "Portfolio", p.Contact.Portfolio)
	sb.WriteString("\n")

	sb.WriteString("Summary:\n")
	sb.WriteString(p.About.Journey + "\n")
	for _, item := range p.About.WhatIDo {
		sb.WriteString("- " + item + "\n")
	}
	if p.About.Belief != "" {
		sb.WriteString(p.About.Belief + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("Skills:\n")
	sb.WriteString(strings.Join(p.Skills, ", ") + "\n\n")

	sb.WriteString("Experience:\n")
	for _, exp := range p.Experience {
		sb.WriteString("- " + exp.Role + ": " + exp.Description + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString("Projects:\n")
	for _, proj := range p.Projects {
		sb.WriteString("- " + proj.Title + ": " + proj.Description)
		if len(proj.Tech) > 0 {
			sb.WriteString(" (Tech: " + strings.Join(proj.Tech, ", ") + ")")
		}
		if proj.Link != "" {
			sb.WriteString(" [" + proj.Link + "]")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("Education:\n")
	for _, edu := range p.Education {
		sb.WriteString("- " + edu.Degree + " - " + edu.Institution)
		if edu.Grade != "" {
			sb.WriteString(" - " + edu.Grade)
		}
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}

func writeLabelled(sb *strings.Builder, label, value string) {
	if value != "" {
		sb.WriteString(label + ": " + value + "\n")
	}
}
