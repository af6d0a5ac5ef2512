package services

import (
	"fmt"
	"strings"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

// knownSkills is the fixed probe order for the skills template. The
// rendered list preserves this order, not the order of appearance in the
// retrieved context.
var knownSkills = []string{
	"Python", "LangChain", "LangGraph", "FastAPI", "RAG", "Agentic AI",
	"NLP", "ReactJS", "Tailwind CSS", "MongoDB", "MySQL", "Docker",
	"AWS", "Git", "GitHub",
}

// greetingReply is the canned greeting response.
const greetingReply = "Hello! I'm Sandip's portfolio assistant. You can ask me about his skills, " +
	"projects, experience, education, or how to get in touch."

// notFoundReply answers a résumé question when retrieval produced no
// context at all.
const notFoundReply = "I couldn't find that in the resume. You can ask me about Sandip's skills, " +
	"projects, experience, education, or contact details."

// promptGrounded is the instruction template for résumé-grounded
// generation. Expects the retrieved context and the question.
const promptGrounded = `You are Sandip Baste's portfolio assistant. Answer the question using only the resume context below.
Answer in first person as Sandip, in a concise and friendly tone. If the context does not contain the answer, say so briefly.

Context:
%s

Question: %s

Answer:`

// promptOpenDomain is the instruction template for general-knowledge
// questions, answered without retrieval.
const promptOpenDomain = `Answer the following question helpfully in 2-3 sentences.

Question: %s`

// skillsTemplate renders the skills answer from a literal scan of the
// retrieved context. Probe order is fixed and determines output order.
func skillsTemplate(contextText string, profile *domain.Profile) string {
	var found []string
	for _, skill := range knownSkills {
		if containsFold(contextText, skill) {
			found = append(found, skill)
		}
	}
	if len(found) == 0 {
		found = profile.Skills
	}
	return fmt.Sprintf("I'm skilled in %s. I specialize in building Generative AI applications such as chatbots, voice assistants, and RAG systems.",
		joinNatural(found))
}

// experienceTemplate renders the deterministic experience answer.
func experienceTemplate(profile *domain.Profile) string {
	if len(profile.Experience) == 0 {
		return "I'm an AI/ML developer specializing in Generative AI and Large Language Models."
	}
	var parts []string
	for _, exp := range profile.Experience {
		parts = append(parts, fmt.Sprintf("%s - %s", exp.Role, strings.TrimSuffix(exp.Description, ".")))
	}
	return "Here's my professional experience: " + strings.Join(parts, "; ") + "."
}

// educationTemplate renders the deterministic education answer.
func educationTemplate(profile *domain.Profile) string {
	if len(profile.Education) == 0 {
		return "I hold a Master's degree in Computer Science."
	}
	var parts []string
	for _, edu := range profile.Education {
		entry := edu.Degree
		if edu.Institution != "" {
			entry += " from " + edu.Institution
		}
		if edu.Grade != "" {
			entry += " (" + edu.Grade + ")"
		}
		parts = append(parts, entry)
	}
	return "My education: " + strings.Join(parts, "; ") + "."
}

// contactTemplate renders the deterministic contact answer.
func contactTemplate(profile *domain.Profile) string {
	c := profile.Contact
	reply := fmt.Sprintf("You can reach me at %s", c.Email)
	if c.Phone != "" {
		reply += " or call " + c.Phone
	}
	if c.Location != "" {
		reply += ". I'm based in " + c.Location
	}
	if c.Linkedin != "" {
		reply += ". I'm also on LinkedIn: " + c.Linkedin
	}
	return reply + "."
}

// githubTemplate renders the deterministic GitHub answer.
func githubTemplate(profile *domain.Profile) string {
	url := profile.Contact.Github
	if url == "" {
		url = "https://github.com/sandipbaste"
	}
	return fmt.Sprintf("You can find my projects on GitHub: %s. That's where I publish my chatbot, voice assistant, and RAG work.", url)
}

// projectsTemplate renders the deterministic projects answer.
func projectsTemplate(profile *domain.Profile) string {
	if len(profile.Projects) == 0 {
		return "I've built AI chatbots, voice assistants, and video insight systems."
	}
	var parts []string
	for _, proj := range profile.Projects {
		parts = append(parts, proj.Title)
	}
	return fmt.Sprintf("My projects include %s. Ask me about any of them for details, or check my GitHub profile.",
		joinNatural(parts))
}

// summaryTemplate renders the deterministic summary answer.
func summaryTemplate(profile *domain.Profile) string {
	if profile.About.Journey != "" {
		return profile.About.Journey
	}
	return fmt.Sprintf("I'm %s, an %s focused on Generative AI and Large Language Models.",
		profile.Name, profile.Headline)
}

// directoryReply lists every configured social destination. Used when a
// navigation command names no resolvable platform.
func directoryReply(profile *domain.Profile) string {
	type entry struct {
		label string
		url   string
	}
	entries := []entry{
		{"GitHub", profile.Contact.Github},
		{"LinkedIn", profile.Contact.Linkedin},
		{"Instagram", profile.Contact.Instagram},
		{"Facebook", profile.Contact.Facebook},
		{"Twitter", profile.Contact.Twitter},
		{"Portfolio", profile.Contact.Portfolio},
	}

	var sb strings.Builder
	sb.WriteString("Here are all my profiles:\n")
	for _, e := range entries {
		if e.url != "" {
			sb.WriteString("- " + e.label + ": " + e.url + "\n")
		}
	}
	return strings.TrimSpace(sb.String())
}

// containsFold reports whether substr occurs in s, case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// joinNatural joins items as "a, b, and c".
func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
