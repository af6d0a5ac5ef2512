package services

import "github.com/sandipbaste/My-Portfolio/internal/core/domain"

// anchorTerms are the domain terms appended per category to bias the
// query embedding toward the matching region of the corpus.
var anchorTerms = map[domain.ResumeCategory]string{
	domain.CategorySkills:     "Python Generative AI RAG LLMs LangChain FastAPI technologies",
	domain.CategoryProjects:   "projects WhatsApp chatbot voice assistant video insight extractor",
	domain.CategoryExperience: "professional experience AI ML developer internship work history",
	domain.CategoryEducation:  "education masters computer science college degree CGPA",
	domain.CategoryContact:    "contact email phone location github linkedin",
	domain.CategoryGithub:     "github repositories profile projects source code",
	domain.CategorySummary:    "summary about journey AI ML developer background",
	domain.CategoryGeneric:    "resume profile professional background",
}

// Enhancer rewrites résumé queries into embedding-friendlier ones.
type Enhancer struct{}

// NewEnhancer creates an enhancer.
func NewEnhancer() *Enhancer {
	return &Enhancer{}
}

// Enhance appends the category's anchor terms to the query. A pure text
// transform: identity for intents that never reach the retriever.
func (e *Enhancer) Enhance(query string, intent domain.QueryIntent) string {
	if intent.Kind != domain.IntentResumeFact {
		return query
	}

	terms, ok := anchorTerms[intent.Category]
	if !ok {
		return query
	}
	return query + " " + terms
}
