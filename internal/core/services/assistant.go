package services

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/google/uuid"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driven"
	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driving"
	"github.com/sandipbaste/My-Portfolio/internal/logger"
)

// Ensure Assistant implements the interface.
var _ driving.AssistantService = (*Assistant)(nil)

// Mode is the pipeline capability decided once at construction time,
// never re-probed per request.
type Mode int

const (
	// ModeOffline means neither index nor LLM is available; every
	// answer comes from canned templates.
	ModeOffline Mode = iota

	// ModeLLMOnly means the index could not be built; résumé answers
	// are grounded in the built-in profile text instead of retrieval.
	ModeLLMOnly

	// ModeRAG is full retrieval-augmented operation.
	ModeRAG
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeRAG:
		return "rag"
	case ModeLLMOnly:
		return "llm-only"
	default:
		return "offline"
	}
}

// resumeFallbackSource tags résumé answers produced without retrieval.
const resumeFallbackSource = "resume_fallback"

// Assistant orchestrates the query pipeline. Answer is total: it always
// returns a well-formed envelope and never panics through to callers.
type Assistant struct {
	classifier  *Classifier
	enhancer    *Enhancer
	retriever   *Retriever
	composer    *Composer
	history     driven.HistoryStore
	speech      driven.SpeechService
	mode        Mode
	profileText string
}

// AssistantConfig wires the assistant's collaborators. Retriever may be
// nil when the index barrier failed; history and speech are optional.
type AssistantConfig struct {
	Retriever   *Retriever
	Composer    *Composer
	History     driven.HistoryStore
	Speech      driven.SpeechService
	Mode        Mode
	ProfileText string
}

// NewAssistant creates the assistant.
func NewAssistant(cfg AssistantConfig) *Assistant {
	return &Assistant{
		classifier:  NewClassifier(),
		enhancer:    NewEnhancer(),
		retriever:   cfg.Retriever,
		composer:    cfg.Composer,
		history:     cfg.History,
		speech:      cfg.Speech,
		mode:        cfg.Mode,
		profileText: cfg.ProfileText,
	}
}

// Mode returns the pipeline mode decided at construction.
func (a *Assistant) Mode() Mode {
	return a.mode
}

// Answer processes one message end-to-end. All degradations are silent
// to the caller except through the Sources field.
func (a *Assistant) Answer(ctx context.Context, req domain.AskRequest) (envelope domain.Envelope) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	// Outer fallback: whatever goes wrong below, the caller still gets
	// a coherent sentence, never a panic or a raw error.
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("pipeline panic recovered: %v", r)
			envelope = a.fallbackEnvelope(req.Message, sessionID)
		}
		if envelope.Response == "" || len(envelope.Sources) == 0 {
			envelope = a.fallbackEnvelope(req.Message, sessionID)
		}
		a.record(ctx, sessionID, req.Message, envelope.Response)
		if req.Voice {
			envelope.Audio = a.synthesise(ctx, envelope.Response)
		}
	}()

	logger.Section("Query Pipeline")
	logger.Debug("message: %q session: %s mode: %s", req.Message, sessionID, a.mode)

	intent := a.classifier.Classify(req.Message)
	logger.Debug("intent: %s category: %s platform: %s", intent.Kind, intent.Category, intent.Platform)

	switch intent.Kind {
	case domain.IntentGreeting:
		envelope = domain.Envelope{
			Response: a.composer.Greeting(),
			Sources:  []string{domain.SourceGreeting},
		}

	case domain.IntentSocialNav:
		envelope = a.composer.SocialNav(intent.Platform)

	case domain.IntentResumeFact:
		envelope = a.answerResumeFact(ctx, req.Message, intent)

	default:
		response, sources := a.composer.OpenDomainAnswer(ctx, req.Message)
		envelope = domain.Envelope{Response: response, Sources: sources}
	}

	envelope.SessionID = sessionID
	return envelope
}

// answerResumeFact runs enhancement and retrieval in RAG mode; in
// degraded modes the built-in profile text stands in for retrieved
// context so the deterministic templates and the LLM still have ground
// to stand on.
func (a *Assistant) answerResumeFact(ctx context.Context, message string, intent domain.QueryIntent) domain.Envelope {
	var contextText string
	var sources []string

	if a.mode == ModeRAG && a.retriever != nil {
		enhanced := a.enhancer.Enhance(message, intent)
		logger.Debug("enhanced query: %q", enhanced)
		contextText, sources = a.retriever.Retrieve(ctx, enhanced)
	}

	if contextText == "" && a.mode != ModeRAG {
		contextText = a.profileText
		sources = []string{resumeFallbackSource}
	}

	response, sources := a.composer.ResumeAnswer(ctx, message, intent.Category, contextText, sources)
	return domain.Envelope{Response: response, Sources: sources}
}

// fallbackEnvelope is the outermost rung of the ladder: re-classify by
// bare substring checks and answer with a small fixed set of sentences.
// This path must never itself fail.
func (a *Assistant) fallbackEnvelope(message, sessionID string) domain.Envelope {
	lower := strings.ToLower(message)

	response := "I'm Sandip's portfolio assistant. You can ask me about his skills, projects, experience, education, or contact details."
	switch {
	case strings.Contains(lower, "skill"):
		response = "Sandip is skilled in Python, LangChain, FastAPI, RAG, and Generative AI."
	case strings.Contains(lower, "project"):
		response = "Sandip has built a WhatsApp AI chatbot, the Nora voice assistant, and a video insight extractor."
	case strings.Contains(lower, "experience") || strings.Contains(lower, "work"):
		response = "Sandip is an AI/ML developer specializing in Generative AI and Large Language Models."
	case strings.Contains(lower, "contact") || strings.Contains(lower, "email"):
		response = "You can reach Sandip at sandipbaste999@gmail.com."
	case strings.Contains(lower, "hi") || strings.Contains(lower, "hello"):
		response = "Hello! Ask me anything about Sandip's professional profile."
	}

	return domain.Envelope{
		Response:  response,
		SessionID: sessionID,
		Sources:   []string{domain.SourceSystemFallback},
	}
}

// record persists the turn for audit. Fire-and-forget: failure is
// logged, the response is unaffected.
func (a *Assistant) record(ctx context.Context, sessionID, message, response string) {
	if a.history == nil {
		return
	}
	err := a.history.RecordTurn(ctx, domain.ChatTurn{
		SessionID: sessionID,
		Message:   message,
		Response:  response,
	})
	if err != nil {
		logger.Warn("recording chat turn failed: %v", err)
	}
}

// synthesise renders the response as base64 MP3. Best-effort.
func (a *Assistant) synthesise(ctx context.Context, text string) string {
	if a.speech == nil {
		return ""
	}
	audio, err := a.speech.Synthesise(ctx, text)
	if err != nil {
		logger.Warn("speech synthesis failed: %v", err)
		return ""
	}
	return base64.StdEncoding.EncodeToString(audio)
}
