package services

import (
	"context"
	"errors"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driven"
)

// errUpstream stands in for any provider failure in tests.
var errUpstream = errors.New("upstream failure")

// mockEmbedder returns a fixed vector, or fails when broken.
type mockEmbedder struct {
	vector     []float32
	broken     bool
	embedCalls int
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	m.embedCalls++
	if m.broken {
		return nil, errUpstream
	}
	return m.vector, nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.embedCalls++
	if m.broken {
		return nil, errUpstream
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = m.vector
	}
	return out, nil
}

func (m *mockEmbedder) Dimensions() int   { return len(m.vector) }
func (m *mockEmbedder) ModelName() string { return "mock-embedder" }
func (m *mockEmbedder) Close() error      { return nil }

var _ driven.EmbeddingService = (*mockEmbedder)(nil)

// mockIndex records added chunks and serves canned hits.
type mockIndex struct {
	hits   []driven.VectorHit
	added  []domain.Chunk
	broken bool
}

func (m *mockIndex) Add(_ context.Context, chunk domain.Chunk) error {
	if m.broken {
		return errUpstream
	}
	m.added = append(m.added, chunk)
	return nil
}

func (m *mockIndex) Search(_ context.Context, _ []float32, k int) ([]driven.VectorHit, error) {
	if m.broken {
		return nil, errUpstream
	}
	if len(m.hits) > k {
		return m.hits[:k], nil
	}
	return m.hits, nil
}

func (m *mockIndex) Count() int   { return len(m.added) }
func (m *mockIndex) Close() error { return nil }

var _ driven.VectorIndex = (*mockIndex)(nil)

// mockLLM returns a fixed completion and remembers the last prompt.
type mockLLM struct {
	completion string
	broken     bool
	lastPrompt string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.lastPrompt = prompt
	if m.broken {
		return "", errUpstream
	}
	return m.completion, nil
}

func (m *mockLLM) ModelName() string { return "mock-llm" }
func (m *mockLLM) Close() error      { return nil }

var _ driven.LLMService = (*mockLLM)(nil)

// mockHistory records calls in memory.
type mockHistory struct {
	turns    []domain.ChatTurn
	contacts []domain.ContactMessage
	broken   bool
}

func (m *mockHistory) RecordTurn(_ context.Context, turn domain.ChatTurn) error {
	if m.broken {
		return errUpstream
	}
	m.turns = append(m.turns, turn)
	return nil
}

func (m *mockHistory) RecordContact(_ context.Context, msg domain.ContactMessage) error {
	if m.broken {
		return errUpstream
	}
	m.contacts = append(m.contacts, msg)
	return nil
}

func (m *mockHistory) Turns(_ context.Context, sessionID string) ([]domain.ChatTurn, error) {
	var out []domain.ChatTurn
	for _, t := range m.turns {
		if t.SessionID == sessionID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockHistory) Close() error { return nil }

var _ driven.HistoryStore = (*mockHistory)(nil)

// mockNotifier counts deliveries.
type mockNotifier struct {
	ownerNotified int
	repliesSent   int
	broken        bool
}

func (m *mockNotifier) NotifyOwner(_ context.Context, _ domain.ContactMessage) error {
	if m.broken {
		return errUpstream
	}
	m.ownerNotified++
	return nil
}

func (m *mockNotifier) SendAutoReply(_ context.Context, _ domain.ContactMessage) error {
	if m.broken {
		return errUpstream
	}
	m.repliesSent++
	return nil
}

var _ driven.Notifier = (*mockNotifier)(nil)

// mockSpeech returns fixed audio bytes.
type mockSpeech struct {
	audio  []byte
	broken bool
}

func (m *mockSpeech) Synthesise(_ context.Context, _ string) ([]byte, error) {
	if m.broken {
		return nil, errUpstream
	}
	return m.audio, nil
}

var _ driven.SpeechService = (*mockSpeech)(nil)

// mockBrowser records opened URLs.
type mockBrowser struct {
	opened []string
	broken bool
}

func (m *mockBrowser) Open(url string) error {
	if m.broken {
		return errUpstream
	}
	m.opened = append(m.opened, url)
	return nil
}

var _ driven.BrowserLauncher = (*mockBrowser)(nil)

// testProfile is a compact profile used across the service tests.
func testProfile() *domain.Profile {
	return &domain.Profile{
		Name:     "Sandip Baste",
		Headline: "AI/ML Developer",
		About: domain.About{
			Journey: "I'm Sandip, an AI/ML developer working on Generative AI systems.",
		},
		Skills: []string{"Python", "LangChain", "FastAPI"},
		Projects: []domain.Project{
			{Title: "WhatsApp AI Chatbot", Description: "Conversational assistant on WhatsApp."},
			{Title: "Nora Voice Assistant", Description: "Voice-driven desktop assistant."},
		},
		Contact: domain.Contact{
			Email:    "sandipbaste999@gmail.com",
			Phone:    "+91 9767952471",
			Location: "Pune, India",
			Github:   "https://github.com/sandipbaste",
			Linkedin: "https://linkedin.com/in/sandipbaste",
		},
		Education: []domain.EducationEntry{
			{Degree: "MSc Computer Science", Institution: "Pune University", Grade: "CGPA 8.1"},
		},
		Experience: []domain.ExperienceEntry{
			{Role: "AI/ML Developer", Description: "Building Generative AI applications."},
		},
	}
}
