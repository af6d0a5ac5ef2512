package domain

// Well-known source tags recorded in Envelope.Sources. They identify which
// pipeline path produced the answer and are the only way degradation is
// visible to callers.
const (
	SourceGreeting         = "greeting"
	SourceSocialMedia      = "social_media"
	SourceGeneralKnowledge = "general_knowledge"
	SourceResumeNotFound   = "resume_not_found"
	SourceSystemFallback   = "system_fallback"
)

// Action is an optional client-side hint carried in the envelope.
type Action string

// Actions the frontend understands.
const (
	// ActionOpenURL asks the client to open Envelope.URL.
	ActionOpenURL Action = "open_url"
)

// Envelope is the uniform response contract of the pipeline, regardless of
// which path produced it. Response and Sources are always non-empty.
type Envelope struct {
	// Response is the answer text. Always a complete sentence, never a
	// raw error message.
	Response string `json:"response"`

	// SessionID correlates conversational turns. Minted when the caller
	// supplies none.
	SessionID string `json:"session_id"`

	// Sources records the provenance of the answer: résumé document
	// sources for retrieval-grounded answers, or one of the Source*
	// path tags.
	Sources []string `json:"sources"`

	// Action, URL and Platform are set on the social-navigation path.
	Action   Action   `json:"action,omitempty"`
	URL      string   `json:"url,omitempty"`
	Platform Platform `json:"platform,omitempty"`

	// Audio is a base64-encoded MP3 rendering of Response, present only
	// when the caller requested voice output and synthesis succeeded.
	Audio string `json:"audio,omitempty"`
}

// AskRequest is the inbound contract of the assistant.
type AskRequest struct {
	// Message is the raw user query.
	Message string

	// SessionID is an opaque correlation identifier; empty means the
	// assistant mints one.
	SessionID string

	// Voice requests an audio rendering of the response. Synthesis
	// failure never affects the text response.
	Voice bool
}

// ChatTurn is one recorded exchange, persisted for audit by the history
// store after the response has been returned.
type ChatTurn struct {
	SessionID string
	Message   string
	Response  string
}

// ContactMessage is a contact form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}
