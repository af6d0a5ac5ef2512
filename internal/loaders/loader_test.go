package loaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean_CollapsesWhitespace(t *testing.T) {
	in := "Sandip   Baste \t AI/ML   Developer"
	assert.Equal(t, "Sandip Baste AI/ML Developer", Clean(in))
}

func TestClean_PreservesParagraphs(t *testing.T) {
	in := "Skills:\nPython\n\n\n\nProjects:\nChatbot"
	out := Clean(in)
	assert.Equal(t, "Skills:\nPython\n\nProjects:\nChatbot", out)
}

func TestClean_StripsDisallowedCharacters(t *testing.T) {
	in := "Email: sandipbaste999@gmail.com \u2022 Phone: +91 9767952471"
	out := Clean(in)
	assert.NotContains(t, out, "\u2022")
	assert.Contains(t, out, "sandipbaste999@gmail.com")
	assert.Contains(t, out, "+91 9767952471")
}

func TestRenderProfile_CanonicalSections(t *testing.T) {
	text := RenderProfile(DefaultProfile())

	// Sections appear in deterministic order.
	contact := indexOf(t, text, "Contact:")
	summary := indexOf(t, text, "Summary:")
	skills := indexOf(t, text, "Skills:")
	experience := indexOf(t, text, "Experience:")
	projects := indexOf(t, text, "Projects:")
	education := indexOf(t, text, "Education:")

	assert.Less(t, contact, summary)
	assert.Less(t, summary, skills)
	assert.Less(t, skills, experience)
	assert.Less(t, experience, projects)
	assert.Less(t, projects, education)

	assert.Contains(t, text, "sandipbaste999@gmail.com")
	assert.Contains(t, text, "LangChain")
	assert.Contains(t, text, "WhatsApp Chatbot")
}

func TestParseProfile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	payload := `{
		"name": "Sandip Baste",
		"headline": "AI/ML Developer",
		"skills": ["Python", "RAG"],
		"contact": {"email": "sandipbaste999@gmail.com", "github": "https://github.com/sandipbaste"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0600))

	p, err := ParseProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "Sandip Baste", p.Name)
	assert.Equal(t, []string{"Python", "RAG"}, p.Skills)
	assert.Equal(t, "sandipbaste999@gmail.com", p.Contact.Email)
}

func TestParseProfile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := ParseProfile(path)
	assert.Error(t, err)
}

func TestLoad_FallbackTier(t *testing.T) {
	l := New("", "")
	docs, profile := l.Load()

	require.Len(t, docs, 1)
	assert.Equal(t, SourceFallbackProfile, docs[0].Source)
	assert.NotEmpty(t, docs[0].Content)
	require.NotNil(t, profile)
	assert.Equal(t, "Sandip Baste", profile.Name)
}

func TestLoad_CorruptProfileDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte("corrupt"), 0600))

	l := New(path, "")
	docs, profile := l.Load()

	require.Len(t, docs, 1)
	assert.Equal(t, SourceFallbackProfile, docs[0].Source)
	assert.Equal(t, "Sandip Baste", profile.Name)
}

func TestLoad_StructuredProfileTier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	payload := `{"name": "Sandip Baste", "skills": ["Python"]}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0600))

	l := New(path, "")
	docs, _ := l.Load()

	require.Len(t, docs, 1)
	assert.Equal(t, SourceProfileData, docs[0].Source)
	assert.Contains(t, docs[0].Content, "Sandip Baste")
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "missing section %q", needle)
	return idx
}
