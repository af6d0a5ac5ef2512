package cli

import (
	"context"

	geminiembed "github.com/sandipbaste/My-Portfolio/internal/adapters/driven/embedding/gemini"
	"github.com/sandipbaste/My-Portfolio/internal/adapters/driven/embedding/local"
	geminillm "github.com/sandipbaste/My-Portfolio/internal/adapters/driven/llm/gemini"
	"github.com/sandipbaste/My-Portfolio/internal/adapters/driven/notify/smtp"
	"github.com/sandipbaste/My-Portfolio/internal/adapters/driven/speech/gtts"
	"github.com/sandipbaste/My-Portfolio/internal/adapters/driven/storage/sqlite"
	"github.com/sandipbaste/My-Portfolio/internal/adapters/driven/vector/memory"
	"github.com/sandipbaste/My-Portfolio/internal/adapters/driven/watcher"
	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driven"
	"github.com/sandipbaste/My-Portfolio/internal/core/services"
	"github.com/sandipbaste/My-Portfolio/internal/loaders"
	"github.com/sandipbaste/My-Portfolio/internal/logger"
	"github.com/sandipbaste/My-Portfolio/internal/postprocessors/chunker"

	browserlauncher "github.com/sandipbaste/My-Portfolio/internal/adapters/driven/browser"
	"github.com/sandipbaste/My-Portfolio/internal/adapters/driven/config"
)

// App holds the wired pipeline and its resources.
type App struct {
	Config    *config.Config
	Assistant *services.Assistant
	Contact   *services.Contact
	Watcher   *watcher.Watcher

	closers []func() error
}

// Close releases all held resources in reverse acquisition order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warn("closing resource: %v", err)
		}
	}
}

// bootstrap builds the full pipeline: load corpus, chunk, embed, index,
// then wire services. Degradations never abort startup; they only lower
// the pipeline mode.
func bootstrap(ctx context.Context, withBrowser bool) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg}

	docs, profile := loaders.New(cfg.Corpus.ProfilePath, cfg.Corpus.ResumePath).Load()
	chunks := chunker.New().Split(docs)
	logger.Info("loaded %d document(s), %d chunk(s)", len(docs), len(chunks))

	// Embedding providers: Gemini primary when a key exists, the local
	// deterministic embedder always as fallback.
	var primary driven.EmbeddingService
	if cfg.Gemini.APIKey != "" {
		remote, err := geminiembed.NewEmbeddingService(ctx, geminiembed.Config{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.EmbeddingModel,
		})
		if err != nil {
			logger.Warn("gemini embedding unavailable: %v", err)
		} else {
			primary = remote
			app.closers = append(app.closers, remote.Close)
		}
	}
	secondary := local.NewEmbeddingService()

	var retriever *services.Retriever
	index, err := memory.NewIndex()
	if err != nil {
		logger.Warn("vector index unavailable: %v", err)
	} else {
		embedder, err := services.BuildIndex(ctx, chunks, primary, secondary, index)
		if err != nil {
			logger.Warn("index construction failed: %v", err)
		} else {
			retriever = services.NewRetriever(embedder, index, cfg.Retrieval.TopK, cfg.Retrieval.MinSimilarity)
			app.closers = append(app.closers, index.Close)
		}
	}

	var llm driven.LLMService
	if cfg.Gemini.APIKey != "" {
		llm, err = geminillm.NewLLMService(ctx, geminillm.Config{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.ChatModel,
		})
		if err != nil {
			logger.Warn("gemini LLM unavailable: %v", err)
			llm = nil
		} else {
			app.closers = append(app.closers, llm.Close)
		}
	}

	mode := services.ModeOffline
	switch {
	case retriever != nil:
		mode = services.ModeRAG
	case llm != nil:
		mode = services.ModeLLMOnly
	}
	logger.Info("pipeline mode: %s", mode)

	var history driven.HistoryStore
	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		logger.Warn("history store unavailable: %v", err)
	} else {
		history = store
		app.closers = append(app.closers, store.Close)
	}

	// Assign the interface only on success: a typed-nil notifier would
	// slip past the contact service's nil guard.
	var notifier driven.Notifier
	if cfg.SMTP.Host != "" {
		mailer, err := smtp.NewNotifier(smtp.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			Owner:    cfg.SMTP.Owner,
		})
		if err != nil {
			logger.Warn("smtp notifier unavailable: %v", err)
		} else {
			notifier = mailer
		}
	}

	var launcher driven.BrowserLauncher
	if withBrowser {
		launcher = browserlauncher.NewLauncher()
	}

	composer := services.NewComposer(profile, llm, launcher)
	app.Assistant = services.NewAssistant(services.AssistantConfig{
		Retriever:   retriever,
		Composer:    composer,
		History:     history,
		Speech:      gtts.NewSpeechService(gtts.Config{}),
		Mode:        mode,
		ProfileText: loaders.RenderProfile(profile),
	})
	app.Contact = services.NewContact(history, notifier)

	w, err := watcher.New(cfg.Corpus.ProfilePath, cfg.Corpus.ResumePath)
	if err != nil {
		logger.Warn("corpus watcher unavailable: %v", err)
	} else {
		app.Watcher = w
		app.closers = append(app.closers, w.Close)
		go w.Run(ctx)
	}

	return app, nil
}
