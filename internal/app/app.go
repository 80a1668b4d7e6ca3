package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"mockview/internal/audio"
	"mockview/internal/config"
	"mockview/internal/handler"
	"mockview/internal/interview"
	"mockview/internal/llm"
	"mockview/internal/middleware"
	"mockview/internal/server"
	"mockview/internal/transcribe"
)

type App struct {
	server *server.Server
	stores *stores
	llm    *llm.GeminiClient
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	st, err := initStores(cfg)
	if err != nil {
		return nil, err
	}

	gemini, err := llm.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to initialize llm client: %w", err)
	}

	audioStore, err := initAudioStore(cfg)
	if err != nil {
		st.Close()
		return nil, err
	}
	transcriber := transcribe.NewWhisperClient(transcribe.Config{
		BaseURL: cfg.Whisper.BaseURL,
		APIKey:  cfg.Whisper.APIKey,
		Model:   cfg.Whisper.Model,
	})

	svc := interview.NewService(st.members, st.companies, st.reviews, st.sessions, gemini, interview.DefaultPolicy())
	h := handler.New(svc, audioStore, transcriber)

	auth := middleware.NewAuth(cfg.Auth.JWTSecret)
	if cfg.Env == "local" {
		logDemoToken(auth)
	}

	var root http.Handler = h.Routes()
	root = middleware.RequireAuth(root)
	root = auth.WithAuth(root)
	root = middleware.CORS(root)

	return &App{
		server: server.New(cfg.Port, root),
		stores: st,
		llm:    gemini,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	err := a.server.Shutdown(ctx)
	if cerr := a.llm.Close(); cerr != nil {
		log.Printf("llm close failed: %v", cerr)
	}
	a.stores.Close()
	return err
}

func initAudioStore(cfg *config.Config) (audio.Store, error) {
	if !cfg.Audio.Enabled {
		log.Printf("audio store: using in-memory fallback (no endpoint configured)")
		return audio.NewMemoryStore(), nil
	}
	s3Store, err := audio.NewS3Store(audio.S3Config{
		Endpoint:  cfg.Audio.Endpoint,
		Region:    cfg.Audio.Region,
		AccessKey: cfg.Audio.AccessKey,
		SecretKey: cfg.Audio.SecretKey,
		Bucket:    cfg.Audio.Bucket,
		UseSSL:    cfg.Audio.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize audio s3 store: %w", err)
	}
	log.Printf("audio store: s3 bucket=%s endpoint=%s", cfg.Audio.Bucket, cfg.Audio.Endpoint)
	return s3Store, nil
}

func logDemoToken(auth *middleware.Auth) {
	token, err := auth.SignToken("demo-member", 24*time.Hour)
	if err != nil {
		log.Printf("demo token: sign failed: %v", err)
		return
	}
	log.Printf("demo token (member=demo-member): %s", token)
}
