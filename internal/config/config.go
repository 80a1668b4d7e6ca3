package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	Gemini      GeminiConfig
	Audio       AudioConfig
	Whisper     WhisperConfig
	Auth        AuthConfig
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type AudioConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type WhisperConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

type AuthConfig struct {
	JWTSecret string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:        *port,
		Env:         env,
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Gemini: GeminiConfig{
			APIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			Model:  firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_MODEL")), "gemini-1.5-flash"),
		},
		Audio:   loadAudioConfig(env),
		Whisper: loadWhisperConfig(),
		Auth: AuthConfig{
			JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),
		},
	}, nil
}

func loadAudioConfig(env string) AudioConfig {
	endpoint := resolveAudioEndpoint(env)
	return AudioConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("AUDIO_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("AUDIO_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("AUDIO_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("AUDIO_S3_BUCKET")), "mockview-audio"),
		UseSSL:    resolveAudioUseSSL(env),
	}
}

func resolveAudioEndpoint(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return strings.TrimSpace(os.Getenv("AUDIO_MINIO_ENDPOINT"))
	}
	return strings.TrimSpace(os.Getenv("AUDIO_S3_ENDPOINT"))
}

func resolveAudioUseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	raw := strings.TrimSpace(os.Getenv("AUDIO_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func loadWhisperConfig() WhisperConfig {
	return WhisperConfig{
		BaseURL: strings.TrimSpace(os.Getenv("WHISPER_BASE_URL")),
		APIKey:  firstNonEmpty(strings.TrimSpace(os.Getenv("WHISPER_API_KEY")), strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))),
		Model:   strings.TrimSpace(os.Getenv("WHISPER_MODEL")),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
