package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr   string
	Env    string
	Gemini GeminiConfig
	Export ExportConfig
}

type GeminiConfig struct {
	// APIKey is the one required secret. Its absence does not fail
	// Load; each orchestration run reports a configuration error
	// instead, so the session surface stays usable.
	APIKey        string
	VisionModel   string
	GenerateModel string
}

type ExportConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	addr := strings.TrimSpace(os.Getenv("PORT"))
	switch {
	case addr == "":
		addr = ":8080"
	case !strings.HasPrefix(addr, ":"):
		addr = ":" + addr
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Addr: addr,
		Env:  env,
		Gemini: GeminiConfig{
			APIKey:        strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			VisionModel:   firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_VISION_MODEL")), "gemini-2.0-flash"),
			GenerateModel: firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_GENERATE_MODEL")), "gemini-2.0-flash-exp"),
		},
		Export: loadExportConfig(env),
	}, nil
}

func loadExportConfig(env string) ExportConfig {
	endpoint := strings.TrimSpace(os.Getenv("EXPORT_S3_ENDPOINT"))
	return ExportConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("EXPORT_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("EXPORT_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("EXPORT_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("EXPORT_S3_BUCKET")), "pixelform-documents"),
		UseSSL:    resolveExportUseSSL(env),
	}
}

func resolveExportUseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	raw := strings.TrimSpace(os.Getenv("EXPORT_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
