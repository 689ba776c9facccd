package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/resumescanner/resume-match/pkg/match"
)

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTIssuer string

	UploadDir           string
	SkillVocabularyFile string

	MatchWeights match.Weights

	LogJSON  bool
	LogDebug bool
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	def := match.DefaultWeights()
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer: getEnv("JWT_ISSUER", "resume-match"),

		UploadDir:           getEnv("UPLOAD_DIR", "uploads"),
		SkillVocabularyFile: os.Getenv("SKILL_VOCABULARY_FILE"),

		MatchWeights: match.Weights{
			Keyword:    getEnvFloat("MATCH_WEIGHT_KEYWORD", def.Keyword),
			Skills:     getEnvFloat("MATCH_WEIGHT_SKILLS", def.Skills),
			Semantic:   getEnvFloat("MATCH_WEIGHT_SEMANTIC", def.Semantic),
			Experience: getEnvFloat("MATCH_WEIGHT_EXPERIENCE", def.Experience),
			Education:  getEnvFloat("MATCH_WEIGHT_EDUCATION", def.Education),
		},

		LogJSON:  getEnvBool("LOG_JSON", false),
		LogDebug: getEnvBool("LOG_DEBUG", false),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
