package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.Equal(t, "spoonacular-recipe-food-nutrition-v1.p.rapidapi.com", cfg.RapidAPIHost)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "recipe-images", cfg.S3Bucket)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "3001")
	t.Setenv("OPENAI_BASE_URL", "https://api.groq.com/openai/v1")
	t.Setenv("JWT_EXPIRY_HOURS", "72")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("S3_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.OpenAIBaseURL)
	assert.Equal(t, 72*time.Hour, cfg.JWTExpiry)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.S3UseSSL)
}
