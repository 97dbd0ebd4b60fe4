package handlers

import (
	"os"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SpoonacularTest probes the recipe API with a known-good query and
// reports whether the configured key works.
func (h *Handler) SpoonacularTest(c *fiber.Ctx) error {
	configured, keyLen := h.recipes.KeyConfigured()
	if !configured {
		return Success(c, fiber.Map{
			"configured": false,
			"message":    "RAPIDAPI_KEY is not set",
		})
	}

	ok, message := h.recipes.VerifySetup(c.Context())
	if !ok {
		return Success(c, fiber.Map{
			"configured": true,
			"key_length": keyLen,
			"ok":         false,
			"message":    message,
			"key":        h.recipes.KeyDiagnostics(),
		})
	}

	return Success(c, fiber.Map{
		"configured": true,
		"key_length": keyLen,
		"ok":         true,
		"message":    message,
	})
}

// OpenAITest reports whether an LLM key is configured, without calling the
// model.
func (h *Handler) OpenAITest(c *fiber.Ctx) error {
	configured, keyLen := h.llm.KeyConfigured()
	return Success(c, fiber.Map{
		"configured": configured,
		"key_length": keyLen,
	})
}

// EnvTest lists which expected environment variables are present. Values
// are never included.
func (h *Handler) EnvTest(c *fiber.Ctx) error {
	expected := []string{
		"DATABASE_URL", "JWT_SECRET", "OPENAI_API_KEY", "OPENAI_BASE_URL",
		"OPENAI_MODEL", "RAPIDAPI_KEY", "RAPIDAPI_HOST", "S3_ENDPOINT",
	}
	sort.Strings(expected)

	present := make(map[string]bool, len(expected))
	for _, name := range expected {
		present[name] = strings.TrimSpace(os.Getenv(name)) != ""
	}

	return Success(c, fiber.Map{
		"environment": h.cfg.Environment,
		"variables":   present,
	})
}
