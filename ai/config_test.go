package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
		assert.Equal(t, "embeddinggemma", cfg.EmbeddingModel)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.EmbeddingHost)
	})

	t.Run("with custom model", func(t *testing.T) {
		cfg := NewConfig(WithEmbeddingModel("text-embedding-3-small"))

		assert.Equal(t, "text-embedding-3-small", cfg.EmbeddingModel)
	})

	t.Run("with multiple options", func(t *testing.T) {
		cfg := NewConfig(
			WithEmbeddingHost("http://custom:8080/v1"),
			WithEmbeddingModel("custom-embed"),
		)

		assert.Equal(t, "http://custom:8080/v1", cfg.EmbeddingHost)
		assert.Equal(t, "custom-embed", cfg.EmbeddingModel)
	})
}

func TestConfig_Normalize(t *testing.T) {
	t.Run("adds v1 suffix", func(t *testing.T) {
		cfg := &Config{EmbeddingHost: "http://localhost:11434", EmbeddingModel: "m"}
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("strips trailing slash before adding suffix", func(t *testing.T) {
		cfg := &Config{EmbeddingHost: "http://localhost:11434/", EmbeddingModel: "m"}
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("leaves canonical host alone", func(t *testing.T) {
		cfg := &Config{EmbeddingHost: "http://localhost:11434/v1", EmbeddingModel: "m"}
		cfg.Normalize()
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("empty host stays empty", func(t *testing.T) {
		cfg := &Config{}
		cfg.Normalize()
		assert.Equal(t, "", cfg.EmbeddingHost)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.Validate())
	})

	t.Run("normalizes during validation", func(t *testing.T) {
		cfg := &Config{EmbeddingHost: "http://localhost:11434", EmbeddingModel: "m"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:11434/v1", cfg.EmbeddingHost)
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := &Config{EmbeddingModel: "m"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := &Config{EmbeddingHost: "http://localhost:11434/v1"}
		assert.Error(t, cfg.Validate())
	})
}
