// Package mock provides test double implementations of AI service interfaces.
//
// This package contains a mock implementation of ai.Embedder for use in
// unit tests. The mock allows tests to run without external AI service
// dependencies and enables controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockEmbedder := mock.NewMockEmbedder()
//	vector, err := mockEmbedder.EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	mockEmbedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return []float32{0.1, 0.2, 0.3}, nil
//	}
//
//	// Check call counts
//	count := mockEmbedder.CallCount()
//
// # Default Behavior
//
// MockEmbedder returns deterministic vectors derived from a hash of the
// input text, so identical titles always embed identically.
package mock
