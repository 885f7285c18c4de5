package llm

// Config selects the Gemini models used for each capability.
type Config struct {
	// EmbeddingModel is the model used for text embeddings.
	EmbeddingModel string `json:"embedding_model"`
	// GenerationModel is the model used for JSON generation.
	GenerationModel string `json:"generation_model"`
}

// DefaultConfig returns the default model selection.
func DefaultConfig() *Config {
	return &Config{
		EmbeddingModel:  "text-embedding-004",
		GenerationModel: "gemini-2.0-flash",
	}
}
