package chapters

// Config holds chapter-list and chapter-content generation settings.
type Config struct {
	ListMaxTokens    int
	ContentMaxTokens int
	Temperature      float64
}

// DefaultConfig returns sensible defaults for chapter generation.
func DefaultConfig() Config {
	return Config{
		ListMaxTokens:    2048,
		ContentMaxTokens: 4096,
		Temperature:      0.4,
	}
}
