package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL        string
	RedisAddress string
	BearerToken  string
	GeminiAPIKey string
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

// AIEnabled reports whether a Gemini API key was configured at startup.
func (c *AppConfig) AIEnabled() bool {
	return c.GeminiAPIKey != ""
}
