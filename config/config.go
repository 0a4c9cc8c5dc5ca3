package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL        string
	RedisAddress string
	BearerToken  string
	MediaRoot    string
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

// GetMediaRoot returns the root directory for stored files
func (c *AppConfig) GetMediaRoot() string {
	return c.MediaRoot
}
