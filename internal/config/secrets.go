package config

import "os"

// keys never live in the repo - the deployment injects them
var (
	GoogleAPIKey  = os.Getenv("GOOGLE_API_KEY")
	OpenAIAPIKey  = os.Getenv("OPENAI_API_KEY")
	AuthToken     = os.Getenv("API_AUTH_TOKEN")
	RedisPassword = os.Getenv("REDIS_PASSWORD")
	NoAuthBypass  = os.Getenv("NO_AUTH_BYPASS") == "true"
)
