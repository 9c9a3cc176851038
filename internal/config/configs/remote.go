package configs

import "time"

// Remote configures the client side of the campaign API.
type Remote struct {
	// BaseURL is the API root, e.g. http://localhost:8080/api/v1.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080/api/v1"`
	// Token is the bearer credential. An empty token skips every remote
	// call and reports the client as unauthenticated.
	Token string `env:"TOKEN"`
	// UserID scopes the local cache to one user.
	UserID  string        `env:"USER_ID" envDefault:"anonymous"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5s"`
}
