package configs

import "time"

// Auth configures verification of bearer credentials issued by the auth
// service. Tokens are HS256 JWTs whose subject is the user id.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	// Issuer, when set, must match the token's iss claim.
	Issuer string `env:"ISSUER"`
	// DevTokenTTL is the lifetime of tokens minted by campaignctl token.
	DevTokenTTL time.Duration `env:"DEV_TOKEN_TTL" envDefault:"24h"`
}
