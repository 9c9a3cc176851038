package configs

// Redis configures the Redis database backing the client cache.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// KeyPrefix namespaces every cache key.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"jobboard-ads:"`
}
