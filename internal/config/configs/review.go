package configs

import "time"

// Review bounds the randomized review window chosen when a campaign is
// launched. Production uses the long bounds; every other environment uses
// the short ones so the window elapses quickly while developing.
type Review struct {
	DevMinDelay  time.Duration `env:"DEV_MIN_DELAY" envDefault:"5s"`
	DevMaxDelay  time.Duration `env:"DEV_MAX_DELAY" envDefault:"30s"`
	ProdMinDelay time.Duration `env:"PROD_MIN_DELAY" envDefault:"10m"`
	ProdMaxDelay time.Duration `env:"PROD_MAX_DELAY" envDefault:"2h"`
}

// Bounds returns the review window bounds for env.
func (c Review) Bounds(env string) (time.Duration, time.Duration) {
	if IsProduction(env) {
		return c.ProdMinDelay, c.ProdMaxDelay
	}
	return c.DevMinDelay, c.DevMaxDelay
}

// IsProduction reports whether env names the production deployment.
func IsProduction(env string) bool {
	switch env {
	case "prod", "production":
		return true
	default:
		return false
	}
}
