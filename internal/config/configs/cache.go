package configs

// Cache selects the key-value store behind the client cache.
type Cache struct {
	// Backend is "redis" (default, survives across sessions) or "memory".
	Backend string `env:"BACKEND" envDefault:"redis"`
	// MemorySize is the freecache arena size in bytes for the memory backend.
	// One entry may use at most 1/1024 of it, and the whole collection is one
	// entry: the 64 MiB default holds about 100 campaigns.
	MemorySize int `env:"MEMORY_SIZE" envDefault:"67108864"`
}
