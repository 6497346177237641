package configs

// Redis holds configuration for the Redis instance backing frequency caps
// and recency markers.
type Redis struct {
	// Addr is the host:port of the Redis server.
	Addr string `env:"ADDR" envDefault:"localhost:6379"`
	// Password is the optional AUTH password.
	Password string `env:"PASSWORD" envDefault:""`
	// DB selects the logical database.
	DB int `env:"DB" envDefault:"0"`
	// PoolSize caps the number of connections.
	PoolSize int `env:"POOL_SIZE" envDefault:"10"`
}
