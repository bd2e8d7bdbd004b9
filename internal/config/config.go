package config // package config loads application configuration from environment variables

// Config holds the runtime settings of the restaurant ops server.  Every
// field has a working default so the server boots with no environment at
// all: the engine state is in-memory and the external collaborators (MySQL
// seed loader, Redis, RabbitMQ) are optional and degrade to disabled.
type Config struct {
	Env           string // application environment (dev, prod)
	Port          string // HTTP port to listen on
	DBUser        string // seed database username (empty disables the DB loader)
	DBPass        string // seed database password
	DBHost        string // seed database host
	DBPort        string // seed database port
	DBName        string // seed database name
	JWTSecret     string // secret signing the advisory staff session tokens
	SessionTTLMin int    // staff session token time-to-live in minutes
}

// Load reads the environment and fills in defaults.  Nothing here is fatal;
// a component whose settings are absent simply stays disabled.
func Load() Config {
	return Config{
		Env:           envStr("APP_ENV", "dev"),
		Port:          envStr("APP_PORT", "8080"),
		DBUser:        envStr("SEED_DB_USER", ""),
		DBPass:        envStr("SEED_DB_PASS", ""),
		DBHost:        envStr("SEED_DB_HOST", "localhost"),
		DBPort:        envStr("SEED_DB_PORT", "3306"),
		DBName:        envStr("SEED_DB_NAME", "restaurant_ops"),
		JWTSecret:     envStr("JWT_SECRET", "dev-session-secret"),
		SessionTTLMin: envInt("SESSION_TTL_MIN", 480),
	}
}

// SeedDBConfigured reports whether the MySQL seed loader should be wired.
func (c Config) SeedDBConfigured() bool {
	return c.DBUser != ""
}
