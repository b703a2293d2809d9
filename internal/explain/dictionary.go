package explain

// knownKeys is the built-in dictionary of common configuration keys and
// their fixed explanations. Lookup keys are upper-cased env-style names;
// dotted paths are tried with dots replaced by underscores before falling
// back to heuristics. Loaded once, never mutated.
var knownKeys = map[string]string{
	// Database-related
	"DB_POOL_SIZE":  "Controls how many database connections can exist at the same time.",
	"DB_HOST":       "The hostname or IP address of the database server.",
	"DB_PORT":       "The network port used to connect to the database.",
	"DB_NAME":       "The name of the database to connect to.",
	"DB_USER":       "The username for database authentication.",
	"DB_PASSWORD":   "The password for database authentication.",
	"DATABASE_URL":  "The full connection string for the database.",
	"DATABASE_HOST": "The hostname or IP address of the database server.",
	"DATABASE_PORT": "The network port used to connect to the database.",
	"DATABASE_NAME": "The name of the database to connect to.",

	// Server configuration
	"PORT":           "The network port the application listens on.",
	"HOST":           "The hostname or IP address the server binds to.",
	"BIND_ADDRESS":   "The IP address the server binds to for incoming connections.",
	"LISTEN_ADDRESS": "The address the server listens on for incoming connections.",

	// Environment and debugging
	"DEBUG":        "Enables or disables debug mode for development.",
	"NODE_ENV":     "The environment mode (development, production, test).",
	"ENVIRONMENT":  "The current running environment (dev, staging, production).",
	"ENV":          "The current running environment.",
	"APP_ENV":      "The application environment setting.",
	"FLASK_ENV":    "The Flask framework environment mode.",
	"RAILS_ENV":    "The Ruby on Rails environment mode.",
	"DJANGO_DEBUG": "Enables or disables Django debug mode.",

	// Logging
	"LOG_LEVEL":     "Controls how much detail is written to logs (debug, info, warn, error).",
	"LOG_FILE":      "The file path where logs are written.",
	"LOG_FORMAT":    "The format pattern for log messages.",
	"LOGGING_LEVEL": "Controls the verbosity of application logging.",

	// Security
	"SECRET_KEY":     "A secret value used for encryption and session security.",
	"API_KEY":        "A key used to authenticate API requests.",
	"JWT_SECRET":     "The secret key used to sign JSON Web Tokens.",
	"AUTH_SECRET":    "A secret value used for authentication purposes.",
	"ENCRYPTION_KEY": "The key used for encrypting sensitive data.",
	"PASSWORD_SALT":  "A value added to passwords before hashing for security.",

	// Timeouts and limits
	"TIMEOUT":            "The maximum time to wait before canceling an operation.",
	"REQUEST_TIMEOUT":    "The maximum time to wait for an HTTP request to complete.",
	"CONNECTION_TIMEOUT": "The maximum time to wait when establishing a connection.",
	"READ_TIMEOUT":       "The maximum time to wait for data to be received.",
	"MAX_CONNECTIONS":    "The maximum number of simultaneous connections allowed.",
	"MAX_RETRIES":        "The maximum number of times to retry a failed operation.",
	"RATE_LIMIT":         "The maximum number of requests allowed in a time period.",

	// Caching
	"CACHE_TTL":         "How long cached data remains valid (in seconds).",
	"CACHE_ENABLED":     "Enables or disables the caching system.",
	"CACHE_SIZE":        "The maximum size of the cache in memory.",
	"REDIS_URL":         "The connection URL for Redis cache server.",
	"MEMCACHED_SERVERS": "The list of Memcached server addresses.",

	// Email
	"SMTP_HOST":     "The hostname of the email server.",
	"SMTP_PORT":     "The port used to connect to the email server.",
	"SMTP_USER":     "The username for email server authentication.",
	"SMTP_PASSWORD": "The password for email server authentication.",
	"EMAIL_FROM":    "The default sender email address.",
	"MAIL_SERVER":   "The hostname of the mail server.",

	// URLs and endpoints
	"API_URL":      "The base URL for API endpoints.",
	"BASE_URL":     "The root URL of the application.",
	"CALLBACK_URL": "The URL to redirect to after an operation completes.",
	"WEBHOOK_URL":  "The URL that receives webhook notifications.",
	"FRONTEND_URL": "The URL of the frontend application.",
	"BACKEND_URL":  "The URL of the backend API.",

	// Feature flags
	"FEATURE_FLAGS":  "Toggles for enabling or disabling specific features.",
	"ENABLE_FEATURE": "Enables or disables a specific feature.",
	"EXPERIMENTAL":   "Enables or disables experimental features.",

	// Miscellaneous
	"TZ":          "The timezone for the application.",
	"TIMEZONE":    "The timezone setting for date/time operations.",
	"LOCALE":      "The language and region setting.",
	"LANG":        "The language setting for the application.",
	"VERSION":     "The version number of the application.",
	"APP_NAME":    "The name of the application.",
	"APP_VERSION": "The version number of the application.",
}
