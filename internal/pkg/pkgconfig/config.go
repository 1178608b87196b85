package pkgconfig

// Config reads typed configuration values by key.
type Config interface {
	GetInt(key string) int64
	GetString(key string) string
	Close() error
}

// Keys understood by the application.
const (
	KeyLogLevel        = "log.level"
	KeyBenchPattern    = "bench.pattern"
	KeyBenchBufferSize = "bench.buffer_size"
)

// Defaults applied before any file is read.
var Defaults = map[string]any{
	KeyLogLevel:        "warn",
	KeyBenchPattern:    "*.log",
	KeyBenchBufferSize: 32 * 1024,
}
