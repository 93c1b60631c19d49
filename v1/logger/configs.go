package logger

// Log level names accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls how the logger is built.
type Config struct {
	// Level is the minimum level that will be emitted.
	// One of: "debug", "info", "warning", "error". Defaults to "info".
	Level string `yaml:"level" envconfig:"LUNA_LOG_LEVEL"`

	// ServiceName is attached to every log entry as the "service" field so
	// that entries from multiple services can be separated downstream.
	ServiceName string `yaml:"service_name" envconfig:"LUNA_SERVICE_NAME"`
}
