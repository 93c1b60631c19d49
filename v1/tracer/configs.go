package tracer

// Config controls how the tracer provider is built.
type Config struct {
	// ServiceName is attached to every span as the service.name resource
	// attribute.
	ServiceName string `yaml:"service_name" envconfig:"LUNA_SERVICE_NAME"`

	// AppEnv names the deployment environment, e.g. "production" or
	// "staging". Attached as the deployment.environment resource attribute.
	AppEnv string `yaml:"app_env" envconfig:"LUNA_APP_ENV"`

	// EnableExport controls whether spans are exported over OTLP/HTTP.
	// When false, spans are still created and propagated but never leave
	// the process, which is the right mode for tests.
	EnableExport bool `yaml:"enable_export" envconfig:"LUNA_TRACE_EXPORT"`
}
