package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port              int      `yaml:"port" validate:"gt=0,lte=65535"`
	AllowedOrigins    []string `yaml:"allowedOrigins" validate:"dive,required"`
	ShutdownTimeoutMS int      `yaml:"shutdownTimeoutMS" validate:"gte=0"`
	AnswerCacheSize   int      `yaml:"answerCacheSize" validate:"gte=0"` // LRU entries; 0 disables
}

// CatalogueConfig contains the catalogue input source
type CatalogueConfig struct {
	Input             string  `yaml:"input"`
	Format            string  `yaml:"format" validate:"omitempty,oneof=text yaml gtfs"` // empty guesses from extension
	GTFSDistanceScale float64 `yaml:"gtfsDistanceScale" validate:"gte=0"`               // shape_dist_traveled units to metres
}

// OutputConfig contains stat response rendering options
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=text json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Catalogue CatalogueConfig `yaml:"catalogue"`
	Output    OutputConfig    `yaml:"output"`
}
