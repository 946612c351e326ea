package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServerConfig contains all configuration for the analysis server.
type ServerConfig struct {
	REST     RESTConfig     `mapstructure:"rest"`
	GRPC     GRPCConfig     `mapstructure:"grpc"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// RESTConfig contains REST API server configuration.
type RESTConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
}

// GRPCConfig contains gRPC server configuration.
type GRPCConfig struct {
	Addr             string        `mapstructure:"addr"`
	KeepaliveMinTime time.Duration `mapstructure:"keepalive_min_time"`
	MaxRecvMsgBytes  int           `mapstructure:"max_recv_msg_bytes"`
	MaxSendMsgBytes  int           `mapstructure:"max_send_msg_bytes"`
}

// AnalysisConfig tunes the word frequency engine.
type AnalysisConfig struct {
	MaxInputBytes     int `mapstructure:"max_input_bytes"`
	NumMappers        int `mapstructure:"num_mappers"`
	NumReducers       int `mapstructure:"num_reducers"`
	ParallelThreshold int `mapstructure:"parallel_threshold"`
}

// LoadServer loads the server configuration from the given path.
// If configPath is empty, it looks for server.yaml in the config/ directory.
// Environment variables with WORDFREQ_SERVER_ prefix override config file values.
func LoadServer(configPath string) (*ServerConfig, error) {
	v := viper.New()

	v.SetDefault("rest.addr", ":8080")
	v.SetDefault("rest.read_timeout", 15*time.Second)
	v.SetDefault("rest.write_timeout", 15*time.Second)
	v.SetDefault("rest.idle_timeout", 60*time.Second)
	v.SetDefault("rest.max_body_bytes", 16*1024*1024)
	v.SetDefault("grpc.addr", ":9090")
	v.SetDefault("grpc.keepalive_min_time", 30*time.Second)
	v.SetDefault("grpc.max_recv_msg_bytes", 16*1024*1024)
	v.SetDefault("grpc.max_send_msg_bytes", 256*1024*1024)
	v.SetDefault("analysis.max_input_bytes", 10*1024*1024)
	v.SetDefault("analysis.num_mappers", 4)
	v.SetDefault("analysis.num_reducers", 4)
	v.SetDefault("analysis.parallel_threshold", 256*1024)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("server")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("WORDFREQ_SERVER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg ServerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *ServerConfig) Validate() error {
	if c.Analysis.MaxInputBytes < 0 {
		return fmt.Errorf("analysis.max_input_bytes must be >= 0")
	}
	if c.Analysis.NumMappers <= 0 {
		return fmt.Errorf("analysis.num_mappers must be greater than 0")
	}
	if c.Analysis.NumReducers <= 0 {
		return fmt.Errorf("analysis.num_reducers must be greater than 0")
	}
	if c.REST.MaxBodyBytes <= 0 {
		return fmt.Errorf("rest.max_body_bytes must be greater than 0")
	}
	return nil
}
