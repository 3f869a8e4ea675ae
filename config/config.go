package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"os-scheduler/internal/schedulers"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	RoundRobinTimeQuantum int
	AgingRate             int
}

// Engine returns the defaults applied to requests that omit a config.
func (c *SchedulerConfig) Engine() schedulers.Config {
	return schedulers.Config{
		Quantum:   c.RoundRobinTimeQuantum,
		AgingRate: c.AgingRate,
	}
}

func (c *SchedulerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once per process.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = Load("./")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// Load reads config.yaml from dir. A missing file is not an error: defaults
// and SCHEDULER_* environment variables still apply.
func Load(dir string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 5001)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", schedulers.DefaultQuantum)
	v.SetDefault("scheduler.aging.rate", schedulers.DefaultAgingRate)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	c := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log_level"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		AgingRate:             v.GetInt("scheduler.aging.rate"),
	}
	if c.RoundRobinTimeQuantum < 1 {
		return nil, fmt.Errorf("%w: scheduler.round_robin.time_quantum must be positive", schedulers.ErrInvalidConfig)
	}
	if c.AgingRate < 1 {
		return nil, fmt.Errorf("%w: scheduler.aging.rate must be positive", schedulers.ErrInvalidConfig)
	}
	return c, nil
}
