package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/natevvv/osm-turn-routing/pkg/routing"
	"github.com/natevvv/osm-turn-routing/pkg/turn"
)

const envPrefix = "TURNROUTE"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Graph   GraphConfig   `mapstructure:"graph"`
	Penalty PenaltyConfig `mapstructure:"penalty"`
	Routing RoutingConfig `mapstructure:"routing"`
	Debug   DebugConfig   `mapstructure:"debug"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type GraphConfig struct {
	File      string `mapstructure:"file"`      // fmi graph
	Penalties string `mapstructure:"penalties"` // penalty file, computed from the graph if empty
}

// turn penalties in seconds
type PenaltyConfig struct {
	Left  float64 `mapstructure:"left"`
	Right float64 `mapstructure:"right"`
}

type RoutingConfig struct {
	Navigator     string `mapstructure:"navigator"`
	Vehicle       string `mapstructure:"vehicle"`
	PreferHighway bool   `mapstructure:"prefer_highway"`
}

type DebugConfig struct {
	Level int `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8081")
	v.SetDefault("graph.file", "road_graph.fmi")
	v.SetDefault("graph.penalties", "")
	v.SetDefault("penalty.left", turn.DefaultLeftPenalty)
	v.SetDefault("penalty.right", turn.DefaultRightPenalty)
	v.SetDefault("routing.navigator", routing.NavigatorTurnDijkstra)
	v.SetDefault("routing.vehicle", routing.DefaultVehicle)
	v.SetDefault("routing.prefer_highway", false)
	v.SetDefault("debug.level", 0)
}

// Load the configuration. Values are taken from (highest priority first) the environment
// (TURNROUTE_SERVER_ADDRESS, ...), the config file if given, and the defaults.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %v: %w", configFile, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if err := c.PenaltyOptions().Validate(); err != nil {
		return err
	}
	switch c.Routing.Navigator {
	case routing.NavigatorDijkstra, routing.NavigatorTurnDijkstra:
	default:
		return fmt.Errorf("%w: %v", routing.ErrUnknownNavigator, c.Routing.Navigator)
	}
	if _, err := (routing.RouteConfig{VehicleType: c.Routing.Vehicle}).WeightFunc(); err != nil {
		return err
	}
	return nil
}

func (c *Config) PenaltyOptions() turn.PenaltyOptions {
	return turn.MakePenaltyOptions().SetLeftPenalty(c.Penalty.Left).SetRightPenalty(c.Penalty.Right)
}
