package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/maniartech/idgen/internal/generator"
	"github.com/maniartech/idgen/internal/id"
	pkgconfig "github.com/maniartech/idgen/pkg/config"
)

const (
	// EnvPrefix prefixes every environment override, e.g. IDGEN_NANOID_SIZE.
	EnvPrefix = "IDGEN"
	// EnvConfigDir names the directory holding idgen.yaml.
	EnvConfigDir = "IDGEN_CONFIG_DIR"

	configName       = "idgen"
	defaultConfigDir = "./config"
)

type Config struct {
	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`

	Log       LogConfig       `mapstructure:"log"`
	UUID      UUIDConfig      `mapstructure:"uuid"`
	NanoID    NanoIDConfig    `mapstructure:"nanoid"`
	CUID2     CUID2Config     `mapstructure:"cuid2"`
	Snowflake SnowflakeConfig `mapstructure:"snowflake"`
	Batch     BatchConfig     `mapstructure:"batch"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error fatal off"`
	Pretty bool   `mapstructure:"pretty"`
}

type UUIDConfig struct {
	NodeID string `mapstructure:"node_id" validate:"required,mac"`
}

type NanoIDConfig struct {
	Size     int    `mapstructure:"size" validate:"gte=0,lte=4096"`
	Alphabet string `mapstructure:"alphabet" validate:"min=2,max=255"`
}

type CUID2Config struct {
	Length int `mapstructure:"length" validate:"gte=2,lte=32"`
}

type SnowflakeConfig struct {
	MachineID int64 `mapstructure:"machine_id" validate:"gte=0,lte=1023"`
	Epoch     int64 `mapstructure:"epoch" validate:"gte=0"`
}

type BatchConfig struct {
	ParallelThreshold int `mapstructure:"parallel_threshold" validate:"gte=1"`
	Workers           int `mapstructure:"workers" validate:"gte=0"`
}

// Load reads idgen.yaml from $IDGEN_CONFIG_DIR (default ./config) and
// IDGEN_* environment overrides.
func Load() (*Config, error) {
	return LoadFrom(pkgconfig.GetEnv(EnvConfigDir, defaultConfigDir))
}

// LoadFrom is Load with an explicit config directory.
func LoadFrom(dir string) (*Config, error) {
	v, err := pkgconfig.Load(dir, configName, EnvPrefix)
	if err != nil {
		return nil, err
	}

	// Set defaults
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", false)
	v.SetDefault("uuid.node_id", generator.DefaultNodeID)
	v.SetDefault("nanoid.size", generator.DefaultNanoIDSize)
	v.SetDefault("nanoid.alphabet", generator.DefaultNanoIDAlphabet)
	v.SetDefault("cuid2.length", generator.DefaultCUID2Length)
	v.SetDefault("snowflake.machine_id", 1)
	v.SetDefault("snowflake.epoch", generator.DefaultSnowflakeEpoch)
	v.SetDefault("batch.parallel_threshold", id.DefaultParallelThreshold)
	v.SetDefault("batch.workers", 0)

	// Short aliases
	_ = v.BindEnv("uuid.node_id", "IDGEN_NODE_ID")
	_ = v.BindEnv("snowflake.machine_id", "IDGEN_MACHINE_ID")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.File = v.ConfigFileUsed()

	return &cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DispatcherOptions maps the configuration onto id.Options.
func (c *Config) DispatcherOptions() id.Options {
	return id.Options{
		NodeID:             c.UUID.NodeID,
		NanoIDAlphabet:     c.NanoID.Alphabet,
		CUID2Length:        c.CUID2.Length,
		SnowflakeMachineID: c.Snowflake.MachineID,
		SnowflakeEpoch:     c.Snowflake.Epoch,
		ParallelThreshold:  c.Batch.ParallelThreshold,
		Workers:            c.Batch.Workers,
	}
}
