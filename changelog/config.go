package changelog

import (
	"fmt"
	"io"

	"github.com/go-playground/validator"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	StorageFile  = "file"
	StorageRedis = "redis"
)

var DefaultConfig = Config{
	Storage:          StorageFile,
	DataRoot:         "~/.dslog.d",
	RedisPreKey:      "dslog",
	PoolSize:         1000,
	SkipEmptyBatches: true,
}

type Config struct {
	Storage     string `yaml:"storage" json:"storage" validate:"required,oneof=file redis"`
	DataRoot    string `yaml:"data_root" json:"data_root,omitempty"`
	RedisURL    string `yaml:"redis_url" json:"redis_url,omitempty"`
	RedisPreKey string `yaml:"redis_pre_key" json:"redis_pre_key,omitempty"`

	// PoolSize is the number of entries per log pool; 0 keeps every entry in one pool.
	PoolSize         uint64 `yaml:"pool_size" json:"pool_size"`
	SkipEmptyBatches bool   `yaml:"skip_empty_batches" json:"skip_empty_batches"`
}

func LoadConfig(r io.Reader) (*Config, error) {
	c := DefaultConfig

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	err = yaml.Unmarshal(d, &c)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	err = validator.New().Struct(c)
	if err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	switch c.Storage {
	case StorageFile:
		if c.DataRoot == "" {
			return nil, fmt.Errorf("%w: data_root is required for file storage", ErrInvalidConfig)
		}

		c.DataRoot, err = homedir.Expand(c.DataRoot)
		if err != nil {
			return nil, fmt.Errorf("unable to expand data_root: %w", err)
		}
	case StorageRedis:
		if c.RedisURL == "" {
			return nil, fmt.Errorf("%w: redis_url is required for redis storage", ErrInvalidConfig)
		}
	}

	return &c, nil
}
