package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libdatasource/changelog"
	"github.com/sgostarter/libdatasource/changelog/impls/mf"
	"github.com/sgostarter/libdatasource/changelog/impls/redislog"
	"github.com/spf13/cobra"
)

var (
	flags = struct {
		ConfigFile string
		From       string
	}{}

	root = &cobra.Command{
		Use:           "dslog",
		Short:         "dslog inspects data source change logs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "dslog.yaml", "configuration file")

	root.AddCommand(dumpCmd, verifyCmd)
}

func Execute() {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(file string) (*changelog.Config, error) {
	f, err := os.Open(file)
	if errors.Is(err, os.ErrNotExist) {
		return changelog.LoadConfig(strings.NewReader(""))
	}

	if err != nil {
		return nil, err
	}

	defer f.Close()

	return changelog.LoadConfig(f)
}

func openRecorder(logger l.Wrapper) (changelog.Recorder, error) {
	cfg, err := loadConfig(flags.ConfigFile)
	if err != nil {
		return nil, err
	}

	var store changelog.Storage

	switch cfg.Storage {
	case changelog.StorageRedis:
		opts, e := redis.ParseURL(cfg.RedisURL)
		if e != nil {
			return nil, fmt.Errorf("invalid redis_url: %w", e)
		}

		store = redislog.NewRedisStorage(cfg.RedisPreKey, redis.NewClient(opts), logger)
	default:
		store = mf.NewMFStorage(cfg.DataRoot, logger)
	}

	return changelog.NewRecorder(store, cfg, logger), nil
}
