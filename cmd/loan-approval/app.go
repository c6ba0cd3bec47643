package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"loan-approval/config"
	"loan-approval/repository"
	"loan-approval/service"
)

type app struct {
	conf    *config.Config
	service *service.ApprovalService
	close   func()
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	confPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, errors.Wrap(err, "failed to get config path")
	}
	return config.Load(confPath)
}

func newApp(ctx context.Context, conf *config.Config) (*app, error) {
	chain, err := conf.Chain()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build approval chain")
	}

	logger := service.NewStdLogger(conf.Debug)
	logger.Debug("approval chain: %s", strings.Join(chain.Names(), " -> "))
	closeFn := func() {}

	var cache repository.CacheRepository
	switch conf.Cache.Driver {
	case config.CacheDriverMemory:
		cache = repository.NewMemoryCache(conf.Cache.MaxEntries, conf.Cache.TTL)
	case config.CacheDriverRedis:
		rc := repository.NewRedisCache(conf.Cache.RedisAddress, conf.Cache.TTL)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := rc.Ping(pingCtx); err != nil {
			rc.Close()
			return nil, errors.Wrapf(err, "failed to reach redis at %s", conf.Cache.RedisAddress)
		}
		cache = rc
		closeFn = func() {
			if err := rc.Close(); err != nil {
				log.Printf("Error closing redis client: %v", err)
			}
		}
	}

	svc := service.NewApprovalService(
		chain,
		repository.NewDecisionRepositoryMemory(conf.DecisionLogSize),
		cache,
		service.NewLogReporter(logger),
		logger,
	)

	return &app{conf: conf, service: svc, close: closeFn}, nil
}
