package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"gestaobikes/cache"
	"gestaobikes/database"
	"gestaobikes/utils"

	"go.uber.org/zap"
)

type app struct {
	cfg    utils.Config
	logger *zap.Logger
	store  *database.Store
	cache  cache.Cache
	now    func() time.Time
}

// setup loads the environment and connects the store and cache.
func setup(ctx context.Context) (*app, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("[ENV] Erro ao obter o diretório de trabalho: %w", err)
	}
	if err := utils.LoadEnvVariables(workDir); err != nil {
		return nil, err
	}

	cfg, err := utils.ReadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	if cfg.Env == utils.ENV_RELEASE {
		logger.Warn("[ATENÇÃO] Rodando em ambiente de PRODUÇÃO!")
	} else {
		logger.Info("Ambiente atual", zap.String("env", cfg.Env))
	}

	dbName, err := database.GetDB(cfg.Env)
	if err != nil {
		return nil, err
	}

	store, err := database.Open(ctx, cfg.Store, cfg.MongoURI, dbName, cfg.MySQLURI)
	if err != nil {
		return nil, err
	}
	logger.Info("store connected", zap.String("store", cfg.Store), zap.String("database", dbName))

	c, err := cache.NewRedisCache(ctx, cfg.RedisURI)
	if err != nil {
		store.Close(ctx)
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, store: store, cache: c, now: time.Now}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("failed to close cache", zap.Error(err))
	}
	if err := a.store.Close(ctx); err != nil {
		a.logger.Warn("failed to close store", zap.Error(err))
	}
	a.logger.Sync()
}
