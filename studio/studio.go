/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package studio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"d7y.io/studio/internal/catalog"
	logger "d7y.io/studio/internal/dflog"
	"d7y.io/studio/studio/cache"
	"d7y.io/studio/studio/compute"
	"d7y.io/studio/studio/config"
	"d7y.io/studio/studio/database"
	"d7y.io/studio/studio/job"
	"d7y.io/studio/studio/metrics"
	"d7y.io/studio/studio/notification"
	"d7y.io/studio/studio/router"
	"d7y.io/studio/studio/service"
	"d7y.io/studio/studio/storage"
)

const (
	gracefulStopTimeout = 10 * time.Second
)

type Server struct {
	// Server configuration
	config *config.Config

	// REST server
	restServer *http.Server

	// Metrics server
	metricsServer *http.Server

	// Notification hub
	hub *notification.Hub

	// Project cache
	cache *cache.Cache

	// Database clients
	database *database.Database

	// Lifecycle of background routines
	ctx    context.Context
	cancel context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{config: cfg, ctx: ctx, cancel: cancel}

	// Initialize database
	db, err := database.New(ctx, cfg)
	if err != nil {
		cancel()
		return nil, err
	}
	s.database = db

	// Initialize catalog
	algorithms, err := catalog.New()
	if err != nil {
		cancel()
		return nil, err
	}

	// Initialize dataset storage
	datasets, err := storage.New(cfg.Server.DataDir, cfg.Upload.AllowedExtensions)
	if err != nil {
		cancel()
		return nil, err
	}

	// Initialize job
	j, err := job.New(cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	// Initialize project cache
	s.cache = cache.New(cfg, db.RDB)

	// Initialize notification hub
	s.hub = notification.New(&cfg.Notification, db.RDB)

	// Initialize REST server
	svc := service.New(
		cfg,
		service.WithDatabase(db),
		service.WithCache(s.cache),
		service.WithStorage(datasets),
		service.WithCompute(compute.New(&cfg.Compute)),
		service.WithJob(j),
		service.WithNotifier(s.hub),
		service.WithCatalog(algorithms),
	)

	r, err := router.Init(cfg, svc, s.hub)
	if err != nil {
		cancel()
		return nil, err
	}

	s.restServer = &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: r,
	}

	// Initialize metrics server
	if cfg.Metrics.Enable {
		s.metricsServer = metrics.New(&cfg.Metrics)
	}

	// Supervise jobs left behind by a previous process.
	if err := svc.ResumeJobs(ctx); err != nil {
		logger.Warnf("resume jobs failed: %s", err.Error())
	}

	return s, nil
}

func (s *Server) Serve() error {
	g, ctx := errgroup.WithContext(s.ctx)

	// Started notification subscriber
	g.Go(func() error {
		logger.Info("started notification subscriber")
		if err := s.hub.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("notification subscriber closed unexpect: %w", err)
		}

		return nil
	})

	// Started cache eviction subscriber
	g.Go(func() error {
		logger.Info("started cache eviction subscriber")
		if err := s.cache.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("cache eviction subscriber closed unexpect: %w", err)
		}

		return nil
	})

	// Started metrics server
	if s.metricsServer != nil {
		g.Go(func() error {
			logger.Infof("started metrics server at %s", s.metricsServer.Addr)
			if err := s.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server closed unexpect: %w", err)
			}

			return nil
		})
	}

	// Started REST server
	g.Go(func() error {
		logger.Infof("started rest server at %s", s.restServer.Addr)
		if err := s.restServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("rest server closed unexpect: %w", err)
		}

		return nil
	})

	return g.Wait()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulStopTimeout)
	defer cancel()

	var errs error

	// Stop REST server
	if err := s.restServer.Shutdown(ctx); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("rest server: %w", err))
	}
	logger.Info("rest server closed under request")

	// Stop metrics server
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("metrics server: %w", err))
		}
		logger.Info("metrics server closed under request")
	}

	// Stop background routines
	s.cancel()

	// Close notification clients
	if err := s.hub.Close(); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("notification hub: %w", err))
	}
	logger.Info("notification hub closed under request")

	// Close redis client
	if s.database.RDB != nil {
		if err := s.database.RDB.Close(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("redis: %w", err))
		}
	}

	if errs != nil {
		logger.Errorf("server failed to stop: %s", errs.Error())
	}
}
