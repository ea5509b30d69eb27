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

package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	pkgredis "d7y.io/studio/pkg/redis"
	"d7y.io/studio/studio/config"
	"d7y.io/studio/studio/models"
)

type Database struct {
	DB  *gorm.DB
	RDB redis.UniversalClient
}

func New(ctx context.Context, cfg *config.Config) (*Database, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Type {
	case config.DatabaseTypeMysql, config.DatabaseTypeMariaDB:
		db, err = newMysql(cfg)
	case config.DatabaseTypePostgres:
		db, err = newPostgres(cfg)
	default:
		return nil, fmt.Errorf("invalid database type %s", cfg.Database.Type)
	}
	if err != nil {
		return nil, err
	}

	rdb, err := pkgredis.NewRedis(ctx, &pkgredis.Options{
		Addrs:      cfg.Database.Redis.Addrs,
		MasterName: cfg.Database.Redis.MasterName,
		Username:   cfg.Database.Redis.Username,
		Password:   cfg.Database.Redis.Password,
		DB:         cfg.Database.Redis.DB,
	})
	if err != nil {
		return nil, err
	}

	return &Database{
		DB:  db,
		RDB: rdb,
	}, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Flow{},
		&models.Project{},
		&models.EdaRun{},
		&models.TrainingRun{},
		&models.Job{},
	)
}
