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
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	drivermysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
	"moul.io/zapgorm2"

	logger "d7y.io/studio/internal/dflog"
	"d7y.io/studio/studio/config"
)

const (
	// defaultMysqlDialTimeout is dial timeout of mysql.
	defaultMysqlDialTimeout = 1 * time.Minute

	// defaultMysqlReadTimeout is I/O read timeout of mysql.
	defaultMysqlReadTimeout = 2 * time.Minute

	// defaultMysqlWriteTimeout is I/O write timeout of mysql.
	defaultMysqlWriteTimeout = 2 * time.Minute
)

func newMysql(cfg *config.Config) (*gorm.DB, error) {
	mysqlCfg := &cfg.Database.Mysql

	dsn := formatMysqlDSN(mysqlCfg)
	db, err := gorm.Open(drivermysql.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   newGormLogger(cfg.Verbose),
	})
	if err != nil {
		return nil, err
	}

	if mysqlCfg.Migrate {
		if err := migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func formatMysqlDSN(cfg *config.MysqlConfig) string {
	mysqlCfg := mysql.Config{
		User:                 cfg.User,
		Passwd:               cfg.Password,
		Addr:                 fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Net:                  "tcp",
		DBName:               cfg.DBName,
		Loc:                  time.Local,
		AllowNativePasswords: true,
		ParseTime:            true,
		InterpolateParams:    true,
		Timeout:              defaultMysqlDialTimeout,
		ReadTimeout:          defaultMysqlReadTimeout,
		WriteTimeout:         defaultMysqlWriteTimeout,
		TLSConfig:            cfg.TLSConfig,
	}

	return mysqlCfg.FormatDSN()
}

func newGormLogger(verbose bool) gormlogger.Interface {
	logLevel := gormlogger.Info
	if !verbose {
		logLevel = gormlogger.Warn
	}

	return zapgorm2.New(logger.CoreLogger.Desugar()).LogMode(logLevel)
}
