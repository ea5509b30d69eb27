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

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"d7y.io/studio/cmd/dependency"
	logger "d7y.io/studio/internal/dflog"
	"d7y.io/studio/studio"
	"d7y.io/studio/studio/config"
	"d7y.io/studio/version"
)

var (
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "the project lifecycle server of studio",
	Long: `Studio is a long-running process and is mainly responsible for dataset uploads,
dispatching EDA and training work to compute workers, relaying their progress to
browsers over websocket and serving the hyperparameter catalog.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Convert config.
		if err := cfg.Convert(); err != nil {
			return err
		}

		// Validate config.
		if err := cfg.Validate(); err != nil {
			return err
		}

		rotateConfig := logger.LogRotateConfig{
			MaxSize:    cfg.Server.LogMaxSize,
			MaxAge:     cfg.Server.LogMaxAge,
			MaxBackups: cfg.Server.LogMaxBackups,
		}

		// Initialize logger.
		if err := logger.InitStudio(cfg.Verbose, cfg.Console, cfg.Server.LogDir, rotateConfig); err != nil {
			return fmt.Errorf("init studio logger: %w", err)
		}

		return runStudio()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	// Initialize default studio config.
	cfg = config.New()
	// Initialize command and config.
	dependency.InitCommandAndConfig(rootCmd, true, cfg)
}

func runStudio() error {
	logger.Infof("version:\n%s", version.Version())

	if cfg.Verbose {
		s, _ := yaml.Marshal(cfg)
		logger.Infof("studio configuration:\n%s", string(s))
	}

	ff := dependency.InitMonitor(cfg.Verbose, cfg.PProfPort)
	defer ff()

	svr, err := studio.New(cfg)
	if err != nil {
		return err
	}

	dependency.SetupQuitSignalHandler(func() { svr.Stop() })
	return svr.Serve()
}
