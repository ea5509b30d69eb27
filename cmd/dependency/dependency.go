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

package dependency

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/mitchellh/mapstructure"
	"github.com/phayes/freeport"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	logger "d7y.io/studio/internal/dflog"
)

const (
	// EnvPrefix is the environment prefix of every config key, e.g.
	// STUDIO_SERVER_PORT overrides server.port.
	EnvPrefix = "studio"

	// DefaultConfigFile is read when --config is not given.
	DefaultConfigFile = "/etc/studio/studio.yaml"
)

// InitCommandAndConfig registers the global flags of cmd and loads the
// config file, flags and environment into config before cmd runs.
func InitCommandAndConfig(cmd *cobra.Command, useConfigFile bool, config any) {
	flags := cmd.PersistentFlags()
	flags.Bool("console", false, "whether logger output records to the stdout")
	flags.Bool("verbose", false, "whether logger use debug level")
	flags.Int("pprof-port", -1, "listen port for pprof and statsview, 0 represents random port")
	if useConfigFile {
		flags.String("config", DefaultConfigFile, "the path of configuration file with yaml extension name")
	}

	v := viper.GetViper()
	for key, name := range map[string]string{"console": "console", "verbose": "verbose", "pprofPort": "pprof-port", "config": "config"} {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			panic(errors.Wrapf(err, "bind flag %s", name))
		}
	}

	cmd.AddCommand(VersionCmd)

	cobra.OnInitialize(func() {
		if err := initConfig(v, useConfigFile, config); err != nil {
			logger.Fatal(err)
		}
	})
}

func initConfig(v *viper.Viper, useConfigFile bool, config any) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if useConfigFile {
		cfgFile := v.GetString("config")
		if cfgFile == "" {
			cfgFile = DefaultConfigFile
		}

		v.SetConfigFile(cfgFile)
		v.SetConfigType(strings.TrimPrefix(filepath.Ext(cfgFile), "."))
		if err := v.ReadInConfig(); err != nil {
			// The default config file is optional.
			if !(os.IsNotExist(err) && cfgFile == DefaultConfigFile) {
				return errors.Wrapf(err, "read config file %s", cfgFile)
			}
		}
	}

	if err := v.Unmarshal(config, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			decodeWithYAML(reflect.TypeOf(time.Second)),
		)
	}); err != nil {
		return errors.Wrap(err, "unmarshal config")
	}

	return nil
}

// decodeWithYAML decodes the given types by unmarshalling them from yaml text.
func decodeWithYAML(types ...reflect.Type) mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data any) (any, error) {
		for _, typ := range types {
			if t == typ {
				b, _ := yaml.Marshal(data)
				v := reflect.New(t)
				return v.Interface(), yaml.Unmarshal(b, v.Interface())
			}
		}

		return data, nil
	}
}

// SetupQuitSignalHandler calls handler once on SIGINT or SIGTERM.
func SetupQuitSignalHandler(handler func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		var done bool
		for sig := range signals {
			logger.Infof("receive %s signal", sig)
			if !done {
				done = true
				handler()
				logger.Infof("handle %s signal finish", sig)
			}
		}
	}()
}

// InitMonitor starts pprof and statsview when verbose is set or pprofPort
// is not negative. The returned func stops it.
func InitMonitor(verbose bool, pprofPort int) func() {
	if !verbose && pprofPort < 0 {
		return func() {}
	}

	if pprofPort <= 0 {
		port, err := freeport.GetFreePort()
		if err != nil {
			logger.Warnf("get free port for pprof error: %v", err)
			return func() {}
		}
		pprofPort = port
	}

	debugAddr := fmt.Sprintf("localhost:%d", pprofPort)
	viewer.SetConfiguration(viewer.WithAddr(debugAddr))
	vm := statsview.New()

	go func() {
		logger.With("pprof", fmt.Sprintf("http://%s/debug/pprof", debugAddr),
			"statsview", fmt.Sprintf("http://%s/debug/statsview", debugAddr)).
			Infof("enable pprof at %s", debugAddr)

		if err := vm.Start(); err != nil {
			logger.Warnf("serve pprof error: %v", err)
		}
	}()

	return func() {
		vm.Stop()
	}
}
