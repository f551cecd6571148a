// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the sentinel command-line tool.
//
// Configuration is read, from highest to lowest priority, from command-line
// flags, SENTINEL_* environment variables (SENTINEL_CAPACITY, SENTINEL_SEP,
// SENTINEL_LOG_LEVEL) and a YAML config file. The config file is the one
// given with --config, else SENTINEL_CONFIG_FILE, else .sentinel.yml in the
// working directory when present.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v       *viper.Viper
	out     io.Writer
	errOut  io.Writer
	log     *slog.Logger
	cfgFile string
}

// NewRootCommand returns the root command writing results to out and
// diagnostics to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		out:    out,
		errOut: errOut,
		log:    slog.New(slog.DiscardHandler),
	}

	root := &cobra.Command{
		Use:   "sentinel",
		Short: "Inspect fixed-capacity arrays with a variable live length",
		Long: `sentinel builds fixed-capacity arrays from literal values or from YAML/JSON
files and prints what length-aware operations see: size, forward and reverse
iteration, and checked access. Slots past the live length are only visible
through raw access (--raw).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .sentinel.yml, can also use SENTINEL_CONFIG_FILE)")
	pf.StringP("log-level", "l", "warn", "log level (debug, info, warn, error)")
	pf.IntP("capacity", "c", 16, "array capacity ("+supportedCapacities()+")")
	pf.String("sep", ",", "separator between printed values")

	root.AddCommand(newShowCommand(a), newDemoCommand(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	switch {
	case a.cfgFile != "":
		a.v.SetConfigFile(a.cfgFile)
	case os.Getenv("SENTINEL_CONFIG_FILE") != "":
		a.v.SetConfigFile(os.Getenv("SENTINEL_CONFIG_FILE"))
	default:
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".sentinel")
	}
	a.v.SetEnvPrefix("SENTINEL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cfgRead := true
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
		cfgRead = false
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	if cfgRead {
		a.log.Debug("using config file", "path", a.v.ConfigFileUsed())
	}
	return nil
}
