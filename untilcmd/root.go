// Package untilcmd implements the until command line tool.
package untilcmd

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix is the prefix for environment variables that override
// configuration, e.g. UNTIL_LOG_LEVEL.
const EnvPrefix = "UNTIL"

// NewConfig returns the viper instance shared by the commands, with
// defaults and environment overrides set.
func NewConfig() *viper.Viper {
	conf := viper.New()
	conf.SetEnvPrefix(EnvPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	conf.SetDefault("log-level", "warn")
	conf.SetDefault("jobs", 4)
	return conf
}

// NewCmd creates a new root command. The level is adjusted from the
// configured log level before any subcommand runs.
func NewCmd(ctx context.Context, conf *viper.Viper, level zap.AtomicLevel) *cobra.Command {
	c := &cobra.Command{
		Use:           "until",
		Short:         "until prints sequences up to and including the first match",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path := conf.GetString("config"); path != "" {
				conf.SetConfigFile(path)
				if err := conf.ReadInConfig(); err != nil {
					return errors.Wrapf(err, "reading config %q", path)
				}
			}
			if err := level.UnmarshalText([]byte(conf.GetString("log-level"))); err != nil {
				return errors.Wrap(err, "log-level")
			}
			return nil
		},
	}

	flags := c.PersistentFlags()
	flags.String("config", "", "path to a yaml config file")
	flags.String("log-level", conf.GetString("log-level"), "one of debug, info, warn, error")
	for _, name := range []string{"config", "log-level"} {
		if err := conf.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	for _, child := range []*cobra.Command{
		newLinesCmd(ctx, conf),
		newVarintCmd(ctx),
	} {
		c.AddCommand(child)
	}
	return c
}
