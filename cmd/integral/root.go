package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/labquad/integral/driver"
)

const envPrefix = "INTEGRAL"

type rootOptions struct {
	v      *viper.Viper
	log    *logrus.Logger
	config string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{
		v:   viper.New(),
		log: logrus.New(),
	}

	defaults := driver.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "integral",
		Short: "Approximate the integral of a tabulated function",
		Long: `Read a tabulated function as whitespace-separated tokens (the number of
points N, then N points, then N values) and print its approximate integral
computed with the left, middle and right rectangle rules, the trapezoidal
rule, Simpson's rule and Newton's 3/8 rule.

Every flag can also be set with an INTEGRAL_ prefixed environment variable
(e.g. INTEGRAL_MIDDLE=true) or in a configuration file passed with --config.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.complete(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.config, "config", "", "configuration file (yaml, json or toml)")
	flags.StringP("input", "i", "-", "input file, - for stdin")
	flags.Bool("middle", defaults.Middle, "also print the middle rectangle rule")
	flags.Int("places", defaults.Places, "number of decimal places results are rounded to")
	flags.Bool("summary", defaults.Summary, "print descriptive statistics of the function values")
	flags.Bool("digest", defaults.Digest, "print the blake3 digest of the table")
	flags.String("log-level", logrus.WarnLevel.String(), "log level (panic, fatal, error, warning, info, debug, trace)")

	return cmd
}

// complete loads the configuration file and binds flags and environment
// variables, flags taking precedence.
func (o *rootOptions) complete(cmd *cobra.Command) error {

	o.v.SetEnvPrefix(envPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()

	if err := o.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("cannot bind flags: %w", err)
	}

	if o.config != "" {
		o.v.SetConfigFile(o.config)
		if err := o.v.ReadInConfig(); err != nil {
			return fmt.Errorf("cannot read config %s: %w", o.config, err)
		}
	}

	level, err := logrus.ParseLevel(o.v.GetString("log-level"))
	if err != nil {
		return err
	}

	o.log.SetOutput(cmd.ErrOrStderr())
	o.log.SetLevel(level)

	return nil
}

func (o *rootOptions) driverConfig() driver.Config {
	return driver.Config{
		Middle:  o.v.GetBool("middle"),
		Places:  o.v.GetInt("places"),
		Summary: o.v.GetBool("summary"),
		Digest:  o.v.GetBool("digest"),
	}
}

func (o *rootOptions) run(cmd *cobra.Command) error {

	var in io.Reader = cmd.InOrStdin()

	if input := o.v.GetString("input"); input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	cfg := o.driverConfig()

	o.log.WithFields(logrus.Fields{
		"middle": cfg.Middle,
		"places": cfg.Places,
	}).Debug("starting session")

	// Session errors are already reported on stderr and end the session
	// normally.
	_ = driver.NewSession(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), o.log).Run(in)

	return nil
}
