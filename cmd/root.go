// Package cmd implements the gqlast command line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jensneuse/abstractlogger"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wundergraph/gqlast/pkg/astparser"
)

// config is shared by all sub commands of one root command. Flags, the environment (GQLAST_*)
// and the config file are merged by viper.
type config struct {
	file  string
	viper *viper.Viper
	log   abstractlogger.Logger
	sync  func()
}

func (c *config) parseOptions() astparser.Options {
	return astparser.Options{
		NoLocation: c.viper.GetBool("no-location"),
		MaxDepth:   c.viper.GetInt("max-depth"),
		MaxTokens:  c.viper.GetInt("max-tokens"),
		Logger:     c.log,
	}
}

// NewRootCommand returns the gqlast command with all sub commands attached.
func NewRootCommand() *cobra.Command {
	cfg := &config{
		viper: viper.New(),
		log:   abstractlogger.NoopLogger,
		sync:  func() {},
	}

	rootCmd := &cobra.Command{
		Use:   "gqlast",
		Short: "gqlast parses GraphQL documents into their canonical JSON form and rewrites them",
		Long: `gqlast is a cli around the gqlast parser and walker.

Every document is parsed into a tree of nodes, the canonical JSON form of that tree is what
parse prints and what rewrite diffs against.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cfg.sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.file, "config", "", "config file (default is $HOME/.gqlast.yaml)")
	flags.Bool("no-location", false, "omit the source location of every node")
	flags.Int("max-depth", 0, "maximum nesting of braces, brackets and parentheses (0 = unlimited)")
	flags.Int("max-tokens", 0, "maximum number of tokens per document (0 = unlimited)")
	flags.BoolP("verbose", "v", false, "log debug output to stderr")
	flags.Bool("error-response", false, "print parse errors as a GraphQL error response to stdout")
	for _, name := range []string{"no-location", "max-depth", "max-tokens", "verbose", "error-response"} {
		_ = cfg.viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newParseCmd(cfg),
		newStatsCmd(cfg),
		newRewriteCmd(cfg),
	)
	return rootCmd
}

// Execute runs the root command with the arguments of the process.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func (c *config) init() error {
	c.viper.SetEnvPrefix("gqlast")
	c.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.viper.AutomaticEnv()

	if c.file != "" {
		c.viper.SetConfigFile(c.file)
		if err := c.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	} else {
		home, err := homedir.Dir()
		if err == nil {
			c.viper.AddConfigPath(home)
			c.viper.SetConfigName(".gqlast")
			// a missing default config file is fine
			_ = c.viper.ReadInConfig()
		}
	}

	if !c.viper.GetBool("verbose") {
		return nil
	}

	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	logger, err := zapConfig.Build()
	if err != nil {
		return err
	}
	c.log = abstractlogger.NewZapLogger(logger, abstractlogger.DebugLevel)
	c.sync = func() {
		_ = logger.Sync()
	}
	if used := c.viper.ConfigFileUsed(); used != "" {
		c.log.Debug("config file loaded", abstractlogger.String("file", used))
	}
	return nil
}
