package main

import (
	"log"

	"github.com/TomTonic/jrandom"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     = viper.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jrandom",
	Short: "java.util.Random compatible sequences.",
	Long: `Generate the same pseudo-random sequences as java.util.Random, for example:
  jrandom dump --seed=12345 --kind=ints --count=10
  jrandom slime --seed=12345 -- -3 7

The seed can also be given as JRANDOM_SEED or as "seed" in $HOME/.jrandom.yaml.
Without a seed the generator is seeded from the monotonic clock.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jrandom.yaml)")
	flags.Int64P("seed", "s", 0, "seed of the generator (default: seeded from the clock)")
	if err := cfg.BindPFlag("seed", flags.Lookup("seed")); err != nil {
		panic(err)
	}

	cfg.SetEnvPrefix("jrandom")
	cfg.AutomaticEnv()
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		cfg.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			return
		}
		cfg.AddConfigPath(home)
		cfg.SetConfigName(".jrandom")
		cfg.SetConfigType("yaml")
	}

	// If a config file is found, read it in.
	if err := cfg.ReadInConfig(); err == nil {
		log.Println("Using config file:", cfg.ConfigFileUsed())
	}
}

// seed returns the configured seed and whether there is one at all.
func seed() (int64, bool) {
	if !cfg.IsSet("seed") {
		return 0, false
	}
	return cfg.GetInt64("seed"), true
}

func newGenerator() *jrandom.Random {
	if s, ok := seed(); ok {
		return jrandom.NewRandom(s)
	}
	return jrandom.NewRandom()
}
