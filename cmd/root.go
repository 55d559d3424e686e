package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"Kleene/core"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// MaxLengthLimit bounds the closure length accepted from the command line.
const MaxLengthLimit = 10

var cfgFile string

var maincontext = context.Background()

var rootCmd = &cobra.Command{
	Use:   "kleene",
	Short: "substrings, prefixes, suffixes and alphabet closures",
	Long: `Kleene works the basic string exercises of formal-language theory.

  kleene Decompose -s abc                 substrings, prefixes and suffixes
  kleene Closure -a ab -l 3               Kleene and positive closure
  kleene Closure -p binary -l 4 --save    write resultados_cerraduras.txt
  kleene Batch -f words.txt -o out.txt    decompose every line of a file`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	maincontext = ctx

	err := rootCmd.Execute()
	_ = core.Logger.Sync()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.kleene.yaml)")
	rootCmd.PersistentFlags().StringP("format", "", "text", "the format of output (text or json)")
	rootCmd.PersistentFlags().StringP("logfile", "", "kleene.log", "log file")
	rootCmd.PersistentFlags().BoolP("nolog", "", false, "don't produce log")
	rootCmd.PersistentFlags().BoolP("nobanner", "", false, "dont output banner in console")
	rootCmd.PersistentFlags().BoolP("noconsole", "", false, "dont output result in console")

	for _, name := range []string{"format", "logfile", "nolog", "nobanner", "noconsole"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	viper.SetDefault("closure.length", 3)
	viper.SetDefault("closure.warn_size", 1000000)
	viper.SetDefault("batch.thread", 4)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".kleene")
	}

	viper.SetEnvPrefix("kleene")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setup(cmd *cobra.Command, args []string) error {
	core.Format = viper.GetString("format")
	if core.Format != "text" && core.Format != "json" {
		return fmt.Errorf("%w: unknown format %q", core.ErrInvalidInput, core.Format)
	}

	if err := core.InitLogger(viper.GetString("logfile"), viper.GetBool("nolog")); err != nil {
		return err
	}

	if !viper.GetBool("nobanner") && !viper.GetBool("noconsole") {
		core.PrintBanner(cmd.ErrOrStderr())
	}
	return nil
}

// baseOptions collects the settings shared by every command.
func baseOptions(cmd *cobra.Command) (core.Options, error) {
	opts := core.Options{
		Format:    core.Format,
		Noconsole: viper.GetBool("noconsole"),
		WarnSize:  uint64(viper.GetInt64("closure.warn_size")),
		Thread:    viper.GetInt("batch.thread"),
		Out:       cmd.OutOrStdout(),
		Err:       cmd.ErrOrStderr(),
	}

	var err error
	opts.Quote, err = cmd.Flags().GetBool("quote")
	if err != nil {
		return opts, fmt.Errorf("invalid value for quote: %w", err)
	}

	opts.Output, err = cmd.Flags().GetString("output")
	if err != nil {
		return opts, fmt.Errorf("invalid value for output: %w", err)
	}

	save, err := cmd.Flags().GetBool("save")
	if err != nil {
		return opts, fmt.Errorf("invalid value for save: %w", err)
	}
	if save && opts.Output == "" {
		opts.Output = cmd.Annotations["default_output"]
	}

	return opts, nil
}
