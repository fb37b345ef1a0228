package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Default locations for a stock Windows install.
const (
	defaultHivePath = `C:\Users\Default\NTUSER.DAT`
	defaultAlias    = "DefaultProfile"
)

var log = logrus.New()

var (
	// Global flags
	hivePath string
	alias    string
	verbose  bool
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "hiveprep",
	Short: "Customize the Default User registry hive",
	Long:  `hiveprep loads the Default User registry hive under a temporary key in
HKEY_USERS, writes a fixed profile of settings that every new account
inherits, waits a cancellable countdown, then unloads the hive.

Loading a hive requires an elevated console and exclusive access to the
hive file; close any other tool holding it first.`,
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
		log.SetOutput(cmd.ErrOrStderr())
		log.SetFormatter(&logrus.TextFormatter{DisableColors: noColor})
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&hivePath, "hive", defaultHivePath, "Path to the Default User hive file")
	rootCmd.PersistentFlags().StringVar(&alias, "alias", defaultAlias, "HKEY_USERS subkey the hive is loaded under")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// execute runs the command tree. Ctrl-C cancels the active command's
// context; any error exits nonzero.
func execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		stop()
		os.Exit(1)
	}
}
