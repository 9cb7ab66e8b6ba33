// Package cli implements the command-line entry point of the video player.
package cli

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/video-player/internal/config"
	"github.com/ytget/video-player/internal/logging"
)

// Flag names
const (
	FlagConfig   = "config"
	FlagVideoDir = "video-dir"
	FlagMPV      = "mpv"
	FlagLogLevel = "log-level"
	FlagVersion  = "version"
)

// RunFunc starts the application with a loaded configuration
type RunFunc func(cfg *config.Config, version string) error

// NewRootCommand builds the root command. Flags are bound into v so they
// override the config file and the environment.
func NewRootCommand(v *viper.Viper, version string, run RunFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppCommand,
		Short:         "A two-screen desktop video player backed by mpv",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lo.Must(cmd.Flags().GetBool(FlagVersion)) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", AppName, version)
				return nil
			}

			cfg, err := config.Load(v, lo.Must(cmd.Flags().GetString(FlagConfig)))
			if err != nil {
				return err
			}

			closer, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
			if err != nil {
				return err
			}
			defer closer.Close()

			log.Infof("%s v%s starting", AppName, version)
			return run(cfg, version)
		},
	}

	cmd.Flags().BoolP(FlagVersion, "v", false, "Print the application version")
	cmd.Flags().StringP(FlagConfig, "c", "", "Path to a config file (default <user config dir>/video-player/config.yaml)")

	cmd.Flags().StringP(FlagVideoDir, "d", "", "Directory the video files are resolved against")
	lo.Must0(v.BindPFlag(config.KeyVideoDir, cmd.Flags().Lookup(FlagVideoDir)))

	cmd.Flags().String(FlagMPV, "", "mpv executable")
	lo.Must0(v.BindPFlag(config.KeyMPVBinary, cmd.Flags().Lookup(FlagMPV)))

	cmd.Flags().String(FlagLogLevel, "", "Log level (trace, debug, info, warn, error)")
	lo.Must0(v.BindPFlag(config.KeyLogLevel, cmd.Flags().Lookup(FlagLogLevel)))

	return cmd
}

// Execute runs the command line and exits on error
func Execute(version string) {
	if err := NewRootCommand(viper.New(), version, runApp).Execute(); err != nil {
		log.Error(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
