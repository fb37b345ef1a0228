package main

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/joshuapare/hiveprep/internal/countdown"
	"github.com/joshuapare/hiveprep/internal/mount"
	"github.com/joshuapare/hiveprep/internal/provision"
	"github.com/joshuapare/hiveprep/internal/winreg"
	"github.com/joshuapare/hiveprep/pkg/settings"
)

var (
	applyDelay  time.Duration
	applyDryRun bool
)

func init() {
	cmd := newApplyCmd()
	cmd.Flags().DurationVar(&applyDelay, "delay", 10*time.Second, "Countdown before the hive is unloaded")
	cmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Log planned writes without loading the hive")
	rootCmd.AddCommand(cmd)
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Load the hive, write the settings profile, and unload",
		Long:  `The apply command runs the full provisioning flow: load the hive file
under HKEY_USERS\<alias>, write every profile setting, count down, unload.

A stale alias left by an aborted run is removed before loading.

Example:
  hiveprep apply
  hiveprep apply --hive D:\Mount\Users\Default\NTUSER.DAT --delay 5s
  hiveprep apply --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func runApply(ctx context.Context, out io.Writer) error {
	list := settings.DefaultProfile()

	if applyDryRun {
		return dryRun(list)
	}
	if !mount.Elevated() {
		return errors.New("loading a hive requires an elevated console")
	}

	p := &provision.Provisioner{
		HivePath:     hivePath,
		Settings:     list,
		Delay:        applyDelay,
		Mounter:      mount.New(alias, nil),
		OpenRegistry: winreg.Live,
		Waiter:       &countdown.Counter{Out: out},
		Log:          log,
	}
	return p.Run(ctx)
}

// dryRun logs every write the profile would perform without touching the
// hive file or the registry.
func dryRun(list []settings.Setting) error {
	if err := settings.ValidateAll(list); err != nil {
		return err
	}
	for _, s := range list {
		for _, name := range s.ValueNames() {
			v := s.Values[name]
			log.WithFields(logrus.Fields{
				"path":  s.Path,
				"name":  name,
				"type":  v.Kind.String(),
				"value": v.Display(),
			}).Info("would write")
		}
	}
	return nil
}
