package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hiveprep/internal/mount"
)

func init() {
	rootCmd.AddCommand(newUnloadCmd())
}

func newUnloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unload",
		Short: "Unload a hive left mounted by an aborted run",
		Long:  `The unload command removes a stale HKEY_USERS alias without applying
any settings. It succeeds when no stale mount exists.

Example:
  hiveprep unload
  hiveprep unload --alias DefaultProfile`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnload(cmd.Context())
		},
	}
}

func runUnload(ctx context.Context) error {
	if !mount.Elevated() {
		return errors.New("unloading a hive requires an elevated console")
	}
	m := mount.New(alias, nil)
	err := m.Unmount(ctx)
	if errors.Is(err, mount.ErrNotMounted) {
		log.WithField("alias", m.KeyPath()).Info("no stale mount to clean up")
		return nil
	}
	if err != nil {
		return err
	}
	log.WithField("alias", m.KeyPath()).Info("stale mount removed")
	return nil
}
