// Package provision runs the end-to-end Default User customization:
// precheck, hive mount, settings application, countdown, unmount. The flow
// is strictly sequential; any failure is fatal to the run.
package provision

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/joshuapare/hiveprep/internal/winreg"
	"github.com/joshuapare/hiveprep/pkg/settings"
)

// Mounter is the subset of internal/mount used by the flow.
type Mounter interface {
	Mount(ctx context.Context, path string) error
	Unmount(ctx context.Context) error
	Alias() string
	KeyPath() string
}

// Waiter blocks for the pre-unmount delay.
type Waiter interface {
	Wait(ctx context.Context, d time.Duration) error
}

// Provisioner wires the flow together. All fields are required except
// Delay, which may be zero to skip the countdown.
type Provisioner struct {
	HivePath string
	Settings []settings.Setting
	Delay    time.Duration

	Mounter      Mounter
	OpenRegistry func(alias string) winreg.Registry
	Waiter       Waiter
	Log          logrus.FieldLogger
}

// Run executes the flow. The hive file must exist before any mount is
// attempted. After a failed apply the hive is unloaded best-effort so no
// alias is left dangling; the apply error is still returned. Cancellation
// during the countdown abandons the run without unloading, matching the
// operator killing the process; the stale alias is cleaned up by the next
// mount.
func (p *Provisioner) Run(ctx context.Context) error {
	if err := settings.ValidateAll(p.Settings); err != nil {
		return err
	}
	if _, err := os.Stat(p.HivePath); err != nil {
		return fmt.Errorf("hive file not found: %s: %w", p.HivePath, err)
	}

	p.Log.WithFields(logrus.Fields{"hive": p.HivePath, "alias": p.Mounter.Alias()}).Info("loading hive")
	if err := p.Mounter.Mount(ctx, p.HivePath); err != nil {
		return err
	}

	if err := Apply(p.OpenRegistry(p.Mounter.Alias()), p.Settings, p.Log); err != nil {
		if uerr := p.Mounter.Unmount(ctx); uerr != nil {
			p.Log.WithError(uerr).Warn("failed to unload hive after apply error")
		}
		return err
	}

	if p.Delay > 0 {
		if err := p.Waiter.Wait(ctx, p.Delay); err != nil {
			return fmt.Errorf("aborted before unload: %w", err)
		}
	}

	p.Log.WithField("alias", p.Mounter.KeyPath()).Info("unloading hive")
	if err := p.Mounter.Unmount(ctx); err != nil {
		return err
	}
	p.Log.WithField("hive", p.HivePath).Info("default user hive updated")
	return nil
}
