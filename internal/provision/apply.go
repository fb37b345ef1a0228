package provision

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/joshuapare/hiveprep/internal/winreg"
	"github.com/joshuapare/hiveprep/pkg/settings"
)

// Apply writes every setting into reg. Each key path is created with its
// intermediate keys before its values are written; values are written in
// deterministic name order and the last write wins on duplicates.
func Apply(reg winreg.Registry, list []settings.Setting, log logrus.FieldLogger) error {
	for _, s := range list {
		key, err := reg.CreateKey(s.Path)
		if err != nil {
			return fmt.Errorf("failed to create key %s: %w", s.Path, err)
		}
		for _, name := range s.ValueNames() {
			v := s.Values[name]
			if err := key.SetValue(name, v); err != nil {
				key.Close()
				return fmt.Errorf("failed to set %s\\%s: %w", s.Path, name, err)
			}
			log.WithFields(logrus.Fields{
				"path": s.Path,
				"name": name,
				"type": v.Kind.String(),
			}).Debug("wrote value")
		}
		if err := key.Close(); err != nil {
			return fmt.Errorf("failed to close key %s: %w", s.Path, err)
		}
	}
	return nil
}
