// Package plugin holds the metadata a frei0r plugin reports about itself.
package plugin

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
)

// Info contains plugin metadata
type Info struct {
	Name        string            // Short display name
	Author      string            // Plugin author
	Version     string            // Semantic version (e.g., "1.0.0"); major and minor are reported to the host
	ColorModel  frei0r.ColorModel // Pixel format the plugin works in
	Explanation string            // Optional explanation
}

// Versions returns the major and minor version numbers parsed from Version.
func (i Info) Versions() (major, minor int32, err error) {
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return 0, 0, fmt.Errorf("plugin %q: invalid version %q: %w", i.Name, i.Version, err)
	}
	return int32(v.Major()), int32(v.Minor()), nil
}

// Validate checks the metadata for a plugin of the given type.
func (i Info) Validate(pluginType frei0r.PluginType) error {
	if i.Name == "" {
		return errors.New("plugin name is empty")
	}
	if i.Author == "" {
		return fmt.Errorf("plugin %q: author is empty", i.Name)
	}
	if _, _, err := i.Versions(); err != nil {
		return err
	}

	switch i.ColorModel {
	case frei0r.ColorModelBGRA8888, frei0r.ColorModelRGBA8888:
	case frei0r.ColorModelPacked32:
		// The host must know the format of frames a source creates
		if pluginType == frei0r.PluginTypeSource {
			return fmt.Errorf("plugin %q: source plugins must not use the %s color model", i.Name, i.ColorModel)
		}
	default:
		return fmt.Errorf("plugin %q: unknown color model %d", i.Name, i.ColorModel)
	}

	return nil
}
