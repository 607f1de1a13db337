package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
	f0r "github.com/justyntemme/frei0rgo/pkg/plugin"
)

// pluginReport is the YAML form of a plugin's metadata
type pluginReport struct {
	Name        string        `yaml:"name"`
	Author      string        `yaml:"author"`
	Type        string        `yaml:"type"`
	ColorModel  string        `yaml:"colorModel"`
	Version     string        `yaml:"version"`
	Major       int32         `yaml:"major"`
	Minor       int32         `yaml:"minor"`
	Explanation string        `yaml:"explanation,omitempty"`
	Params      []paramReport `yaml:"params,omitempty"`
}

type paramReport struct {
	Index       int    `yaml:"index"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Explanation string `yaml:"explanation,omitempty"`
	Default     any    `yaml:"default"`
}

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info {blend|color|shift}",
		Short: "Print the metadata and parameter defaults of a plugin as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load(args[0])
			if err != nil {
				return err
			}
			report, err := describe(d)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), report)
		},
	}
}

// describe collects the metadata of d. Defaults are read from a throwaway
// instance, so d must be the registered plugin.
func describe(d f0r.Driver) (*pluginReport, error) {
	info := d.Info()
	major, minor := d.Versions()
	report := &pluginReport{
		Name:        info.Name,
		Author:      info.Author,
		Type:        d.Kind().String(),
		ColorModel:  info.ColorModel.String(),
		Version:     info.Version,
		Major:       major,
		Minor:       minor,
		Explanation: info.Explanation,
	}

	h, err := f0r.Construct(frei0r.DimensionStep, frei0r.DimensionStep)
	if err != nil {
		return nil, err
	}
	defer f0r.Destruct(h)

	for i, p := range d.Params() {
		v, err := f0r.GetParam(h, i)
		if err != nil {
			return nil, fmt.Errorf("reading default of %q: %w", p.Name, err)
		}
		report.Params = append(report.Params, paramReport{
			Index:       i,
			Name:        p.Name,
			Type:        p.Kind.String(),
			Explanation: p.Explanation,
			Default:     v,
		})
	}
	return report, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
