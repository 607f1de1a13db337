package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/justyntemme/frei0rgo/pkg/framework/debug"
	"github.com/justyntemme/frei0rgo/pkg/fx/blend"
	"github.com/justyntemme/frei0rgo/pkg/fx/fill"
	"github.com/justyntemme/frei0rgo/pkg/fx/shift"
	f0r "github.com/justyntemme/frei0rgo/pkg/plugin"
)

const FlagLogLevel = "log-level"

// plugins are the definitions the command can load, by name
var plugins = map[string]f0r.Driver{
	blend.Info.Name: blend.Definition,
	fill.Info.Name:  fill.Definition,
	shift.Info.Name: shift.Definition,
}

func pluginNames() []string {
	names := make([]string, 0, len(plugins))
	for name := range plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// load registers the named plugin as the active one
func load(name string) (f0r.Driver, error) {
	d, ok := plugins[name]
	if !ok {
		return nil, fmt.Errorf("unknown plugin %q, expected one of %q", name, pluginNames())
	}
	f0r.Register(d)
	return d, nil
}

// New creates the root command
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "f0rrender [sub-command]",
		Short: "Inspect and run frei0r plugins built with frei0rgo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		DisableAutoGenTag: true,
		SilenceUsage:      true,
	}

	level := levelFlag(debug.Default().Level())
	cmd.PersistentFlags().Var(&level, FlagLogLevel, "log level (debug, info, warn, error, fatal, off)")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		debug.SetLevel(debug.LogLevel(level))
	}

	cmd.AddCommand(newInfoCommand())
	cmd.AddCommand(newRenderCommand())
	return cmd
}

// levelFlag parses a debug.LogLevel
type levelFlag debug.LogLevel

var _ pflag.Value = (*levelFlag)(nil)

func (l *levelFlag) String() string {
	return debug.LogLevel(*l).String()
}

func (l *levelFlag) Set(s string) error {
	level, err := debug.ParseLevel(s)
	if err != nil {
		return err
	}
	*l = levelFlag(level)
	return nil
}

func (l *levelFlag) Type() string {
	return "level"
}
