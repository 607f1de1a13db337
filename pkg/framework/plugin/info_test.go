package plugin

import (
	"testing"

	"github.com/justyntemme/frei0rgo/pkg/frei0r"
)

func TestVersions(t *testing.T) {
	tests := []struct {
		version      string
		major, minor int32
		wantErr      bool
	}{
		{"1.0.0", 1, 0, false},
		{"2.13.4", 2, 13, false},
		{"0.9", 0, 9, false},
		{"v3.1.0-beta.1", 3, 1, false},
		{"", 0, 0, true},
		{"latest", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			info := Info{Name: "test", Version: tt.version}
			major, minor, err := info.Versions()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Versions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if major != tt.major || minor != tt.minor {
				t.Errorf("Expected %d.%d, got %d.%d", tt.major, tt.minor, major, minor)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Info{
		Name:       "shift",
		Author:     "frei0rgo",
		Version:    "1.0.0",
		ColorModel: frei0r.ColorModelRGBA8888,
	}

	tests := []struct {
		name       string
		mutate     func(*Info)
		pluginType frei0r.PluginType
		wantErr    bool
	}{
		{"Valid filter", func(*Info) {}, frei0r.PluginTypeFilter, false},
		{"Valid source", func(*Info) {}, frei0r.PluginTypeSource, false},
		{"Packed32 filter", func(i *Info) { i.ColorModel = frei0r.ColorModelPacked32 }, frei0r.PluginTypeFilter, false},
		{"Packed32 source", func(i *Info) { i.ColorModel = frei0r.ColorModelPacked32 }, frei0r.PluginTypeSource, true},
		{"Unknown color model", func(i *Info) { i.ColorModel = 7 }, frei0r.PluginTypeMixer2, true},
		{"Empty name", func(i *Info) { i.Name = "" }, frei0r.PluginTypeFilter, true},
		{"Empty author", func(i *Info) { i.Author = "" }, frei0r.PluginTypeFilter, true},
		{"Bad version", func(i *Info) { i.Version = "one" }, frei0r.PluginTypeFilter, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := valid
			tt.mutate(&info)
			err := info.Validate(tt.pluginType)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
