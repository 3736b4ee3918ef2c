// seehuhn.de/go/pdftools - split, merge and watermark PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/pdftools/settings"
	"seehuhn.de/go/pdftools/watermark"
)

// WatermarkFlags holds the command line flags which describe a watermark.
type WatermarkFlags struct {
	fs *flag.FlagSet

	text     string
	size     float64
	position string
	opacity  float64
	color    string
}

// AddWatermarkFlags registers the watermark flags with fs.
// The defaults shown in the help text are those of [watermark.Default].
func AddWatermarkFlags(fs *flag.FlagSet) *WatermarkFlags {
	def := watermark.Default()
	w := &WatermarkFlags{fs: fs}
	fs.StringVar(&w.text, "text", def.Text, "watermark `text`; empty to disable the watermark")
	fs.Float64Var(&w.size, "size", def.FontSize, "watermark font size")
	fs.StringVar(&w.position, "position", def.Position.String(),
		"watermark layout: center, diagonal, tiled or top-left")
	fs.Float64Var(&w.opacity, "opacity", def.Opacity, "watermark opacity, between 0 and 1")
	fs.StringVar(&w.color, "color", def.Color.String(), "watermark colour as `#rrggbb`")
	return w
}

// Apply overrides the fields of cfg for which a flag was given on the
// command line.  Flags which were not set leave cfg unchanged.
func (w *WatermarkFlags) Apply(cfg *watermark.Config) error {
	res := *cfg
	var err error
	w.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "text":
			res.Text = w.text
		case "size":
			res.FontSize = w.size
		case "position":
			var pos watermark.Position
			pos, err = watermark.ParsePosition(w.position)
			res.Position = pos
		case "opacity":
			res.Opacity = w.opacity
		case "color":
			res.Color = watermark.ParseColor(w.color)
		}
	})
	if err != nil {
		return err
	}
	if res.Enabled() {
		err = res.Validate()
		if err != nil {
			return fmt.Errorf("watermark: %w", err)
		}
	}
	*cfg = res
	return nil
}

// Common holds the flags shared by all tools.
type Common struct {
	Settings       string
	ResetWatermark bool
	Verbose        bool
	Version        bool
	CPUProfile     string
	MemProfile     string
}

// AddCommonFlags registers the shared flags with fs.
func AddCommonFlags(fs *flag.FlagSet) *Common {
	c := &Common{}
	fs.StringVar(&c.Settings, "settings", DefaultSettingsPath(), "settings `file`; empty to disable settings")
	fs.BoolVar(&c.ResetWatermark, "reset-watermark", false, "restore the default watermark settings")
	fs.BoolVar(&c.Verbose, "v", false, "verbose output")
	fs.BoolVar(&c.Version, "version", false, "print version information and exit")
	fs.StringVar(&c.CPUProfile, "cpuprofile", "", "write cpu profile to `file`")
	fs.StringVar(&c.MemProfile, "memprofile", "", "write memory profile to `file`")
	return c
}

// OpenSettings opens the settings store.  If no settings file is
// configured, nil is returned.
func (c *Common) OpenSettings() (*settings.Store, error) {
	if c.Settings == "" {
		return nil, nil
	}
	return settings.Open(c.Settings)
}

// LoadSettings returns the stored settings of the store s, or the defaults
// if s is nil.  If -reset-watermark was given, the stored watermark is
// replaced by the default.
func (c *Common) LoadSettings(s *settings.Store) settings.Settings {
	res := settings.Defaults()
	if s != nil {
		res = s.Load()
	}
	if c.ResetWatermark {
		res.ResetWatermark()
	}
	return res
}

// DefaultSettingsPath returns the location of the settings file in the
// user's configuration directory, or the empty string if there is no such
// directory.
func DefaultSettingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pdftools", "settings.json")
}

// IsSet reports whether the flag with the given name was set on the
// command line.
func IsSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// CheckOutput returns an error if the file exists and force is not set.
func CheckOutput(fname string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(fname); !os.IsNotExist(err) {
		return fmt.Errorf("output file %q already exists", fname)
	}
	return nil
}
