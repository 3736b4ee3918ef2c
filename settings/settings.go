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

// Package settings persists user preferences between runs of the tools.
//
// Preferences are kept in a small key-value store, backed by a JSON file.
// All values are strings; the watermark configuration is stored as a JSON
// document inside its string value.
package settings

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"seehuhn.de/go/pdftools/pagerange"
	"seehuhn.de/go/pdftools/watermark"
)

// Keys of the stored values.
const (
	KeyWatermark      = "pdfTools_watermark"
	KeySplitType      = "pdfTools_splitType"
	KeyPageRanges     = "pdfTools_pageRanges"
	KeyMergedFileName = "pdfTools_mergedFileName"
)

// Settings are the user preferences.
type Settings struct {
	Watermark      watermark.Config
	SplitMode      pagerange.Mode
	PageRanges     string
	MergedFileName string
}

// Defaults returns the settings used when nothing has been stored.
func Defaults() Settings {
	return Settings{
		Watermark: watermark.Default(),
		SplitMode: pagerange.Evenly,
	}
}

// ResetWatermark restores the default watermark configuration.
// The other settings are not changed.
func (s *Settings) ResetWatermark() {
	s.Watermark = watermark.Default()
}

// Store is a key-value store backed by a file.
// Changes made by Set and Delete are written to disk by Flush.
type Store struct {
	path   string
	values map[string]string
}

// Open reads the store at path.
// A missing file gives an empty store.  So does a file which cannot be
// parsed, since the stored values are only a convenience.  Entries whose
// value is not a string are dropped, the other entries are kept.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	} else if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if json.Unmarshal(data, &raw) != nil {
		return s, nil
	}
	for key, msg := range raw {
		var v *string
		if json.Unmarshal(msg, &v) == nil && v != nil {
			s.values[key] = *v
		}
	}
	return s, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores a value.
func (s *Store) Set(key, value string) {
	s.values[key] = value
}

// Delete removes a value.
func (s *Store) Delete(key string) {
	delete(s.values, key)
}

// Keys returns the keys of all stored values, in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Flush writes the store to disk.  The file is replaced atomically.
func (s *Store) Flush() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	err = os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".settings-*")
	if err != nil {
		return err
	}
	_, err = tmp.Write(append(data, '\n'))
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	err = tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Load returns the stored settings.  Values which are missing or malformed
// are replaced by their defaults, independently for every key.
func (s *Store) Load() Settings {
	res := Defaults()

	if v, ok := s.values[KeyWatermark]; ok {
		var cfg watermark.Config
		if json.Unmarshal([]byte(v), &cfg) == nil {
			res.Watermark = cfg
		}
	}
	if v, ok := s.values[KeySplitType]; ok {
		if mode, err := pagerange.ParseMode(v); err == nil {
			res.SplitMode = mode
		}
	}
	res.PageRanges = s.values[KeyPageRanges]
	res.MergedFileName = s.values[KeyMergedFileName]

	return res
}

// Save stores the given settings and writes the store to disk.
// Empty page ranges and an empty merged file name are not stored,
// previously stored values for these keys are kept.
func (s *Store) Save(settings Settings) error {
	wm, err := json.Marshal(settings.Watermark)
	if err != nil {
		return err
	}
	s.Set(KeyWatermark, string(wm))
	s.Set(KeySplitType, settings.SplitMode.String())
	if settings.PageRanges != "" {
		s.Set(KeyPageRanges, settings.PageRanges)
	}
	if settings.MergedFileName != "" {
		s.Set(KeyMergedFileName, settings.MergedFileName)
	}
	return s.Flush()
}
