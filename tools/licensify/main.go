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

// Licensify adds the license header to all Go source files of the module.
//
// With -check, files are not modified.  Instead, the names of files without
// the header are listed and the exit status is non-zero if there are any.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/pdftools/tools/internal/cli"
)

const header = `// seehuhn.de/go/pdftools - split, merge and watermark PDF files
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

`

var (
	check   = flag.Bool("check", false, "list files without header, do not modify anything")
	verbose = flag.Bool("v", false, "verbose output")
)

func main() {
	flag.Parse()
	root := "."
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}

	log := cli.NewLogger(os.Stderr, *verbose)
	missing, err := licensify(root, *check, log)
	if err != nil {
		log.Fatal(err)
	}
	if *check && len(missing) > 0 {
		for _, path := range missing {
			fmt.Println(path)
		}
		os.Exit(1)
	}
}

// licensify walks the tree below root and returns the Go files which did
// not start with the license header.  Unless check is set, the header is
// added to these files.  Directories starting with "_" or "." are skipped,
// as the go tool does.
func licensify(root string, check bool, log *logrus.Logger) ([]string, error) {
	var missing []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				log.WithField("dir", path).Debug("skip")
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if bytes.HasPrefix(body, []byte(header)) {
			return nil
		}
		if bytes.Contains(body[:min(len(body), 1024)], []byte("Copyright")) {
			log.WithField("file", path).Warn("different copyright notice")
			return nil
		}
		missing = append(missing, path)
		if check {
			return nil
		}

		log.WithField("file", path).Info("updating")
		return os.WriteFile(path, append([]byte(header), body...), 0o644)
	})
	if err != nil {
		return nil, err
	}
	return missing, nil
}
