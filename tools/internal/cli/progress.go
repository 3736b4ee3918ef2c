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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Progress displays the progress of an operation.
//
// If the output is a terminal, a progress bar is drawn on a single line.
// Otherwise, progress messages are sent to the logger at level Debug.
type Progress struct {
	w      io.Writer
	fd     int
	isTerm bool
	log    *logrus.Logger
	active bool
}

// NewProgress returns a progress display writing to f.
func NewProgress(f *os.File, log *logrus.Logger) *Progress {
	fd := int(f.Fd())
	return &Progress{
		w:      f,
		fd:     fd,
		isTerm: term.IsTerminal(fd),
		log:    log,
	}
}

// Update shows the given state.  The method can be used as the Progress
// callback of [pdftools.Options].
func (p *Progress) Update(percent float64, msg string) {
	if !p.isTerm {
		p.log.WithField("percent", percent).Debug(msg)
		return
	}

	width, _, err := term.GetSize(p.fd)
	if err != nil || width <= 0 {
		width = 80
	}
	fmt.Fprint(p.w, "\r"+renderBar(width-1, percent, msg))
	p.active = true
}

// Done ends the progress line.  This must be called before other output
// is written.
func (p *Progress) Done() {
	if p.active {
		fmt.Fprintln(p.w)
		p.active = false
	}
}

const barWidth = 20

// renderBar formats a progress line of exactly the given width.
func renderBar(width int, percent float64, msg string) string {
	percent = max(0, min(100, percent))
	filled := int(percent / 100 * barWidth)
	line := fmt.Sprintf("[%s%s] %3.0f%% %s",
		strings.Repeat("#", filled), strings.Repeat(".", barWidth-filled), percent, msg)

	runes := []rune(line)
	if len(runes) > width {
		runes = runes[:max(width, 0)]
	}
	return string(runes) + strings.Repeat(" ", max(width-len(runes), 0))
}
