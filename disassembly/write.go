// This file is part of snake6502.
//
// snake6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// snake6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with snake6502.  If not, see <https://www.gnu.org/licenses/>.

package disassembly

import (
	"fmt"
	"io"

	"github.com/jetsetilly/snake6502/curated"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single Entry to io.Writer. If the Entry has a label then
// the label is written on a line of its own.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	if e.Label != "" {
		if _, err := fmt.Fprintf(output, "%s:\n", e.Label); err != nil {
			return curated.Errorf("disassembly: %v", err)
		}
	}

	var err error
	if attr.ByteCode {
		_, err = fmt.Fprintf(output, "  %s  %-8s  %s\n", e.Address, e.Bytecode, e.String())
	} else {
		_, err = fmt.Fprintf(output, "  %s  %s\n", e.Address, e.String())
	}
	if err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	return nil
}
