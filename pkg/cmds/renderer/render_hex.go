package renderer

import (
	"fmt"
	"strings"

	"github.com/writ-vcs/writ/pkg/cmds/out"
	"github.com/writ-vcs/writ/pkg/render"
	"github.com/writ-vcs/writ/pkg/style"
)

//writ:use cmds::out::{HexDump}

// hexRowLen is the number of bytes one output row covers.
const hexRowLen = 16

// RenderHex renders file bytes in the classic three-column dump form:
// offset, hex bytes, and a text gutter.
//
//writ:renderer RenderHex
func RenderHex(dump *out.HexDump) render.Result {
	var r render.Result
	r.Println(style.MutedStyle.Render(fmt.Sprintf("%s (%d bytes)", dump.Path, dump.Size)))

	for offset := 0; offset < len(dump.Data); offset += hexRowLen {
		end := offset + hexRowLen
		if end > len(dump.Data) {
			end = len(dump.Data)
		}
		r.Println(hexRow(offset, dump.Data[offset:end]))
	}
	return r
}

// hexRow formats one row. The hex column splits into two groups of
// eight and short rows are padded so the text gutter stays aligned.
func hexRow(offset int, row []byte) string {
	var hexCol strings.Builder
	var textCol strings.Builder

	for i := 0; i < hexRowLen; i++ {
		if i == hexRowLen/2 {
			hexCol.WriteString(" ")
		}
		if i >= len(row) {
			hexCol.WriteString("   ")
			continue
		}
		fmt.Fprintf(&hexCol, "%02x ", row[i])
		if row[i] >= 0x20 && row[i] <= 0x7e {
			textCol.WriteByte(row[i])
		} else {
			textCol.WriteByte('.')
		}
	}

	return fmt.Sprintf("%08x  %s |%s|", offset, hexCol.String(), textCol.String())
}
