package main

import (
	"fmt"

	"github.com/fatih/color"
)

// hexdump renders data in 16-byte rows with an ASCII column, coloring
// marked bytes red.
func hexdump(offset int, data []byte, mark []bool) string {
	var result string
	red := color.New(color.FgRed)

	for len(data) > 0 {
		l := len(data)
		if l > 16 {
			l = 16
		}
		work := data[:l]
		data = data[l:]
		var workMark []bool
		if mark != nil {
			workMark = mark[:l]
			mark = mark[l:]
		}

		var workHex string
		var workAscii string
		for i := 0; i < 16; i++ {
			if i >= len(work) {
				workHex += "   "
				workAscii += " "
				if i%8 == 7 {
					workHex += " "
				}
				continue
			}

			m := work[i]
			marked := workMark != nil && workMark[i]

			if marked {
				workHex += red.Sprintf("%02x ", m)
			} else {
				workHex += fmt.Sprintf("%02x ", m)
			}

			if m < 32 || m > 126 {
				m = '.'
			}
			if marked {
				workAscii += red.Sprintf("%c", m)
			} else {
				workAscii += fmt.Sprintf("%c", m)
			}

			if i%8 == 7 {
				workHex += " "
			}
		}

		result += fmt.Sprintf("%08x  %s|%s|\n", offset, workHex, workAscii)
		offset += l
	}

	return result
}

// hexBytes renders a short byte sequence as spaced hex, coloring marked
// bytes red.
func hexBytes(data []byte, mark []bool) string {
	var result string
	red := color.New(color.FgRed)

	for i, b := range data {
		if i > 0 {
			result += " "
		}
		if mark != nil && mark[i] {
			result += red.Sprintf("%02X", b)
		} else {
			result += fmt.Sprintf("%02X", b)
		}
	}
	return result
}
