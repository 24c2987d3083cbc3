package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/faff"
	"github.com/pterm/pterm"
)

func check(args []string) int {
	fs, tlevel := newFlagSet("check")
	verbose := fs.Bool("v", false, "dump the hash and value tables")
	positional, ok := prepare(fs, tlevel, args, 1, "check FILE [-v]")
	if !ok {
		return 2
	}
	font, err := openFont(positional[0])
	if err != nil {
		return fail(err)
	}
	pterm.Info.Printfln("width %d, height %d, %d glyphs", font.Width(), font.Height(), font.Len())
	if *verbose {
		if err = dumpTables(font); err != nil {
			return fail(err)
		}
	}
	pterm.Success.Printfln("File %s is a valid faFontFile.", positional[0])
	return 0
}

// openFont reads and validates a font file.
func openFont(name string) (*faff.Font, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return faff.Load(data)
}

// dumpTables prints G and V as a table.
func dumpTables(font *faff.Font) error {
	return pterm.DefaultTable.WithHasHeader().WithData(tableData(font)).Render()
}

// tableData lists G and V row by row.
func tableData(font *faff.Font) pterm.TableData {
	data := pterm.TableData{{"#", "G", "V", "char"}}
	for slot, code := range font.Slots() {
		data = append(data, []string{
			fmt.Sprint(slot),
			font.Indirection(slot).String(),
			fmt.Sprintf("U+%04X", code),
			printable(code),
		})
	}
	return data
}

func printable(code rune) string {
	if code < 0x20 || (code >= 0x7f && code < 0xa0) {
		return ""
	}
	return string(code)
}
