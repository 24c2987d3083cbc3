package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/faff"
	"github.com/npillmayer/faff/manifest"
	"github.com/pterm/pterm"
)

func create(args []string) int {
	fs, tlevel := newFlagSet("create")
	out := fs.String("o", "", "name of the output file (overrides -s)")
	suffix := fs.String("s", defaultSuffix, "suffix replacing the one of the manifest file")
	positional, ok := prepare(fs, tlevel, args, 1, "create MANIFEST [-o OUTFILE] [-s SUFFIX]")
	if !ok {
		return 2
	}
	name := outputName(positional[0], *out, *suffix)
	if err := createFont(positional[0], name); err != nil {
		return fail(err)
	}
	pterm.Success.Printfln("File %s successfully written.", name)
	return 0
}

// createFont reads a manifest, builds the font and writes it to outfile.
// Image sheets are resolved relative to the manifest's directory.
func createFont(manifestName, outfile string) error {
	f, err := os.Open(manifestName)
	if err != nil {
		return err
	}
	defer f.Close()
	font, stats, err := manifest.LoadFont(f, os.DirFS(filepath.Dir(manifestName)))
	if err != nil {
		return err
	}
	pterm.Info.Printfln("%d glyphs of %dx%d pixels", font.Len(), font.Width(), font.Height())
	pterm.Info.Printfln("Minimal perfect hash function found with %d re-seedings.", stats.Collisions)
	pterm.Info.Printfln("%d buckets, %.0f%% of glyphs placed by seed", stats.Buckets, 100*stats.SeededRatio())
	if err = font.Validate(); err != nil {
		if errors.Is(err, faff.ErrIncompleteFont) {
			return errors.New("replacement character U+FFFD is not defined, font definition is incomplete")
		}
		return err
	}
	return os.WriteFile(outfile, faff.Encode(font), 0o644)
}

// outputName derives the name of the font file. An explicit name wins,
// otherwise the manifest's extension is replaced by suffix.
func outputName(manifestName, explicit, suffix string) string {
	if explicit != "" {
		return explicit
	}
	base := strings.TrimSuffix(manifestName, filepath.Ext(manifestName))
	return base + "." + strings.TrimPrefix(suffix, ".")
}
