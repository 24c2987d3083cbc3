package main

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/faff"
	"github.com/npillmayer/faff/face"
	"github.com/npillmayer/faff/mphf"
	"github.com/pterm/pterm"
)

func explore(args []string) int {
	fs, tlevel := newFlagSet("explore")
	positional, ok := prepare(fs, tlevel, args, 1, "explore FILE")
	if !ok {
		return 2
	}
	font, err := openFont(positional[0])
	if err != nil {
		return fail(err)
	}
	repl, err := readline.New("faff> ")
	if err != nil {
		return fail(err)
	}
	defer repl.Close()
	pterm.Info.Println("Enter text to preview, U+XXXX for a single glyph, or :q to quit.")
	for {
		line, err := repl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return 0
		} else if err != nil {
			return fail(err)
		}
		if quit := evaluate(font, strings.TrimSpace(line)); quit {
			return 0
		}
	}
}

// evaluate handles a single REPL line and reports whether to quit.
func evaluate(font *faff.Font, line string) bool {
	switch {
	case line == "":
	case line == ":q" || line == ":quit":
		return true
	case strings.HasPrefix(line, "U+") || strings.HasPrefix(line, "u+"):
		code, err := parseCode(line[2:])
		if err != nil {
			pterm.Error.Println(err.Error())
			break
		}
		previewGlyph(font, code)
	default:
		img := face.Render(font, line, face.WithCharDistance(1), face.WithLineDistance(1))
		pterm.Print(face.Text(img))
	}
	return false
}

func parseCode(hex string) (rune, error) {
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || n > mphf.MaxCode {
		return 0, errors.New("not a valid code point: U+" + hex)
	}
	return rune(n), nil
}
