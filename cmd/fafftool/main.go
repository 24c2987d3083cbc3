/*
Command fafftool creates, checks and renders faFF bitmap font files.

Usage:

	fafftool create MANIFEST [-o OUTFILE] [-s SUFFIX]
	fafftool check FILE [-v]
	fafftool render FILE STRING [-o PNGFILE] [-m MARGIN] [-d DISTANCE] [-b] [-v]
	fafftool explore FILE
	fafftool info

Every mode accepts -trace [Debug|Info|Error] to select the trace level.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'faff'
func tracer() tracing.Trace {
	return tracing.Select("faff")
}

const (
	defaultSuffix   = "bin"
	defaultDistance = 2
	defaultMargin   = 32
	pixelsMin       = 0
	pixelsMax       = 256
)

// mode is a sub-command; it returns the process exit code.
type mode func(args []string) int

var modes = map[string]mode{
	"create":  create,
	"check":   check,
	"render":  render,
	"explore": explore,
	"info":    info,
}

func main() {
	initDisplay()
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 0
	}
	m, ok := modes[args[0]]
	if !ok {
		pterm.Error.Printfln("unknown mode %q", args[0])
		usage()
		return 2
	}
	return m(args[1:])
}

func usage() {
	pterm.Println("Create or check faFontFiles.")
	pterm.Println("usage: fafftool MODE [arguments]; MODE is one of")
	pterm.Println("  create   create a new faFontFile from a manifest (cf. 'info')")
	pterm.Println("  check    check a given faFontFile")
	pterm.Println("  render   render a string using a given faFontFile")
	pterm.Println("  explore  interactively preview text with a faFontFile")
	pterm.Println("  info     print file format information")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// newFlagSet creates the flag set of a mode, including the trace flag.
func newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	tlevel := fs.String("trace", "Error", "Trace level [Debug|Info|Error]")
	return fs, tlevel
}

// parseArgs parses flags which may appear before, between or after
// positional arguments, and returns the positional ones.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

// setupTracing routes the 'faff' trace to the Go standard logger.
func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.faff":      level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("error configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// pixelsFlag is a flag.Value for pixel counts in [pixelsMin, pixelsMax].
type pixelsFlag int

func (p *pixelsFlag) String() string { return strconv.Itoa(int(*p)) }

func (p *pixelsFlag) Set(s string) error {
	value, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("pixel argument is not an integer")
	}
	if value < pixelsMin || value > pixelsMax {
		return fmt.Errorf("pixel value out of range [%d,%d]", pixelsMin, pixelsMax)
	}
	*p = pixelsFlag(value)
	return nil
}

// fail reports err to the user and to the trace and returns exit code 1.
func fail(err error) int {
	tracer().Errorf("%v", err)
	pterm.Error.Println(err.Error())
	return 1
}

// prepare parses a mode's arguments, checks the number of positional ones
// and sets up tracing.
func prepare(fs *flag.FlagSet, tlevel *string, args []string, want int, synopsis string) ([]string, bool) {
	positional, err := parseArgs(fs, args)
	if err != nil {
		return nil, false // flag package has already reported the problem
	}
	if len(positional) != want {
		pterm.Error.Printfln("usage: fafftool %s", synopsis)
		return nil, false
	}
	if err = setupTracing(*tlevel); err != nil {
		pterm.Error.Println(err.Error())
		return nil, false
	}
	return positional, true
}
