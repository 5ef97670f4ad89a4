// Package runner parses pergo's CLI flags and turns them into the options
// package driver and package sim need. It is grounded on
// projectdiscovery-alterx/internal/runner/runner.go: the same goflags
// FlagSet/CreateGroup layout, the same gologger-for-diagnostics,
// silent-stdout discipline.
package runner

import (
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coregx/pergo/driver"
	"github.com/coregx/pergo/sim"
)

// Options is the fully-parsed result of ParseFlags: the pattern text plus
// every matching and output flag pergo recognizes.
type Options struct {
	Pattern string
	Files   goflags.StringSlice

	CaseInsensitive bool // -i
	Invert          bool // -v
	WholeWord       bool // -w
	WholeLine       bool // -x
	OnlyMatching    bool // -o
	NoFilename      bool // -h
	WithFilename    bool // -H
	LineNumbers     bool // -n
	TextData        bool // -a
	Recursive       bool // -r

	Verbose bool
}

// ParseFlags builds pergo's FlagSet the way alterx's runner.ParseFlags
// builds its own: one CreateGroup per concern, then Parse.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`pergo: concurrent NFA line search, in the spirit of grep.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Pattern, "pattern", "p", "", "pattern to search for"),
		flagSet.StringSliceVarP(&opts.Files, "file", "f", nil, "files to search (default: stdin)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("matching", "Matching",
		flagSet.BoolVarP(&opts.CaseInsensitive, "ignore-case", "i", false, "fold ASCII case when matching"),
		flagSet.BoolVarP(&opts.Invert, "invert-match", "v", false, "select lines that do not match"),
		flagSet.BoolVarP(&opts.WholeWord, "word-regexp", "w", false, "match only whole words"),
		flagSet.BoolVarP(&opts.WholeLine, "line-regexp", "x", false, "match only whole lines"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.OnlyMatching, "only-matching", "o", false, "print only the matched part of each line"),
		flagSet.BoolVarP(&opts.NoFilename, "no-filename", "h", false, "never print filenames with matches"),
		flagSet.BoolVarP(&opts.WithFilename, "with-filename", "H", false, "always print filenames with matches"),
		flagSet.BoolVarP(&opts.LineNumbers, "line-number", "n", false, "print line numbers with matches"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVar(&opts.Verbose, "verbose", false, "display verbose output"),
	)

	flagSet.CreateGroup("files", "File handling",
		flagSet.BoolVarP(&opts.TextData, "text", "a", false, "treat binary files as text"),
		flagSet.BoolVarP(&opts.Recursive, "recursive", "r", false, "recurse into directories given as files"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.Pattern == "" {
		gologger.Fatal().Msgf("pergo: no pattern given, use -p/-pattern")
	}

	return opts
}

// SimFlags projects the subset of Options that sim.Search consumes.
func (o *Options) SimFlags() sim.Flags {
	return sim.Flags{
		CaseInsensitive: o.CaseInsensitive,
		WholeWord:       o.WholeWord,
		WholeLine:       o.WholeLine,
		Invert:          o.Invert,
	}
}

// DriverOptions projects the subset of Options that driver.SearchFile's
// output formatting consumes. showFilename is resolved by the caller (Run),
// since "show the filename" depends on how many files are being searched as
// well as the -h/-H overrides.
func (o *Options) DriverOptions(showFilename bool) driver.Options {
	return driver.Options{
		Flags:             o.SimFlags(),
		OnlyMatching:      o.OnlyMatching,
		LineNumbers:       o.LineNumbers,
		ShowFilename:      showFilename,
		TreatBinaryAsText: o.TextData,
	}
}

// ShowFilename resolves grep's traditional filename-prefix rule: on by
// default when more than one input is named, forced by -H, suppressed by -h.
func (o *Options) ShowFilename(fileCount int) bool {
	if o.NoFilename {
		return false
	}
	if o.WithFilename {
		return true
	}
	return fileCount > 1
}
