package runner

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"

	"github.com/coregx/pergo/compiler"
	"github.com/coregx/pergo/driver"
	"github.com/coregx/pergo/prefilter"
	"github.com/coregx/pergo/scan"
)

// Run compiles Options.Pattern, resolves the input file list (recursing into
// directories when -r is set), and searches each one with driver.SearchFile.
// It returns true iff any input produced at least one match -- pergo's exit
// code is 0 exactly when Run returns true, per the driver contract.
func Run(opts *Options) bool {
	gologger.Verbose().Msgf("pergo: host AVX2 capable: %v", scan.Capable())

	nfa, lits, err := compiler.Compile([]byte(opts.Pattern), opts.CaseInsensitive)
	if err != nil {
		gologger.Fatal().Msgf("pergo: bad pattern: %v", err)
	}

	pf, err := prefilter.Build(lits)
	if err != nil {
		gologger.Error().Msgf("pergo: prefilter build failed, falling back to the simulator directly: %v", err)
		pf = nil
	}

	files := resolveFiles(opts)
	showFilename := opts.ShowFilename(len(files))
	driverOpts := opts.DriverOptions(showFilename)

	color := driver.NewColorizer(os.Stdout.Fd())

	anyMatch := false
	if len(files) == 0 {
		matched, err := driver.SearchFile("(standard input)", os.Stdin, os.Stdout, nfa, pf, driverOpts, color)
		if err != nil {
			gologger.Error().Msgf("pergo: error reading standard input: %v", err)
		}
		return matched
	}

	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			gologger.Error().Msgf("pergo: %s: %v", name, err)
			continue
		}
		matched, err := driver.SearchFile(name, f, os.Stdout, nfa, pf, driverOpts, color)
		f.Close()
		if err != nil {
			gologger.Error().Msgf("pergo: %s: %v", name, err)
			continue
		}
		if matched {
			anyMatch = true
		}
	}
	return anyMatch
}

// resolveFiles expands Options.Files into a flat file list, walking
// directories when Recursive is set and logging (but not stopping on) any
// directory it can't read, exactly the driver contract's "errors go to the
// diagnostic stream and do not halt the remaining file list" rule.
func resolveFiles(opts *Options) []string {
	var out []string
	for _, name := range opts.Files {
		info, err := os.Stat(name)
		if err != nil {
			gologger.Error().Msgf("pergo: %s: %v", name, err)
			continue
		}
		if !info.IsDir() {
			out = append(out, name)
			continue
		}
		if !opts.Recursive {
			gologger.Error().Msgf("pergo: %s: is a directory", name)
			continue
		}
		err = filepath.Walk(name, func(path string, info os.FileInfo, walkErr error) error {
			if walkErr != nil {
				gologger.Error().Msgf("pergo: %s: %v", path, walkErr)
				return nil
			}
			if !info.IsDir() {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			gologger.Error().Msgf("pergo: %s: %v", name, err)
		}
	}
	return out
}
