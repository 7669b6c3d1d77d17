// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// gentables generates the ASCII lookup tables used by pystr. The tables must
// be regenerated if this code is changed (`go generate`).
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
	"golang.org/x/text/unicode/rangetable"

	"github.com/charlievieth/pystr/internal/gen/util"
)

func initLogs() {
	log.SetOutput(os.Stdout) // use stdout instead of stderr
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
}

// Character class bits, these must match the ctype constants written to
// the generated file.
const (
	ctypeUpper = 1 << iota
	ctypeLower
	ctypeDigit
	ctypeSpace
)

var classNames = map[uint8]string{
	ctypeUpper: "ctypeUpper",
	ctypeLower: "ctypeLower",
	ctypeDigit: "ctypeDigit",
	ctypeSpace: "ctypeSpace",
}

// asciiTable returns a RangeTable of the ASCII runes of tab.
func asciiTable(tab *unicode.RangeTable) *unicode.RangeTable {
	var runes []rune
	rangetable.Visit(tab, func(r rune) {
		if r <= unicode.MaxASCII {
			runes = append(runes, r)
		}
	})
	return rangetable.New(runes...)
}

// Whitespace is only these four bytes. Vertical tab, form feed and the
// Latin-1 spaces are not whitespace.
var spaceTable = rangetable.New(' ', '\t', '\n', '\r')

// Tables holds the contents of the generated file.
type Tables struct {
	Lower [256]byte
	Upper [256]byte
	Ctype [256]uint8
}

func buildTables() *Tables {
	upper := asciiTable(unicode.Upper)
	lower := asciiTable(unicode.Lower)
	digit := asciiTable(unicode.Digit)

	t := new(Tables)
	for i := 0; i < 256; i++ {
		c := byte(i)
		t.Lower[i] = c
		t.Upper[i] = c
		if c > unicode.MaxASCII {
			continue
		}
		r := rune(c)
		t.Lower[i] = byte(unicode.ToLower(r))
		t.Upper[i] = byte(unicode.ToUpper(r))
		if unicode.Is(upper, r) {
			t.Ctype[i] |= ctypeUpper
		}
		if unicode.Is(lower, r) {
			t.Ctype[i] |= ctypeLower
		}
		if unicode.Is(digit, r) {
			t.Ctype[i] |= ctypeDigit
		}
		if unicode.Is(spaceTable, r) {
			t.Ctype[i] |= ctypeSpace
		}
	}
	return t
}

// classes returns the names of the class bits set in c.
func classes(c uint8) []string {
	var names []string
	for bit, name := range classNames {
		if c&bit != 0 {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// classCounts returns the number of bytes in each character class.
func (t *Tables) classCounts() log.Fields {
	fields := make(log.Fields)
	for _, c := range t.Ctype {
		for _, name := range classes(c) {
			n, _ := fields[name].(int)
			fields[name] = n + 1
		}
	}
	return fields
}

func writeTable(w io.Writer, comment, name, typ string, tab []byte) {
	fmt.Fprintf(w, "// %s\n", comment)
	fmt.Fprintf(w, "var %s = [%d]%s{\n", name, len(tab), typ)
	for i, c := range tab {
		if i%16 == 0 {
			io.WriteString(w, "\t")
		}
		fmt.Fprintf(w, "0x%02X,", c)
		if i%16 == 15 {
			io.WriteString(w, "\n")
		} else {
			io.WriteString(w, " ")
		}
	}
	io.WriteString(w, "}\n\n")
}

const header = `// Code generated by "gentables"; DO NOT EDIT.

package pystr

// Character class bits stored in _ctype.
const (
	ctypeUpper = 1 << iota
	ctypeLower
	ctypeDigit
	ctypeSpace
)

`

// Generate returns the formatted Go source of t.
func (t *Tables) Generate() ([]byte, error) {
	var w bytes.Buffer
	w.WriteString(header)
	writeTable(&w, "_lower maps each byte to its ASCII lower case form.",
		"_lower", "byte", t.Lower[:])
	writeTable(&w, "_upper maps each byte to its ASCII upper case form.",
		"_upper", "byte", t.Upper[:])
	writeTable(&w, "_ctype maps each byte to its character class bits.",
		"_ctype", "uint8", t.Ctype[:])
	src, err := format.Source(w.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gentables: formatting generated source: %w", err)
	}
	return src, nil
}

func runCommand(dir string, args ...string) error {
	cmd := exec.Command("go", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("gentables: command %q failed: %w\n%s",
			strings.Join(cmd.Args, " "), err, bytes.TrimSpace(out))
	}
	return nil
}

// newSpinner returns a progress spinner that is only visible if stdout is
// a terminal.
func newSpinner(description string) *progressbar.ProgressBar {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return progressbar.Default(-1, description)
	}
	return progressbar.DefaultSilent(-1, description)
}

// testBuild builds and tests the pystr package with tablesFile replaced by
// data (using an overlay) so that a broken table never reaches disk.
// If the build or tests fail the overlay directory is kept and logged.
func testBuild(logger *log.Entry, root, tablesFile string, data []byte, skipTests bool) error {
	dir, err := os.MkdirTemp("", "pystr.*")
	if err != nil {
		return err
	}
	keep := func(err error) error {
		logger.WithField("dir", dir).WithError(err).Error("gen: keeping overlay directory")
		return err
	}

	tables := filepath.Join(dir, filepath.Base(tablesFile))
	overlay := filepath.Join(dir, "overlay.json")

	type overlayJSON struct {
		Replace map[string]string
	}
	overlayData, err := json.Marshal(overlayJSON{
		Replace: map[string]string{
			tablesFile: tables,
		},
	})
	if err != nil {
		os.RemoveAll(dir)
		return err
	}
	if err := os.WriteFile(overlay, overlayData, 0644); err != nil {
		os.RemoveAll(dir)
		return err
	}
	if err := os.WriteFile(tables, data, 0644); err != nil {
		os.RemoveAll(dir)
		return err
	}

	if err := runCommand(root, "build", "-overlay="+overlay); err != nil {
		return keep(err)
	}
	if !skipTests {
		bar := newSpinner("go test")
		done := make(chan struct{})
		go func() {
			ticker := time.NewTicker(100 * time.Millisecond)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					bar.Add(1)
				case <-done:
					return
				}
			}
		}()
		err := runCommand(root, "test", "-overlay="+overlay, ".")
		close(done)
		bar.Finish()
		if err != nil {
			return keep(err)
		}
	}

	os.RemoveAll(dir) // Only remove temp dir if successful
	return nil
}

func dataEqual(filename string, data []byte) bool {
	got, err := os.ReadFile(filename)
	return err == nil && bytes.Equal(got, data)
}

func writeFile(name string, data []byte) error {
	if dataEqual(name, data) {
		return nil
	}
	f, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+".tmp.*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, name); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func realMain() int {
	initLogs()

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [OPTION]...\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	output := flag.String("o", "tables.go",
		"write the generated tables to `file` (relative to the project root)")
	skipTests := flag.Bool("skip-tests", false, "skip running tests")
	dryRun := flag.Bool("dry-run", false,
		"report if generate would change the generated tables file and exit non-zero")
	flag.Parse()

	root, err := util.ProjectRoot()
	if err != nil {
		log.WithError(err).Error("gen: locating project root")
		return 1
	}
	tablesFile := *output
	if !filepath.IsAbs(tablesFile) {
		tablesFile = filepath.Join(root, tablesFile)
	}
	logger := log.WithField("file", filepath.Base(tablesFile))

	tabs := buildTables()
	logger.WithFields(tabs.classCounts()).Debug("gen: built tables")
	data, err := tabs.Generate()
	if err != nil {
		logger.WithError(err).Error("gen: generating tables")
		return 1
	}
	if dataEqual(tablesFile, data) {
		logger.Info("gen: exiting - no changes")
		return 0
	}
	if *dryRun {
		logger.Warn("gen: would change tables (remove -dry-run flag to update the generated files)")
		return 1
	}

	if err := testBuild(logger, root, tablesFile, data, *skipTests); err != nil {
		logger.WithError(err).Error("gen: failed to build generated file")
		return 1
	}
	if err := writeFile(tablesFile, data); err != nil {
		logger.WithError(err).Error("gen: writing tables")
		return 1
	}
	logger.WithField("changed", true).Info("gen: successfully generated tables")
	return 0
}

func main() {
	if code := realMain(); code != 0 {
		os.Exit(code)
	}
}
