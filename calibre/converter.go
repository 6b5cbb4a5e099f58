// Package calibre converts rendered novels to e-reader formats by running
// Calibre's ebook-convert command.
package calibre

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fwojciec/novelfetch"
)

// ExecutableName is the Calibre conversion command looked up on PATH.
const ExecutableName = "ebook-convert"

// Ensure Converter implements novelfetch.EbookConverter at compile time.
var _ novelfetch.EbookConverter = (*Converter)(nil)

// Converter implements novelfetch.EbookConverter with ebook-convert.
type Converter struct {
	executable string

	lookPath func(file string) (string, error)
	stat     func(name string) (os.FileInfo, error)
	goos     string
}

// Option configures a Converter.
type Option func(*Converter)

// WithExecutable uses the ebook-convert at path instead of searching for it.
func WithExecutable(path string) Option {
	return func(c *Converter) {
		c.executable = path
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		lookPath: exec.LookPath,
		stat:     os.Stat,
		goos:     runtime.GOOS,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// InstallPaths returns the locations Calibre installs ebook-convert to on
// goos, in the order they are tried.
func InstallPaths(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"/Applications/calibre.app/Contents/MacOS/ebook-convert"}
	case "windows":
		return []string{
			"C:/Program Files/Calibre2/ebook-convert.exe",
			"C:/Program Files (x86)/Calibre2/ebook-convert.exe",
		}
	default:
		return []string{"/usr/bin/ebook-convert"}
	}
}

// Locate returns the path of ebook-convert: the configured executable,
// else the first match on PATH, else the first existing install path.
// Returns ETOOLNOTFOUND if none is present.
func (c *Converter) Locate() (string, error) {
	if c.executable != "" {
		if _, err := c.stat(c.executable); err != nil {
			return "", novelfetch.Errorf(novelfetch.ETOOLNOTFOUND, "%s not found at %s", ExecutableName, c.executable)
		}
		return c.executable, nil
	}

	if path, err := c.lookPath(ExecutableName); err == nil {
		return path, nil
	}

	for _, path := range InstallPaths(c.goos) {
		if _, err := c.stat(path); err == nil {
			return path, nil
		}
	}

	return "", novelfetch.Errorf(novelfetch.ETOOLNOTFOUND,
		"%s not found; install Calibre from https://calibre-ebook.com/download", ExecutableName)
}

// Convert runs ebook-convert on inputPath, writing next to it with the
// format's extension. Returns EINVALID for formats Calibre is not used
// for and ETOOLFAILED when the command exits unsuccessfully.
func (c *Converter) Convert(ctx context.Context, inputPath string, format novelfetch.OutputFormat) (string, error) {
	switch format {
	case novelfetch.FormatAZW3, novelfetch.FormatEPUB:
	default:
		return "", novelfetch.Errorf(novelfetch.EINVALID, "%s cannot produce %s", ExecutableName, format)
	}

	exe, err := c.Locate()
	if err != nil {
		return "", err
	}

	outputPath := novelfetch.ReplaceExt(inputPath, format)
	output, err := exec.CommandContext(ctx, exe, inputPath, outputPath).CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", novelfetch.Errorf(novelfetch.ETOOLFAILED, "%s failed: %v%s", ExecutableName, err, tail(output))
	}
	return outputPath, nil
}

// tail returns the last line of command output for error messages.
func tail(output []byte) string {
	s := strings.TrimSpace(string(output))
	if s == "" {
		return ""
	}
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return ": " + s
}
