package calibre

import "os"

// NewLookupConverter returns a Converter with a stubbed environment.
func NewLookupConverter(lookPath func(string) (string, error), stat func(string) (os.FileInfo, error), goos string) *Converter {
	c := NewConverter()
	c.lookPath = lookPath
	c.stat = stat
	c.goos = goos
	return c
}
