package entities

// DefaultFileType is used when no file types are configured
const DefaultFileType = "jar"

// Configuration describes which sources to scan and how to filter them.
// It is built once before a run and treated as read-only during the run.
type Configuration struct {
	FileTypes     []string // Extensions without the dot, e.g. "jar"
	Directories   []string
	Distributions []string // Archive files (zip, jar, tar, tar.gz)
	IgnoreFiles   []string // Glob patterns matched against full identities
	Verbose       bool
}

// Normalize returns a copy with defaults applied: empty lists where unset
// and {"jar"} when no file types are configured
func (c Configuration) Normalize() Configuration {
	out := Configuration{
		FileTypes:     append([]string(nil), c.FileTypes...),
		Directories:   append([]string{}, c.Directories...),
		Distributions: append([]string{}, c.Distributions...),
		IgnoreFiles:   append([]string{}, c.IgnoreFiles...),
		Verbose:       c.Verbose,
	}
	if len(out.FileTypes) == 0 {
		out.FileTypes = []string{DefaultFileType}
	}
	return out
}

// HasFileType reports whether ext (without the dot) is a configured file type
func (c Configuration) HasFileType(ext string) bool {
	types := c.FileTypes
	if len(types) == 0 {
		types = []string{DefaultFileType}
	}
	for _, t := range types {
		if t == ext {
			return true
		}
	}
	return false
}
