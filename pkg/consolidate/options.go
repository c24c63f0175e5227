// File: pkg/consolidate/options.go
package consolidate

const (
	DefaultSourceDir  = "src"              // Directory walked when none is given
	DefaultOutputFile = "consolidated.txt" // Output written when none is given
)

// Options holds the two inputs of a consolidation run.
type Options struct {
	SourceDir  string // Root of the tree to flatten.
	OutputFile string // Destination for the consolidated text; truncated on each run.
}

// DefaultOptions returns the options used by a zero-argument invocation.
func DefaultOptions() Options {
	return Options{
		SourceDir:  DefaultSourceDir,
		OutputFile: DefaultOutputFile,
	}
}

// withDefaults fills empty fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SourceDir == "" {
		o.SourceDir = d.SourceDir
	}
	if o.OutputFile == "" {
		o.OutputFile = d.OutputFile
	}
	return o
}

// FileRecord is one discovered file on its way to the output.
// Exactly one of Content and Err is meaningful.
type FileRecord struct {
	Path    string // Path relative to the working directory, as written in the header.
	Content string // Decoded text content when Err is nil.
	Err     error  // Read or decode failure, reported inline instead of content.
}

// Summary describes a finished run.
type Summary struct {
	Files  int // Blocks written.
	Failed int // Blocks written with an inline read error.
}
