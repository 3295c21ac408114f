package app

// Config holds runtime configuration for one extraction run.
type Config struct {
	InputPath  string
	OutputPath string // empty means stdout

	// MinRun is the acceptance threshold on the longest letter run.
	MinRun int

	Verbose bool
}
