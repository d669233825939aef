// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input LMC source file"`
	Output string `flag:"o" usage:"output listing file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.lmc)"`
}

// Flags contains behavior options.
type Flags struct {
	Debug bool `flag:"debug" usage:"enable debug logging"`
	Quiet bool `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains listing formatting options.
type OutputFlags struct {
	NoCodes bool `flag:"nocodes" usage:"omit numeric operation codes in the listing"`
}

// Program options of the assembler front-end.
type Program struct {
	Parameters
	Flags
	OutputFlags
}
