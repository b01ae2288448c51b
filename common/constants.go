package common

// Application name constants
const (
	// AppName is the main application name
	AppName = "fileproc"

	// EnvPrefix is prepended to environment variable names
	EnvPrefix = "FILEPROC_"
)

// Fixed file locations, relative to the working directory
const (
	InputFile  = "input.txt"
	OutputFile = "output.dat"
)
