// Package interactive implements the menu-driven run: ask which
// transformation to apply, process the fixed input file and report.
package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/nmeilick/fileproc/common"
	"github.com/nmeilick/fileproc/config"
	"github.com/nmeilick/fileproc/processor"
	"github.com/nmeilick/fileproc/transform"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

const (
	promptText    = "Choose an option: 1 - Compress, 2 - Encrypt"
	invalidText   = "Invalid option."
	completedText = "File processing completed."

	// ExitInvalidOption is the exit code used when the menu answer is not recognized
	ExitInvalidOption = 2
)

// ErrInvalidOption is returned by Run when the answer matches no menu entry
var ErrInvalidOption = errors.New("invalid option")

// Session is a single interactive run
type Session struct {
	In         io.Reader
	Out        io.Writer
	InputPath  string
	OutputPath string
	Log        zerolog.Logger
}

// NewSession returns a session reading from in, writing to out and using the fixed file locations
func NewSession(in io.Reader, out io.Writer, log zerolog.Logger) *Session {
	return &Session{
		In:         in,
		Out:        out,
		InputPath:  common.InputFile,
		OutputPath: common.OutputFile,
		Log:        log,
	}
}

// Run prompts once, processes the input file with the chosen transformation and reports completion
func (s *Session) Run() error {
	fmt.Fprintln(s.Out, promptText)

	choice, err := readLine(s.In)
	if err != nil {
		return fmt.Errorf("failed to read choice: %w", err)
	}

	mode, err := transform.ParseChoice(choice)
	if err != nil {
		s.Log.Debug().Str("choice", choice).Msg("Rejected menu choice")
		fmt.Fprintln(s.Out, invalidText)
		return ErrInvalidOption
	}
	s.Log.Info().Str("mode", mode.String()).Msg("Transformation selected")

	if _, err := processor.New(s.Log).ProcessFile(mode, s.InputPath, s.OutputPath); err != nil {
		s.Log.Error().Err(err).Msg("Processing failed")
		return err
	}

	fmt.Fprintln(s.Out, completedText)
	return nil
}

// readLine returns the first line of r without its line terminator.
// Input that ends before a newline yields whatever was read, possibly nothing.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}

// Action is the default command: it runs one interactive session
func Action(c *cli.Context) error {
	cfg, path, err := config.LoadConfig(c)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, closeLog := common.NewLogger(c, cfg.Log)
	defer closeLog()

	if path != "" {
		log.Debug().Str("path", path).Msg("Loaded configuration")
	}

	err = NewSession(c.App.Reader, c.App.Writer, log).Run()
	if errors.Is(err, ErrInvalidOption) {
		// The message has already been shown
		return cli.Exit("", ExitInvalidOption)
	}
	return err
}
