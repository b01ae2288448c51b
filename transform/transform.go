package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nmeilick/fileproc/transform/compression"
	"github.com/nmeilick/fileproc/transform/encryption"
)

// Mode selects the transformation applied to a file
type Mode string

const (
	// ModeNone is the zero value and selects nothing
	ModeNone     Mode = ""
	ModeCompress Mode = "compress"
	ModeEncrypt  Mode = "encrypt"
)

var (
	// ErrInvalidOperation is returned when processing is attempted without a valid mode
	ErrInvalidOperation = errors.New("invalid operation: no transformer selected")

	// ErrInvalidChoice is returned by ParseChoice for anything but "1" or "2"
	ErrInvalidChoice = errors.New("invalid choice")
)

// Modes returns all selectable modes in menu order
func Modes() []Mode {
	return []Mode{ModeCompress, ModeEncrypt}
}

// Valid reports whether m names a known transformation
func (m Mode) Valid() bool {
	switch m {
	case ModeCompress, ModeEncrypt:
		return true
	}
	return false
}

func (m Mode) String() string {
	if m == ModeNone {
		return "none"
	}
	return string(m)
}

// Format returns the name of the output format produced by m
func (m Mode) Format() string {
	switch m {
	case ModeCompress:
		return compression.Name
	case ModeEncrypt:
		return encryption.Name
	}
	return ""
}

// ParseChoice maps a menu answer to a mode: "1" compresses, "2" encrypts.
// A trailing line terminator is ignored; any other whitespace makes the answer invalid.
func ParseChoice(choice string) (Mode, error) {
	switch strings.TrimRight(choice, "\r\n") {
	case "1":
		return ModeCompress, nil
	case "2":
		return ModeEncrypt, nil
	}
	return ModeNone, fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
}

// Process applies the transformation selected by m to data and returns a new buffer
func (m Mode) Process(data []byte) ([]byte, error) {
	switch m {
	case ModeCompress:
		return compression.Compress(data)
	case ModeEncrypt:
		return encryption.Encrypt(data)
	}
	return nil, ErrInvalidOperation
}
