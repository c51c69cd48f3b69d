// Package cli provides the cipherbox command-line interface.
package cli

import (
	"cipherbox/models"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// ErrInvalidArguments reports a wrong argument count or an empty
	// argument where a value is required.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrMessageTooLong reports a message over the front-end length limit.
	ErrMessageTooLong = errors.New("message too long")
)

var rootCmd = &cobra.Command{
	Use:   "cipherbox <operation> <key> <message>",
	Short: "Encrypt and decrypt messages with classical substitution ciphers",
	Long: `cipherbox applies the Caesar or Vigenère cipher to a message over the
uppercase alphabet 'A'->'Z'. Characters outside the range pass through
unchanged and the result is written to standard output.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("%w: expected <operation> <key> <message>", ErrInvalidArguments)
	},
}

// Execute runs the command line and returns the error for main to report.
func Execute() error {
	return rootCmd.Execute()
}

// operationArgs validates the positional arguments shared by the four
// operations and applies the message length policy.
func operationArgs(args []string) (key, message string, err error) {
	if len(args) != 2 {
		return "", "", fmt.Errorf("%w: expected <key> and <message>", ErrInvalidArguments)
	}

	key, message = args[0], args[1]
	if key == "" {
		return "", "", fmt.Errorf("%w: key cannot be empty", ErrInvalidArguments)
	}
	if message == "" {
		return "", "", fmt.Errorf("%w: message cannot be empty", ErrInvalidArguments)
	}
	if len(message) > models.MaxMessageLen {
		return "", "", fmt.Errorf("%w: maximum message length is %d bytes", ErrMessageTooLong, models.MaxMessageLen)
	}

	return key, message, nil
}
