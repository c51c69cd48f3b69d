package cli

import (
	"cipherbox/cipher"
	"fmt"

	"github.com/spf13/cobra"
)

var caesarEncryptCmd = &cobra.Command{
	Use:   "caesar-encrypt <key> <message>",
	Short: "Encrypt a message with the Caesar cipher",
	// The key may start with '-', so arguments are taken verbatim.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, message, err := operationArgs(args)
		if err != nil {
			return err
		}

		shift, err := cipher.ParseShiftKey(cipher.Upper, key)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), cipher.NewCaesar(cipher.Upper, shift).Encrypt(message))
		return nil
	},
}

var caesarDecryptCmd = &cobra.Command{
	Use:   "caesar-decrypt <key> <message>",
	Short: "Decrypt a message with the Caesar cipher",
	// The key may start with '-', so arguments are taken verbatim.
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, message, err := operationArgs(args)
		if err != nil {
			return err
		}

		shift, err := cipher.ParseShiftKey(cipher.Upper, key)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), cipher.NewCaesar(cipher.Upper, shift).Decrypt(message))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(caesarEncryptCmd)
	rootCmd.AddCommand(caesarDecryptCmd)
}
