package cli

import (
	"cipherbox/cipher"
	"fmt"

	"github.com/spf13/cobra"
)

var vigenereEncryptCmd = &cobra.Command{
	Use:                "vigenere-encrypt <keyword> <message>",
	Short:              "Encrypt a message with the Vigenère cipher",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		keyword, message, err := operationArgs(args)
		if err != nil {
			return err
		}

		if err := cipher.ValidateKeyword(cipher.Upper, keyword); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), cipher.NewVigenere(cipher.Upper, keyword).Encrypt(message))
		return nil
	},
}

var vigenereDecryptCmd = &cobra.Command{
	Use:                "vigenere-decrypt <keyword> <message>",
	Short:              "Decrypt a message with the Vigenère cipher",
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		keyword, message, err := operationArgs(args)
		if err != nil {
			return err
		}

		if err := cipher.ValidateKeyword(cipher.Upper, keyword); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), cipher.NewVigenere(cipher.Upper, keyword).Decrypt(message))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vigenereEncryptCmd)
	rootCmd.AddCommand(vigenereDecryptCmd)
}
