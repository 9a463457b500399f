package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"minicrypt/internal/crypto"
)

func encryptCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "encrypt <message>",
		Short: "XOR-encrypt a message and print uppercase hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := crypto.Encrypt([]byte(args[0]), []byte(key))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ct)
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "cipher key, e.g. the shared secret printed by exchange")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

func decryptCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "decrypt <hex>",
		Short: "Decrypt hex ciphertext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pt, err := crypto.Decrypt(args[0], []byte(key))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", pt)
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "cipher key used to encrypt")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
