package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"minicrypt/internal/domain"
)

func signCmd() *cobra.Command {
	var n, d int64
	cmd := &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message with the private key (d, n)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := appCtx.Keys.Sign([]byte(args[0]), domain.RSAKey{Modulus: n, Exponent: d})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	cmd.Flags().Int64Var(&n, "n", 0, "modulus n")
	cmd.Flags().Int64Var(&d, "d", 0, "private exponent d")
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("d")
	return cmd
}

func verifyCmd() *cobra.Command {
	var n, e int64
	cmd := &cobra.Command{
		Use:   "verify <message> <signature>",
		Short: "Verify a signature with the public key (e, n)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := parseInteger("signature", args[1])
			if err != nil {
				return err
			}
			ok, err := appCtx.Keys.Verify([]byte(args[0]), domain.Signature(sig), domain.RSAKey{Modulus: n, Exponent: e})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signature Valid: %s\n", yesNo(ok))
			return nil
		},
	}
	cmd.Flags().Int64Var(&n, "n", 0, "modulus n")
	cmd.Flags().Int64Var(&e, "e", 65537, "public exponent e")
	_ = cmd.MarkFlagRequired("n")
	return cmd
}
