package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"minicrypt/internal/crypto"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen <p> <q>",
		Short: "Derive an RSA key pair from two primes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseInteger("p", args[0])
			if err != nil {
				return err
			}
			q, err := parseInteger("q", args[1])
			if err != nil {
				return err
			}

			kp, err := appCtx.Keys.Generate(p, q)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "n = p * q: %d\n", kp.Public.Modulus)
			fmt.Fprintf(out, "phi(n): %d\n", kp.Phi)
			fmt.Fprintf(out, "Public Key (e, n): %s\n", kp.Public)
			fmt.Fprintf(out, "Private Key (d, n): %s\n", kp.Private)
			fmt.Fprintf(out, "Fingerprint: %s\n", crypto.Fingerprint(kp.Public))
			return nil
		},
	}
}
