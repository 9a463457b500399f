package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"minicrypt/internal/crypto"
)

// exchangeCmd runs Diffie-Hellman between two simulated parties. Flags left
// unset fall back to the configured values.
func exchangeCmd() *cobra.Command {
	var base, modulus, alice, bob int64

	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Run the simulated Alice/Bob Diffie-Hellman exchange",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := appCtx.Config.DHParams()
			if cmd.Flags().Changed("base") {
				params.Base = base
			}
			if cmd.Flags().Changed("modulus") {
				params.Modulus = modulus
			}
			a, b := appCtx.Config.AlicePrivate, appCtx.Config.BobPrivate
			if cmd.Flags().Changed("alice") {
				a = alice
			}
			if cmd.Flags().Changed("bob") {
				b = bob
			}

			ex, err := appCtx.Exchange.Run(params, a, b)
			if err != nil {
				return err
			}
			key, err := appCtx.Exchange.SymmetricKey(ex.Secret())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Public base: %d\n", ex.Params.Base)
			fmt.Fprintf(out, "Public modulus: %d\n", ex.Params.Modulus)
			fmt.Fprintf(out, "Alice sends A = base^a mod p: %d\n", ex.Initiator.Public)
			fmt.Fprintf(out, "Bob sends B = base^b mod p: %d\n", ex.Responder.Public)
			fmt.Fprintf(out, "Alice computes shared key: %s\n", ex.InitiatorSecret)
			fmt.Fprintf(out, "Bob computes shared key: %s\n", ex.ResponderSecret)
			fmt.Fprintf(out, "Symmetric key (hex): %s\n", crypto.HexEncode(key))
			return nil
		},
	}
	cmd.Flags().Int64Var(&base, "base", 0, "public base (default from config)")
	cmd.Flags().Int64Var(&modulus, "modulus", 0, "public modulus (default from config)")
	cmd.Flags().Int64Var(&alice, "alice", 0, "Alice's private exponent (default from config)")
	cmd.Flags().Int64Var(&bob, "bob", 0, "Bob's private exponent (default from config)")
	return cmd
}
