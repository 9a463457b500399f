package commands

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"minicrypt/internal/crypto"
	"minicrypt/internal/domain"
	"minicrypt/internal/export"
	"minicrypt/internal/services/walkthrough"
)

// demoCmd runs the whole scenario. Values not given as flags are read from
// stdin; invalid primes are asked for again.
func demoCmd() *cobra.Command {
	var (
		message string
		p, q    int64
		asJSON  bool
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Key generation, exchange, encrypt, sign, verify and a tamper test",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			in := bufio.NewReader(cmd.InOrStdin())
			interactive := !cmd.Flags().Changed("p") || !cmd.Flags().Changed("q")

			var err error
			for message == "" {
				if message, err = prompt(in, out, "Enter Message: "); err != nil {
					return err
				}
			}

			input := walkthrough.Input{
				Message:      message,
				P:            p,
				Q:            q,
				Params:       appCtx.Config.DHParams(),
				AlicePrivate: appCtx.Config.AlicePrivate,
				BobPrivate:   appCtx.Config.BobPrivate,
			}

			var rep walkthrough.Report
			for {
				if interactive {
					if input.P, input.Q, err = promptPrimes(in, out); err != nil {
						return err
					}
				}
				rep, err = appCtx.Walkthrough.Run(input)
				if interactive && retryable(err) {
					fmt.Fprintf(out, "%v. Try again.\n", err)
					continue
				}
				if err != nil {
					return err
				}
				break
			}

			if outPath != "" {
				if err := export.WriteJSON(outPath, rep, 0o600); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
			}
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			printReport(out, rep)
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to encrypt and sign")
	cmd.Flags().Int64Var(&p, "p", 0, "first prime")
	cmd.Flags().Int64Var(&q, "q", 0, "second prime")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "also write the report as JSON to this file")
	return cmd
}

func retryable(err error) bool {
	return errors.Is(err, walkthrough.ErrPrimeTooSmall) ||
		errors.Is(err, walkthrough.ErrInvalidInput) ||
		errors.Is(err, crypto.ErrInvalidModulus)
}

// prompt writes label and returns the next trimmed line.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptPrimes(in *bufio.Reader, out io.Writer) (p, q domain.Integer, err error) {
	for _, f := range []struct {
		label string
		dst   *domain.Integer
	}{
		{"Enter prime p : ", &p},
		{"Enter prime q : ", &q},
	} {
		for {
			s, err := prompt(in, out, f.label)
			if err != nil {
				return 0, 0, err
			}
			v, err := parseInteger("prime", s)
			if err != nil {
				fmt.Fprintf(out, "%v\n", err)
				continue
			}
			*f.dst = v
			break
		}
	}
	return p, q, nil
}

func printReport(out io.Writer, rep walkthrough.Report) {
	kp, ex := rep.Keys, rep.Exchange

	fmt.Fprintln(out, "\n=== RSA Key Generation Steps ===")
	fmt.Fprintf(out, "p: %d\n", kp.P)
	fmt.Fprintf(out, "q: %d\n", kp.Q)
	fmt.Fprintf(out, "n = p * q: %d\n", kp.Public.Modulus)
	fmt.Fprintf(out, "phi(n): %d\n", kp.Phi)
	fmt.Fprintf(out, "Public Key (e, n): %s\n", kp.Public)
	fmt.Fprintf(out, "Private Key (d, n): %s\n", kp.Private)

	fmt.Fprintln(out, "\n=== Diffie-Hellman Key Exchange ===")
	fmt.Fprintf(out, "Public base: %d\n", ex.Params.Base)
	fmt.Fprintf(out, "Public modulus: %d\n", ex.Params.Modulus)
	fmt.Fprintf(out, "Alice private key: %d\n", ex.Initiator.Private)
	fmt.Fprintf(out, "Bob private key: %d\n", ex.Responder.Private)
	fmt.Fprintf(out, "Alice sends A = base^a mod p: %d\n", ex.Initiator.Public)
	fmt.Fprintf(out, "Bob sends B = base^b mod p: %d\n", ex.Responder.Public)
	fmt.Fprintf(out, "Alice computes shared key: %s\n", ex.InitiatorSecret)
	fmt.Fprintf(out, "Bob computes shared key: %s\n", ex.ResponderSecret)

	fmt.Fprintln(out, "\n=== Transaction Details ===")
	fmt.Fprintf(out, "Encrypted Message : %s\n", rep.Sealed.Ciphertext)
	fmt.Fprintf(out, "Digital Signature : %s\n", rep.Sealed.Signature)

	fmt.Fprintln(out, "\n=== Bob's Verification ===")
	fmt.Fprintf(out, "Decrypted Message: %s\n", rep.Opened.Plaintext)
	fmt.Fprintf(out, "Signature Valid: %s\n", yesNo(rep.Opened.Valid))

	fmt.Fprintln(out, "\n=== Test Case 2: Tampered Data ===")
	fmt.Fprintf(out, "Tampered Ciphertext: %s\n", rep.Tampered.Ciphertext)
	fmt.Fprintf(out, "Tampered Message: %q\n", rep.Tampered.Opened.Plaintext)
	fmt.Fprintf(out, "Signature Valid After Tampering: %s\n", yesNo(rep.Tampered.Opened.Valid))
}
