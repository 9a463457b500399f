// Package commands defines the minicrypt CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen     Derive an RSA key pair from two primes
//   - exchange   Run the simulated Alice/Bob Diffie-Hellman exchange
//   - encrypt    XOR-encrypt a message under a key, print hex
//   - decrypt    Decrypt hex ciphertext under a key
//   - sign       Sign a message with a private key (d, n)
//   - verify     Verify a signature with a public key (e, n)
//   - demo       Run the full walkthrough, including the tamper test
//
// # Implementation
//
// The root command loads Config (environment, optionally seeded from --config),
// builds the zap logger and the service graph before any subcommand runs.
// Engine steps are logged to stderr; results are printed to stdout. --quiet
// silences the step log.
package commands
