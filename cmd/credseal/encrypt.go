package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/credseal/credentials"
)

func newEncryptCmd(o *rootOptions) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "encrypt [plaintext]",
		Short: "Encrypt a password and print the base64 ciphertext.",
		Example: `  credseal encrypt 'myPassword123'
  printf '%s' "$PASSWORD" | credseal encrypt --stdin`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext, err := o.readInput(args, fromStdin, "plaintext")
			if err != nil {
				return err
			}
			return o.run(cmd, func(ctx context.Context, s *credentials.Sealer) error {
				sealed, err := s.SealPassword(ctx, plaintext)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), sealed)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the plaintext from standard input")
	return cmd
}
