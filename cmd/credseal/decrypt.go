package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/credseal/credentials"
)

func newDecryptCmd(o *rootOptions) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "decrypt [ciphertext]",
		Short: "Decrypt a sealed password.",
		Long: `Decrypt a sealed password and print the plaintext.

With the default aes-256-cbc-salted algorithm a wrong key is not detected:
the output is empty or garbled instead of an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ciphertext, err := o.readInput(args, fromStdin, "ciphertext")
			if err != nil {
				return err
			}
			return o.run(cmd, func(ctx context.Context, s *credentials.Sealer) error {
				plain, err := s.RevealPassword(ctx, ciphertext)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), plain)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the ciphertext from standard input")
	return cmd
}
