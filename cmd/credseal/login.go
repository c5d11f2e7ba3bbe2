package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/credseal/credentials"
)

func newLoginCmd(o *rootOptions) *cobra.Command {
	var (
		email string
		pw    passwordFlags
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Print a sealed POST /login request.",
		Example: `  credseal login --email jane@example.com --password 'hunter22'
  printf '%s' "$PASSWORD" | credseal login --email jane@example.com --stdin`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := pw.resolve(cmd, o)
			if err != nil {
				return err
			}
			req := credentials.LoginRequest{Email: email, Password: password}
			return o.run(cmd, func(ctx context.Context, s *credentials.Sealer) error {
				env, err := s.BuildLoginEnvelope(ctx, req)
				if err != nil {
					return err
				}
				return writeEnvelope(cmd.OutOrStdout(), env)
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	_ = cmd.MarkFlagRequired("email")
	pw.register(cmd)
	return cmd
}

func writeEnvelope(w io.Writer, env credentials.Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}
