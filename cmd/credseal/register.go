package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kbukum/credseal/credentials"
)

func newRegisterCmd(o *rootOptions) *cobra.Command {
	var (
		reg credentials.Registration
		pw  passwordFlags
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Print a sealed POST /register request.",
		Example: `  credseal register --full-name 'Jane Doe' --email jane@example.com \
    --phone 0612345678 --password 'Str0ng!Pass'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := pw.resolve(cmd, o)
			if err != nil {
				return err
			}
			reg.Password = password
			return o.run(cmd, func(ctx context.Context, s *credentials.Sealer) error {
				env, err := s.BuildRegistrationEnvelope(ctx, reg)
				if err != nil {
					return err
				}
				return writeEnvelope(cmd.OutOrStdout(), env)
			})
		},
	}
	cmd.Flags().StringVar(&reg.FullName, "full-name", "", "full name (2 to 50 characters)")
	cmd.Flags().StringVar(&reg.Email, "email", "", "account email")
	cmd.Flags().StringVar(&reg.Phone, "phone", "", "phone number (9 to 15 digits)")
	for _, name := range []string{"full-name", "email", "phone"} {
		_ = cmd.MarkFlagRequired(name)
	}
	pw.register(cmd)
	return cmd
}
