package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/credseal/credentials"
	"github.com/kbukum/credseal/util"
)

func newUsersCmd() *cobra.Command {
	var (
		page, pageSize int
		token          string
	)

	cmd := &cobra.Command{
		Use:     "users",
		Short:   "Print a GET /list request for one page of users.",
		Example: `  credseal users --page 2 --page-size 20 --token "$TOKEN"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := credentials.BuildListUsersEnvelope(page, pageSize, util.SanitizeEnvValue(token))
			return writeEnvelope(cmd.OutOrStdout(), env)
		},
	}
	cmd.Flags().IntVar(&page, "page", credentials.DefaultPage, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", credentials.DefaultPageSize, "users per page")
	cmd.Flags().StringVar(&token, "token", "", "bearer token from a previous login")
	return cmd
}
