package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/internal/util"
)

func tokenCmd() *cobra.Command {
	var (
		msg  util.JWTMessage
		role string
		ttl  time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a development token with the configured secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg.Role = model.Role(role)
			if !msg.Role.Valid() {
				return fmt.Errorf("unknown role %q", role)
			}
			token, err := util.GetTokenMgr().CreateToken(&msg, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&msg.UserID, "sub", "", "profile id carried as the subject")
	f.StringVar(&msg.Email, "email", "", "email claim")
	f.StringVar(&msg.WorkspaceID, "workspace", "", "workspace claim")
	f.StringVar(&role, "role", string(model.RoleMember), "member, admin or client")
	f.DurationVar(&ttl, "ttl", 24*time.Hour, "lifetime of the token")
	_ = cmd.MarkFlagRequired("sub")
	return cmd
}
