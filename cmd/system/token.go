package system

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Alijeyrad/psyassist_backend/pkg/authorize"
	pasetotoken "github.com/Alijeyrad/psyassist_backend/pkg/paseto"
)

// NewTokenCommand mints an access token with the configured keys. Tokens are
// normally issued by the external identity service; this is for local use.
func NewTokenCommand() *cobra.Command {
	var (
		userID string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a PASETO access token for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig(cmd)
			if err != nil {
				return err
			}
			if _, ok := authorize.KnownRoles[authorize.Role(role)]; !ok {
				return fmt.Errorf("unknown role %q", role)
			}

			uid := uuid.New()
			if userID != "" {
				if uid, err = uuid.Parse(userID); err != nil {
					return fmt.Errorf("invalid --user: %w", err)
				}
			}

			mgr, err := pasetotoken.NewPasetoManager(cfg)
			if err != nil {
				return err
			}
			tok, err := mgr.Issue(pasetotoken.IssueRequest{
				Type:   pasetotoken.TokenTypeAccess,
				UserID: uid,
				Role:   role,
				TTL:    ttl,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user: %s\nrole: %s\ntoken: %s\n", uid, role, tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id (random when empty)")
	cmd.Flags().StringVar(&role, "role", string(authorize.RolePsychologist), "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (configured access TTL when zero)")

	return cmd
}
