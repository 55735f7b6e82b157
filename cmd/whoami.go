package cmd

import (
	"encoding/json"
	"fmt"

	authadapter "github.com/mvetrov/assetmart-cli/internal/adapters/auth"
	"github.com/mvetrov/assetmart-cli/internal/adapters/render/market"
	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.Hydrate(cmd.Context()); err != nil {
				return err
			}

			session := app.sessions.Session()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(session)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), market.RenderSession(session, market.RenderOptions{Now: app.now()}))
			if err != nil {
				return err
			}

			if claims := authadapter.DecodeClaims(session.Token); claims.Expired(app.now()) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Access token has expired; run `am login` again.")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
