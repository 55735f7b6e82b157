package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mvetrov/assetmart-cli/internal/domain"
	"github.com/spf13/cobra"
)

// requireAuth hydrates the session once and fails fast when no session is
// held, instead of letting the server answer 401 for every subcommand.
func requireAuth(ctx context.Context, app *app) error {
	if err := app.auth.Hydrate(ctx); err != nil {
		return err
	}

	if !app.sessions.Session().IsAuthenticated() {
		return fmt.Errorf("%w: run `am login` first", domain.ErrUnauthenticated)
	}

	return nil
}

func requirePermission(ctx context.Context, app *app, permission domain.Permission) error {
	if err := requireAuth(ctx, app); err != nil {
		return err
	}

	session := app.sessions.Session()
	if session.User != nil && !session.User.Can(permission) {
		return fmt.Errorf("access denied: %s requires the %s permission", session.User.Username, permission)
	}

	return nil
}

func addPaginationFlags(cmd *cobra.Command, page, pageSize *int) {
	cmd.Flags().IntVar(page, "page", domain.DefaultPage, "Page number")
	cmd.Flags().IntVar(pageSize, "page-size", domain.DefaultPageSize, "Items per page")
}

// newPagination applies size before page: changing the page size resets to
// page one, so the explicit page flag must win afterwards.
func newPagination(page, pageSize int) domain.Pagination {
	pagination := domain.NewPagination()
	pagination.SetPageSize(pageSize)
	pagination.SetPage(page)
	return pagination
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}

	return id, nil
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
