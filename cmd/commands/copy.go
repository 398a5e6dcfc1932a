package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/valmirmacedo/cancella-cli/internal/cli"
	"github.com/valmirmacedo/cancella-cli/pkg/api"
	"github.com/valmirmacedo/cancella-cli/pkg/models"
	"github.com/valmirmacedo/cancella-cli/pkg/table"
)

// NewCopyCommand creates the copy command
func NewCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <entity> <id>",
		Short: "Copy a record to the clipboard",
		Long: `Copy a record's fields to the system clipboard as key: value
lines, handy for pasting into messages to residents.

Examples:
  cancella copy visitantes 42
  cancella copy encomendas 15`,
		Args: cobra.ExactArgs(2),
		RunE: runCopy,
	}
}

func runCopy(cmd *cobra.Command, args []string) error {
	entity, err := cli.NormalizeEntity(args[0])
	if err != nil {
		return err
	}
	id := args[1]

	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	rec, err := findRecord(ctx, client, entity, id)
	if err != nil {
		return err
	}

	content := strings.Join(recordLines(rec), "\n")
	if err := clipboard.WriteAll(content); err != nil {
		// no clipboard in this terminal; print instead so the data is
		// still usable
		cli.PrintWarning("clipboard unavailable: %v", err)
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	}

	cli.PrintSuccess("Registro %s copiado para a área de transferência", id)
	return nil
}

// findRecord walks the collection pages looking for the given id. The
// backend has no fetch-by-id endpoint, so this is a paged scan.
func findRecord(ctx context.Context, client *api.Client, entity models.Entity, id string) (table.Record, error) {
	page := 1
	for {
		result, err := client.List(ctx, entity, page, "")
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", entity, err)
		}
		for _, rec := range result.Records {
			if rec.ID() == id {
				return rec, nil
			}
		}
		if page >= result.TotalPages {
			return nil, fmt.Errorf("record %s not found in %s", id, entity)
		}
		page++
	}
}
