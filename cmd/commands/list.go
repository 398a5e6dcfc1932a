package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valmirmacedo/cancella-cli/internal/cli"
	"github.com/valmirmacedo/cancella-cli/pkg/models"
	"github.com/valmirmacedo/cancella-cli/pkg/schemas"
	"github.com/valmirmacedo/cancella-cli/pkg/table"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Entity      string         `json:"entity" yaml:"entity"`
	Records     []table.Record `json:"records" yaml:"records"`
	Count       int            `json:"count" yaml:"count"`
	Page        int            `json:"page" yaml:"page"`
	TotalPages  int            `json:"total_pages" yaml:"total_pages"`
}

var (
	listPage   int
	listSearch string
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <entity>",
		Short: "List records of a collection",
		Long: `List one page of records from the backend.

Examples:
  # List visitors
  cancella list visitantes

  # Second page of reservations
  cancella list reservas --page 2

  # Search packages, JSON output
  cancella list encomendas --search caixa -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runList,
	}

	cmd.Flags().IntVarP(&listPage, "page", "p", 1, "Page to fetch")
	cmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search term")
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	entity, err := cli.NormalizeEntity(args[0])
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	page, err := client.List(ctx, entity, listPage, listSearch)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", entity, err)
	}

	result := ListResult{
		Entity:     string(entity),
		Records:    page.Records,
		Count:      page.Count,
		Page:       page.CurrentPage,
		TotalPages: page.TotalPages,
	}

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		return outputListText(cmd, entity, result)
	}
}

func outputListText(cmd *cobra.Command, entity models.Entity, result ListResult) error {
	schema := schemas.ForEntity(entity)
	cols := schema.FieldColumns()

	formatter := cli.NewTableFormatter(cmd.OutOrStdout())
	headers := make([]string, 0, len(cols)+1)
	headers = append(headers, "ID")
	for _, col := range cols {
		headers = append(headers, col.Header)
	}
	formatter.Header(headers...)

	for _, rec := range result.Records {
		row := make([]string, 0, len(cols)+1)
		row = append(row, rec.ID())
		for _, col := range cols {
			row = append(row, cli.TruncateString(cellText(col, rec), 40))
		}
		formatter.Row(row...)
	}
	formatter.Flush()

	cli.PrintInfo("%d registros, página %d de %d", result.Count, result.Page, result.TotalPages)
	return nil
}
