package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valmirmacedo/cancella-cli/internal/cli"
	"github.com/valmirmacedo/cancella-cli/pkg/validators"
)

// NewCepCommand creates the cep command
func NewCepCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cep <código>",
		Short: "Look up a Brazilian postal code",
		Long: `Look up an address by CEP on BrasilAPI.

Examples:
  cancella cep 01310-100
  cancella cep 01310100 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runCep,
	}

	cmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runCep(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	if err := cli.ValidateOutputFormat(outputFormat); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	result := validators.FetchCEP(ctx, args[0])
	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result.Data)
	default:
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "CEP:         %s\n", validators.FormatCEP(result.Data.CEP))
		fmt.Fprintf(out, "Logradouro:  %s\n", result.Data.Street)
		fmt.Fprintf(out, "Bairro:      %s\n", result.Data.Neighborhood)
		fmt.Fprintf(out, "Cidade:      %s\n", result.Data.City)
		fmt.Fprintf(out, "Estado:      %s\n", result.Data.State)
		return nil
	}
}
