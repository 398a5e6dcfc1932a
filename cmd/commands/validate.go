package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valmirmacedo/cancella-cli/internal/cli"
	"github.com/valmirmacedo/cancella-cli/pkg/validators"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <tipo> <valor>",
		Short: "Validate a Brazilian document or code",
		Long: `Check a value against the Brazilian document rules. Exits with an
error when the value is invalid.

Types: cpf, cnpj, telefone, cep, placa

Examples:
  cancella validate cpf 529.982.247-25
  cancella validate placa BRA2E19
  cancella validate cep 01310-100`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"cpf", "cnpj", "telefone", "cep", "placa"},
		RunE:      runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	kind := strings.ToLower(args[0])
	value := args[1]

	var valid bool
	var formatted string

	switch kind {
	case "cpf":
		valid = validators.ValidateCPF(value)
		formatted = validators.FormatCPF(value)
	case "cnpj":
		valid = validators.ValidateCNPJ(value)
		formatted = validators.FormatCNPJ(value)
	case "telefone", "phone":
		valid = validators.ValidatePhone(value)
	case "cep":
		valid = validators.ValidateCEP(value)
		formatted = validators.FormatCEP(value)
	case "placa", "plate":
		normalized := validators.NormalizePlate(value)
		valid = validators.ValidatePlate(normalized)
		formatted = validators.FormatPlate(normalized)
	default:
		return fmt.Errorf("unknown type: %s (must be: cpf, cnpj, telefone, cep, or placa)", kind)
	}

	if !valid {
		return fmt.Errorf("%s inválido: %s", kind, value)
	}

	if formatted != "" && formatted != value {
		cli.PrintSuccess("%s válido: %s", kind, formatted)
	} else {
		cli.PrintSuccess("%s válido", kind)
	}
	return nil
}
