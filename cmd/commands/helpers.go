package commands

import (
	"fmt"
	"sort"
	"time"

	"github.com/valmirmacedo/cancella-cli/internal/cli"
	"github.com/valmirmacedo/cancella-cli/pkg/api"
	"github.com/valmirmacedo/cancella-cli/pkg/config"
	"github.com/valmirmacedo/cancella-cli/pkg/models"
	"github.com/valmirmacedo/cancella-cli/pkg/table"
	"github.com/valmirmacedo/cancella-cli/pkg/validators"
)

const requestTimeout = 15 * time.Second

// newClient builds an API client from the persisted settings.
func newClient() (*api.Client, *models.Settings, error) {
	settings, err := config.Read()
	if err != nil {
		return nil, nil, err
	}
	if settings.API.Token == "" {
		cli.PrintWarning("no API token configured; edit %s", configPathHint())
	}
	return api.New(settings.API.BaseURL, settings.API.Token), settings, nil
}

func configPathHint() string {
	path, err := config.Path()
	if err != nil {
		return "~/." + config.ConfigDirName
	}
	return path
}

// cellText renders one field for text output, honoring the schema's
// render function when present.
func cellText(col table.Column, row table.Record) string {
	value := row[col.Key]
	if col.Render != nil {
		return col.Render(value, row)
	}
	if value == nil {
		return "-"
	}
	return fmt.Sprint(value)
}

// recordLines renders a record as sorted "key: value" lines.
func recordLines(rec table.Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, rec[k]))
	}
	return lines
}

// validatePayload runs the Brazilian document checks relevant to the
// entity before a payload leaves the machine. The backend validates
// again; failing early just gives a better message.
func validatePayload(entity models.Entity, payload map[string]any) error {
	if doc, ok := payload["documento"].(string); ok && entity == models.EntityVisitors {
		if !validators.ValidateCPF(doc) {
			return fmt.Errorf("documento inválido: %s não é um CPF válido", doc)
		}
	}
	if cnpj, ok := payload["cnpj"].(string); ok {
		if !validators.ValidateCNPJ(cnpj) {
			return fmt.Errorf("cnpj inválido: %s", cnpj)
		}
	}
	if plate, ok := payload["placa_veiculo"].(string); ok && plate != "" {
		normalized := validators.NormalizePlate(plate)
		if !validators.ValidatePlate(normalized) {
			return fmt.Errorf("placa inválida: %s", plate)
		}
		payload["placa_veiculo"] = normalized
	}
	if phone, ok := payload["telefone"].(string); ok && phone != "" {
		if !validators.ValidatePhone(phone) {
			return fmt.Errorf("telefone inválido: %s", phone)
		}
	}
	return nil
}
