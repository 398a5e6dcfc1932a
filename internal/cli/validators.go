package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/valmirmacedo/cancella-cli/pkg/models"
)

// entityAliases maps accepted spellings (singular, plural, english) to
// the canonical entity name used by the backend.
var entityAliases = map[string]models.Entity{
	"visitante":   models.EntityVisitors,
	"visitantes":  models.EntityVisitors,
	"visitor":     models.EntityVisitors,
	"visitors":    models.EntityVisitors,
	"reserva":     models.EntityReservations,
	"reservas":    models.EntityReservations,
	"reservation": models.EntityReservations,
	"aviso":       models.EntityNotices,
	"avisos":      models.EntityNotices,
	"notice":      models.EntityNotices,
	"encomenda":   models.EntityPackages,
	"encomendas":  models.EntityPackages,
	"package":     models.EntityPackages,
	"espaco":      models.EntitySpaces,
	"espacos":     models.EntitySpaces,
	"space":       models.EntitySpaces,
	"team":        models.EntityTeams,
	"teams":       models.EntityTeams,
	"equipe":      models.EntityTeams,
	"equipes":     models.EntityTeams,
	"empresa":     models.EntityCompanies,
	"empresas":    models.EntityCompanies,
	"company":     models.EntityCompanies,
}

// NormalizeEntity converts an entity argument to its canonical form
func NormalizeEntity(name string) (models.Entity, error) {
	entity, ok := entityAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown entity: %s (must be one of: %s)", name, strings.Join(EntityNames(), ", "))
	}
	return entity, nil
}

// EntityNames returns the canonical entity names, sorted
func EntityNames() []string {
	names := make([]string, 0, len(models.Entities))
	for _, e := range models.Entities {
		names = append(names, string(e))
	}
	sort.Strings(names)
	return names
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ParseSetPairs converts repeated key=value flags into a payload map.
// Values "true" and "false" become booleans; everything else stays a
// string so numeric documents keep their leading zeros.
func ParseSetPairs(pairs []string) (map[string]any, error) {
	payload := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid field assignment: %q (expected key=value)", pair)
		}
		switch value {
		case "true":
			payload[key] = true
		case "false":
			payload[key] = false
		default:
			payload[key] = value
		}
	}
	return payload, nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
