// Package schemas declares the column layout of every backend
// collection. The TUI pages and the CLI list command both render from
// these descriptors, so a field shows up the same way everywhere.
package schemas

import (
	"fmt"
	"strings"

	"github.com/valmirmacedo/cancella-cli/pkg/models"
	"github.com/valmirmacedo/cancella-cli/pkg/table"
	"github.com/valmirmacedo/cancella-cli/pkg/validators"
)

// ForEntity returns the column schema for one collection.
func ForEntity(entity models.Entity) table.Schema {
	switch entity {
	case models.EntityVisitors:
		return visitorSchema
	case models.EntityReservations:
		return reservationSchema
	case models.EntityNotices:
		return noticeSchema
	case models.EntityPackages:
		return packageSchema
	case models.EntitySpaces:
		return spaceSchema
	case models.EntityTeams:
		return teamSchema
	case models.EntityCompanies:
		return companySchema
	default:
		return genericSchema
	}
}

// Title returns the page heading for one collection.
func Title(entity models.Entity) string {
	switch entity {
	case models.EntityVisitors:
		return "Visitantes"
	case models.EntityReservations:
		return "Reservas"
	case models.EntityNotices:
		return "Avisos"
	case models.EntityPackages:
		return "Encomendas"
	case models.EntitySpaces:
		return "Espaços"
	case models.EntityTeams:
		return "Equipes"
	case models.EntityCompanies:
		return "Empresas"
	default:
		name := string(entity)
		if name == "" {
			return ""
		}
		return strings.ToUpper(name[:1]) + name[1:]
	}
}

func asString(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

// currency renders a value as Brazilian reais.
func currency(value any, _ table.Record) string {
	var amount float64
	switch v := value.(type) {
	case float64:
		amount = v
	case int:
		amount = float64(v)
	case string:
		return v
	default:
		return asString(value)
	}
	return strings.Replace(fmt.Sprintf("R$ %.2f", amount), ".", ",", 1)
}

var actionsColumn = table.Column{Key: "actions", Header: "Ações", Width: 12}

var visitorSchema = table.MustSchema(
	table.Column{Key: "nome", Header: "Nome", Editable: true},
	table.Column{Key: "documento", Header: "Documento", Width: 16, Render: func(value any, _ table.Record) string {
		return validators.FormatCPF(asString(value))
	}},
	table.Column{Key: "morador_nome", Header: "Morador", ReadOnly: true},
	table.Column{Key: "data_entrada", Header: "Entrada", Width: 18, ReadOnly: true},
	table.Column{Key: "placa_veiculo", Header: "Placa", Width: 10, Editable: true, Render: func(value any, _ table.Record) string {
		return validators.FormatPlate(asString(value))
	}},
	table.Column{Key: "is_permanente", Header: "Permanente", Width: 12, Editable: true, Kind: table.KindBooleanStatus},
	actionsColumn,
)

var reservationSchema = table.MustSchema(
	table.Column{Key: "espaco_nome", Header: "Espaço", ReadOnly: true},
	table.Column{Key: "data_reserva", Header: "Data", Width: 12, Editable: true, InputType: "date"},
	table.Column{Key: "valor_cobrado", Header: "Valor", Width: 12, ReadOnly: true, Render: currency},
	table.Column{Key: "status", Header: "Status", Width: 14, Editable: true, Kind: table.KindEnumeratedStatus},
	actionsColumn,
)

var noticeSchema = table.MustSchema(
	table.Column{Key: "titulo", Header: "Título", Editable: true},
	table.Column{Key: "mensagem", Header: "Mensagem", Editable: true},
	table.Column{Key: "criado_em", Header: "Criado em", Width: 12},
	actionsColumn,
)

var packageSchema = table.MustSchema(
	table.Column{Key: "destinatario_nome", Header: "Destinatário", Editable: true},
	table.Column{Key: "descricao", Header: "Descrição", Editable: true},
	table.Column{Key: "codigo_rastreio", Header: "Rastreio", Width: 16, Editable: true},
	table.Column{Key: "recebido_em", Header: "Recebida em", Width: 14, ReadOnly: true},
	table.Column{Key: "retirado", Header: "Retirada", Width: 10, Editable: true, Kind: table.KindBooleanStatus},
	actionsColumn,
)

var spaceSchema = table.MustSchema(
	table.Column{Key: "nome", Header: "Nome", Editable: true},
	table.Column{Key: "capacidade", Header: "Capacidade", Width: 12, Editable: true},
	table.Column{Key: "valor", Header: "Valor", Width: 12, Editable: true, Render: currency},
	table.Column{Key: "is_active", Header: "Status", Width: 12, Editable: true},
	actionsColumn,
)

var teamSchema = table.MustSchema(
	table.Column{Key: "name", Header: "Nome", Editable: true},
	table.Column{Key: "sector", Header: "Setor", Editable: true},
	table.Column{Key: "profile", Header: "Perfil", Width: 8, ReadOnly: true},
	actionsColumn,
)

var companySchema = table.MustSchema(
	table.Column{Key: "nome", Header: "Nome", Editable: true},
	table.Column{Key: "cnpj", Header: "CNPJ", Width: 20, Editable: true, Render: func(value any, _ table.Record) string {
		return validators.FormatCNPJ(asString(value))
	}},
	table.Column{Key: "status", Header: "Status", Width: 10, Editable: true},
	actionsColumn,
)

// genericSchema is the fallback for collections without a declared
// layout: id and name only.
var genericSchema = table.MustSchema(
	table.Column{Key: "id", Header: "ID", Width: 8},
	table.Column{Key: "nome", Header: "Nome"},
)
