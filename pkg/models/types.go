package models

// Entity names the record collections served by the backend. The CLI
// and TUI address every collection through one of these.
type Entity string

const (
	EntityVisitors     Entity = "visitantes"
	EntityReservations Entity = "reservas"
	EntityNotices      Entity = "avisos"
	EntityPackages     Entity = "encomendas"
	EntitySpaces       Entity = "espacos"
	EntityTeams        Entity = "teams"
	EntityCompanies    Entity = "empresas"
)

// Entities lists every addressable collection, in display order.
var Entities = []Entity{
	EntityVisitors,
	EntityReservations,
	EntityNotices,
	EntityPackages,
	EntitySpaces,
	EntityTeams,
	EntityCompanies,
}

// Reservation status values accepted by the backend.
const (
	StatusPendente   = "pendente"
	StatusConfirmada = "confirmada"
	StatusCancelada  = "cancelada"
)

// Visitor is a registered visitor entry. DataSaida stays nil while the
// visitor has not left.
type Visitor struct {
	ID               int     `json:"id,omitempty"`
	Nome             string  `json:"nome"`
	Documento        string  `json:"documento"`
	MoradorID        int     `json:"morador_id,omitempty"`
	MoradorNome      string  `json:"morador_nome,omitempty"`
	DataEntrada      string  `json:"data_entrada"`
	DataSaida        *string `json:"data_saida,omitempty"`
	PlacaVeiculo     *string `json:"placa_veiculo,omitempty"`
	IsPermanente     bool    `json:"is_permanente"`
	EstaNoCondominio bool    `json:"esta_no_condominio,omitempty"`
}

// Reservation books a shared space for one date.
type Reservation struct {
	ID           int     `json:"id,omitempty"`
	EspacoID     int     `json:"espaco_id,omitempty"`
	EspacoNome   string  `json:"espaco_nome,omitempty"`
	DataReserva  string  `json:"data_reserva"`
	ValorCobrado float64 `json:"valor_cobrado,omitempty"`
	Status       string  `json:"status,omitempty"`
}

// Notice is a bulletin shown to one or more resident groups.
type Notice struct {
	ID       int      `json:"id,omitempty"`
	Titulo   string   `json:"titulo"`
	Mensagem string   `json:"mensagem"`
	Grupos   []int    `json:"grupos,omitempty"`
	CriadoEm string   `json:"criado_em,omitempty"`
}

// Package is a delivery held at the front desk until pickup.
type Package struct {
	ID               int    `json:"id,omitempty"`
	UnidadeID        int    `json:"unidade_id,omitempty"`
	DestinatarioNome string `json:"destinatario_nome"`
	Descricao        string `json:"descricao"`
	CodigoRastreio   string `json:"codigo_rastreio,omitempty"`
	RecebidoEm       string `json:"recebido_em,omitempty"`
	Retirado         bool   `json:"retirado,omitempty"`
}

// PackageBadge aggregates pending deliveries for a unit by age bucket.
type PackageBadge struct {
	Total      int    `json:"total"`
	Green      int    `json:"green"`  // received today
	Yellow     int    `json:"yellow"` // up to three days
	Red        int    `json:"red"`    // three days or more
	BadgeColor string `json:"badge_color"`
}

// Space is a reservable common area.
type Space struct {
	ID         int     `json:"id,omitempty"`
	Nome       string  `json:"nome"`
	Capacidade int     `json:"capacidade,omitempty"`
	Valor      float64 `json:"valor,omitempty"`
	IsActive   bool    `json:"is_active"`
}

// Team is a staff group with an optional access profile.
type Team struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name"`
	Sector  string `json:"sector,omitempty"`
	Profile int    `json:"profile,omitempty"`
}

// Company is a service provider tied to the condominium.
type Company struct {
	ID     int    `json:"id,omitempty"`
	Nome   string `json:"nome"`
	CNPJ   string `json:"cnpj"`
	Status bool   `json:"status"`
}

// ValidEntity reports whether name addresses a known collection.
func ValidEntity(name string) bool {
	for _, e := range Entities {
		if string(e) == name {
			return true
		}
	}
	return false
}
