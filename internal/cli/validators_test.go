package cli

import (
	"testing"

	"github.com/valmirmacedo/cancella-cli/pkg/models"
)

func TestNormalizeEntity(t *testing.T) {
	tests := []struct {
		input   string
		want    models.Entity
		wantErr bool
	}{
		{"visitantes", models.EntityVisitors, false},
		{"visitante", models.EntityVisitors, false},
		{"Visitors", models.EntityVisitors, false},
		{"  reservas ", models.EntityReservations, false},
		{"equipe", models.EntityTeams, false},
		{"empresa", models.EntityCompanies, false},
		{"encomenda", models.EntityPackages, false},
		{"unidades", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeEntity(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeEntity(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeEntity(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeEntity(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q): %v", format, err)
		}
	}
	if err := ValidateOutputFormat("xml"); err == nil {
		t.Error("ValidateOutputFormat(\"xml\"): expected error")
	}
}

func TestParseSetPairs(t *testing.T) {
	payload, err := ParseSetPairs([]string{
		"nome=Ana Souza",
		"documento=01234567890",
		"is_permanente=true",
		"ativo=false",
	})
	if err != nil {
		t.Fatalf("ParseSetPairs: %v", err)
	}

	if payload["nome"] != "Ana Souza" {
		t.Errorf("nome = %v", payload["nome"])
	}
	// documents keep leading zeros: they must stay strings
	if payload["documento"] != "01234567890" {
		t.Errorf("documento = %v", payload["documento"])
	}
	if payload["is_permanente"] != true {
		t.Errorf("is_permanente = %v", payload["is_permanente"])
	}
	if payload["ativo"] != false {
		t.Errorf("ativo = %v", payload["ativo"])
	}
}

func TestParseSetPairsRejectsMalformed(t *testing.T) {
	for _, pair := range []string{"nome", "=Ana", ""} {
		if _, err := ParseSetPairs([]string{pair}); err == nil {
			t.Errorf("ParseSetPairs(%q): expected error", pair)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("condominio", 7); got != "cond..." {
		t.Errorf("TruncateString = %q", got)
	}
	if got := TruncateString("ok", 10); got != "ok" {
		t.Errorf("TruncateString = %q", got)
	}
}
