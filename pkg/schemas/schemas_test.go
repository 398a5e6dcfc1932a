package schemas

import (
	"testing"

	"github.com/valmirmacedo/cancella-cli/pkg/models"
	"github.com/valmirmacedo/cancella-cli/pkg/table"
)

func TestEveryEntityHasASchema(t *testing.T) {
	for _, entity := range models.Entities {
		schema := ForEntity(entity)
		if len(schema.FieldColumns()) == 0 {
			t.Errorf("%s: schema has no field columns", entity)
		}
		if Title(entity) == "" {
			t.Errorf("%s: empty title", entity)
		}
	}
}

func TestVisitorPlateRendersFormatted(t *testing.T) {
	schema := ForEntity(models.EntityVisitors)

	var plate table.Column
	for _, c := range schema {
		if c.Key == "placa_veiculo" {
			plate = c
		}
	}
	if plate.Render == nil {
		t.Fatal("placa_veiculo has no render func")
	}
	if got := plate.Render("abc1234", nil); got != "ABC-1234" {
		t.Errorf("plate render: got %q, want %q", got, "ABC-1234")
	}
	if got := plate.Render("BRA2E19", nil); got != "BRA-2E19" {
		t.Errorf("mercosul plate render: got %q", got)
	}
}

func TestCompanyCNPJRendersFormatted(t *testing.T) {
	schema := ForEntity(models.EntityCompanies)
	for _, c := range schema {
		if c.Key != "cnpj" {
			continue
		}
		if got := c.Render("11222333000181", nil); got != "11.222.333/0001-81" {
			t.Errorf("cnpj render: got %q", got)
		}
		return
	}
	t.Fatal("company schema has no cnpj column")
}

func TestCurrencyRendering(t *testing.T) {
	if got := currency(150.0, nil); got != "R$ 150,00" {
		t.Errorf("currency: got %q", got)
	}
	if got := currency(99.9, nil); got != "R$ 99,90" {
		t.Errorf("currency: got %q", got)
	}
}

func TestUnknownEntityFallsBack(t *testing.T) {
	schema := ForEntity(models.Entity("unidades"))
	if len(schema) != 2 {
		t.Fatalf("generic schema: got %d columns", len(schema))
	}
	if schema[0].Key != "id" {
		t.Errorf("generic schema first column: got %q", schema[0].Key)
	}
}
