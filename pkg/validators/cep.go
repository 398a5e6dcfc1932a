package validators

import (
	"context"
	"encoding/json"
	"net/http"
)

// BrasilAPIBaseURL is the CEP directory endpoint. Overridable in tests.
var BrasilAPIBaseURL = "https://brasilapi.com.br/api/cep/v2"

// CEPData holds the address fields returned by the CEP directory.
type CEPData struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	CEP          string `json:"cep"`
}

// CEPResult is the structured outcome of a CEP lookup. Every failure
// path sets Success to false and Error to a user-facing message; the
// lookup never returns a Go error and never panics.
type CEPResult struct {
	Success bool
	Data    CEPData
	Error   string
}

// FetchCEP looks up an 8-digit postal code against BrasilAPI. Invalid
// input short-circuits without any network traffic. A single attempt is
// made; retry policy belongs to the caller.
func FetchCEP(ctx context.Context, cep string) CEPResult {
	digits := digitsOnly(cep)
	if len(digits) != 8 {
		return CEPResult{Success: false, Error: "CEP inválido"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, BrasilAPIBaseURL+"/"+digits, nil)
	if err != nil {
		return CEPResult{Success: false, Error: "Erro ao buscar CEP"}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return CEPResult{Success: false, Error: "Erro ao buscar CEP"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return CEPResult{Success: false, Error: "CEP não encontrado"}
	}

	var data CEPData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return CEPResult{Success: false, Error: "Erro ao buscar CEP"}
	}
	data.CEP = digits

	return CEPResult{Success: true, Data: data}
}
