package validators

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// cpfFromBase builds a full CPF from nine base digits by computing both
// check digits with the published modulo-11 scheme.
func cpfFromBase(base []int) string {
	sum := 0
	for i, d := range base {
		sum += d * (10 - i)
	}
	first := (sum * 10) % 11
	if first >= 10 {
		first = 0
	}

	sum = 0
	for i, d := range base {
		sum += d * (11 - i)
	}
	sum += first * 2
	second := (sum * 10) % 11
	if second >= 10 {
		second = 0
	}

	digits := make([]byte, 0, 11)
	for _, d := range base {
		digits = append(digits, byte('0'+d))
	}
	digits = append(digits, byte('0'+first), byte('0'+second))
	return string(digits)
}

// cnpjFromBase builds a full CNPJ from twelve base digits.
func cnpjFromBase(base []int) string {
	weightsFirst := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	sum := 0
	for i, d := range base {
		sum += d * weightsFirst[i]
	}
	first := 0
	if sum%11 >= 2 {
		first = 11 - sum%11
	}

	weightsSecond := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3}
	sum = 0
	for i, d := range base {
		sum += d * weightsSecond[i]
	}
	sum += first * 2
	second := 0
	if sum%11 >= 2 {
		second = 11 - sum%11
	}

	digits := make([]byte, 0, 14)
	for _, d := range base {
		digits = append(digits, byte('0'+d))
	}
	digits = append(digits, byte('0'+first), byte('0'+second))
	return string(digits)
}

func allEqual(base []int) bool {
	for _, d := range base {
		if d != base[0] {
			return false
		}
	}
	return true
}

func TestProperty_CPFCheckDigits(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	baseGen := gen.SliceOfN(9, gen.IntRange(0, 9))

	properties.Property("correctly computed check digits validate", prop.ForAll(
		func(base []int) bool {
			if allEqual(base) {
				return true // degenerate values are rejected by design
			}
			return ValidateCPF(cpfFromBase(base))
		},
		baseGen,
	))

	properties.Property("mutating either check digit invalidates", prop.ForAll(
		func(base []int, which int, bump int) bool {
			if allEqual(base) {
				return true
			}
			cpf := []byte(cpfFromBase(base))
			pos := 9 + which%2
			cpf[pos] = byte('0' + (int(cpf[pos]-'0')+bump)%10)
			return !ValidateCPF(string(cpf))
		},
		baseGen,
		gen.IntRange(0, 1),
		gen.IntRange(1, 9),
	))

	properties.TestingRun(t)
}

func TestProperty_CNPJCheckDigits(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	baseGen := gen.SliceOfN(12, gen.IntRange(0, 9))

	properties.Property("correctly computed check digits validate", prop.ForAll(
		func(base []int) bool {
			cnpj := cnpjFromBase(base)
			if cnpj == "00000000000000" {
				return true
			}
			return ValidateCNPJ(cnpj)
		},
		baseGen,
	))

	properties.Property("mutating either check digit invalidates", prop.ForAll(
		func(base []int, which int, bump int) bool {
			cnpj := []byte(cnpjFromBase(base))
			pos := 12 + which%2
			cnpj[pos] = byte('0' + (int(cnpj[pos]-'0')+bump)%10)
			mutated := string(cnpj)
			if mutated == "00000000000000" {
				return true
			}
			return !ValidateCNPJ(mutated)
		},
		baseGen,
		gen.IntRange(0, 1),
		gen.IntRange(1, 9),
	))

	properties.TestingRun(t)
}
