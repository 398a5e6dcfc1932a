package validators

import "strings"

// digitsOnly strips every non-digit rune from s.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// ValidateCPF checks a Brazilian individual taxpayer ID (CPF).
// Accepts formatted input ("123.456.789-09"); only digits are considered.
func ValidateCPF(cpf string) bool {
	digits := digitsOnly(cpf)
	if len(digits) != 11 {
		return false
	}
	if allSameDigit(digits) {
		return false
	}

	sum := 0
	for i := 1; i <= 9; i++ {
		sum += int(digits[i-1]-'0') * (11 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 || rest == 11 {
		rest = 0
	}
	if rest != int(digits[9]-'0') {
		return false
	}

	sum = 0
	for i := 1; i <= 10; i++ {
		sum += int(digits[i-1]-'0') * (12 - i)
	}
	rest = (sum * 10) % 11
	if rest == 10 || rest == 11 {
		rest = 0
	}
	return rest == int(digits[10]-'0')
}

// cnpjCheckDigit computes one CNPJ check digit over the first size digits.
// Weights cycle 2..9 starting from the rightmost digit.
func cnpjCheckDigit(digits string, size int) int {
	sum := 0
	pos := size - 7
	for i := size; i >= 1; i-- {
		sum += int(digits[size-i]-'0') * pos
		pos--
		if pos < 2 {
			pos = 9
		}
	}
	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}

// ValidateCNPJ checks a Brazilian company tax ID (CNPJ).
func ValidateCNPJ(cnpj string) bool {
	digits := digitsOnly(cnpj)
	if len(digits) != 14 {
		return false
	}
	if digits == "00000000000000" {
		return false
	}

	if cnpjCheckDigit(digits, 12) != int(digits[12]-'0') {
		return false
	}
	return cnpjCheckDigit(digits, 13) == int(digits[13]-'0')
}

// FormatCPF renders a CPF as XXX.XXX.XXX-XX. Inputs without the full
// 11 digits are returned as bare digits.
func FormatCPF(cpf string) string {
	digits := digitsOnly(cpf)
	if len(digits) != 11 {
		return digits
	}
	return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
}

// FormatCNPJ renders a CNPJ as XX.XXX.XXX/XXXX-XX. Inputs without the
// full 14 digits are returned as bare digits.
func FormatCNPJ(cnpj string) string {
	digits := digitsOnly(cnpj)
	if len(digits) != 14 {
		return digits
	}
	return digits[:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:]
}

// ValidatePhone checks a Brazilian phone number: 10 or 11 digits
// (area code plus 8 or 9 digit line), area code not starting with 0.
func ValidatePhone(phone string) bool {
	digits := digitsOnly(phone)
	if len(digits) < 10 || len(digits) > 11 {
		return false
	}
	return digits[0] != '0'
}

// ValidateCEP checks a Brazilian postal code: exactly 8 digits.
func ValidateCEP(cep string) bool {
	return len(digitsOnly(cep)) == 8
}

// FormatCEP renders a postal code as XXXXX-XXX. Inputs with five or
// fewer digits are returned as bare digits.
func FormatCEP(cep string) string {
	digits := digitsOnly(cep)
	if len(digits) <= 5 {
		return digits
	}
	if len(digits) > 8 {
		digits = digits[:8]
	}
	return digits[:5] + "-" + digits[5:]
}
