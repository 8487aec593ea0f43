package domain

import (
	"strings"
	"unicode"

	"lugo/pkg/serrors"
)

const (
	cpfDigits  = 11
	cnpjDigits = 14
)

// CPF is a normalized 11-digit personal tax identifier.
type CPF string

// CNPJ is a normalized 14-digit company tax identifier.
type CNPJ string

// digitsOnly strips separators such as dots, dashes and slashes, keeping the
// bare digit sequence.
func digitsOnly(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// NewCPF normalizes value and validates its length.
func NewCPF(value string) (CPF, error) {
	digits := digitsOnly(value)
	if len(digits) != cpfDigits {
		return "", serrors.With(serrors.ErrInvalid, "invalid CPF")
	}

	return CPF(digits), nil
}

// NewCNPJ normalizes value and validates its length.
func NewCNPJ(value string) (CNPJ, error) {
	digits := digitsOnly(value)
	if len(digits) != cnpjDigits {
		return "", serrors.With(serrors.ErrInvalid, "invalid CNPJ")
	}

	return CNPJ(digits), nil
}

func (c CPF) String() string  { return string(c) }
func (c CNPJ) String() string { return string(c) }
