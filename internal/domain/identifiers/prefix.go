package identifiers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// PrefixLength es el largo del código base derivado del nombre.
	PrefixLength = 3

	// FallbackPrefix se usa cuando el nombre no tiene letras utilizables.
	FallbackPrefix = "BRD"

	// PrefixFiller completa por la derecha los códigos cortos.
	PrefixFiller = 'X'

	// maxSuffix: se prueban base1..base9 antes del fallback por tiempo.
	maxSuffix = 9
)

var (
	ErrEmptyPrefix     = errors.New("farm prefix is empty")
	ErrInvalidPrefix   = errors.New("farm prefix must be 2-10 letters or digits")
	ErrPrefixExhausted = errors.New("unable to allocate a unique farm prefix")
)

var explicitPrefixRe = regexp.MustCompile(`^[A-Z0-9]{2,10}$`)

// PrefixChecker responde si un farm prefix ya está tomado por otro breeder.
type PrefixChecker interface {
	FarmPrefixExists(ctx context.Context, prefix string) (bool, error)
}

// BasePrefix deriva el código de 3 letras a partir del nombre completo.
//
//	"John Smith" -> "JSM"
//	"Madonna"    -> "MAD"
//	"Al"         -> "ALX"
//	"" / "123"   -> "BRD"
func BasePrefix(fullName string) string {
	words := alphaWords(fullName)

	var code string
	switch {
	case len(words) >= 2:
		first, last := words[0], words[len(words)-1]
		code = first[:1] + head(last, 2)
	case len(words) == 1:
		code = head(words[0], PrefixLength)
	default:
		return FallbackPrefix
	}

	code = strings.ToUpper(code)
	for len(code) < PrefixLength {
		code += string(PrefixFiller)
	}
	return code[:PrefixLength]
}

// Candidates devuelve el orden de prueba: base, base1 ... base9.
func Candidates(base string) []string {
	out := make([]string, 0, maxSuffix+1)
	out = append(out, base)
	for i := 1; i <= maxSuffix; i++ {
		out = append(out, fmt.Sprintf("%s%d", base, i))
	}
	return out
}

// NormalizePrefix valida un prefix elegido por el propio breeder.
func NormalizePrefix(raw string) (string, error) {
	p := strings.ToUpper(strings.TrimSpace(raw))
	if p == "" {
		return "", ErrEmptyPrefix
	}
	if !explicitPrefixRe.MatchString(p) {
		return "", ErrInvalidPrefix
	}
	return p, nil
}

// alphaWords elimina todo lo que no sea letra ASCII o espacio y separa por espacios.
func alphaWords(s string) []string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
