package domain

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

var ErrInvalidDomain = errors.New("domínio inválido")

// hostnameRegexp valida o domínio já em ASCII: rótulos com letras, dígitos, hífen e
// sublinhado separados por ponto, com pelo menos um ponto
var hostnameRegexp = regexp.MustCompile(`^([a-z0-9_]([a-z0-9_-]*[a-z0-9_])?\.)+[a-z0-9_]([a-z0-9_-]*[a-z0-9_])?$`)

// hostnameProfile converte domínios internacionais para punycode. Sublinhado é aceito porque
// existem auditorias antigas gravadas com ele.
var hostnameProfile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.StrictDomainName(false),
)

// NormalizeDomain limpa o domínio informado pelo usuário antes de qualquer chamada externa
// ou derivação de slug: minúsculas, sem protocolo, sem "www.", sem caminho, query ou porta.
// Domínios internacionais são gravados em punycode.
//
//	"https://www.Example.com/path" -> "example.com"
//	"bücher.de"                    -> "xn--bcher-kva.de"
func NormalizeDomain(raw string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(raw))

	if i := strings.Index(d, "://"); i >= 0 {
		d = d[i+3:]
	}

	// Trunca no primeiro separador de caminho, query ou fragmento
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}

	if i := strings.LastIndex(d, "@"); i >= 0 {
		d = d[i+1:]
	}

	if i := strings.Index(d, ":"); i >= 0 {
		d = d[:i]
	}

	d = strings.TrimPrefix(d, "www.")
	d = strings.TrimSuffix(d, ".")

	if d == "" {
		return "", ErrInvalidDomain
	}

	ascii, err := hostnameProfile.ToASCII(d)
	if err != nil {
		return "", ErrInvalidDomain
	}
	d = ascii

	if len(d) > 253 || !hostnameRegexp.MatchString(d) {
		return "", ErrInvalidDomain
	}

	return d, nil
}

// Slugify deriva a chave de URL de um domínio: cada caractere fora de [a-z0-9] vira "-".
// O resultado é sempre o mesmo para o mesmo domínio.
func Slugify(domain string) string {
	lower := strings.ToLower(domain)

	var sb strings.Builder
	sb.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			continue
		}
		sb.WriteByte('-')
	}

	return sb.String()
}
