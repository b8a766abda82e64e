package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid faz uma validação sintática do e-mail. A resolução de MX do
// domínio fica fora do caminho de cadastro para não amarrar a API ao DNS.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	return strings.Contains(email[at+1:], ".")
}
