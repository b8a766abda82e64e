package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/agendafacil/agenda-api/internal/guard"
	"github.com/agendafacil/agenda-api/internal/httperr"
)

// writeUserGuardErr traduz o resultado do guard de usuário em resposta HTTP.
func writeUserGuardErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, guard.ErrOwnerNotFound):
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado")
	case errors.Is(err, guard.ErrOwnerInvalid):
		httperr.Forbidden(c, "user_not_validated", "Usuário não validado")
	default:
		httperr.Internal(c, "internal_error", "Erro ao validar usuário")
	}
}

func writeProfessionalGuardErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, guard.ErrOwnerNotFound):
		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado")
	case errors.Is(err, guard.ErrOwnerInvalid):
		httperr.Forbidden(c, "professional_not_validated", "Profissional não validado")
	default:
		httperr.Internal(c, "internal_error", "Erro ao validar profissional")
	}
}
