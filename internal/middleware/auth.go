package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/agendafacil/agenda-api/internal/config"
)

// OwnerToken valida o bearer token emitido no login e exige que o sujeito do
// token seja o dono informado na rota. O modelo de acesso continua sendo o id
// do dono no path; o middleware só entra quando AUTH_REQUIRED está ligado.
func OwnerToken(cfg *config.Config, ownerParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.AuthRequired {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "missing_authorization_header", "message": "Token de acesso ausente"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "invalid_authorization_header", "message": "Cabeçalho de autorização inválido"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "invalid_token", "message": "Token inválido"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "invalid_token_claims", "message": "Token inválido"})
			return
		}

		sub, _ := claims["sub"].(string)
		if owner := c.Param(ownerParam); sub == "" || sub != owner {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "token_owner_mismatch", "message": "Token não corresponde ao dono da rota"})
			return
		}

		c.Next()
	}
}
