package contexttoken

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el identificador de contexto de navegador.
// El token va en una cookie firmada: evita que un navegador fabrique el contexto de otro.
type Claims struct {
	jwt.RegisteredClaims
	ContextoID string `json:"contexto_id"`
}

// Generar firma un token HS256 con el contexto de navegador indicado.
func Generar(secret, contextoID, issuer string, expHours int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("contexttoken: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   contextoID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expHours) * time.Hour)),
		},
		ContextoID: contextoID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parsear valida el token y devuelve el identificador de contexto.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parsear(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("contexttoken: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ContextoID == "" {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.ContextoID, nil
}
