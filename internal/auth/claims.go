// Package auth lê o payload do JWT emitido pelo backend. A leitura é
// propositalmente sem verificação de assinatura: o papel extraído serve
// só para escolher endpoint e texto de tela, nunca como autorização; o
// backend continua sendo a única autoridade.
package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// PrefixoBearer é o esquema canônico do cabeçalho Authorization.
const PrefixoBearer = "Bearer "

// NormalizarAutorizacao devolve o token com exatamente um prefixo
// "Bearer ", aceitando entrada com ou sem prefixo (qualquer caixa).
func NormalizarAutorizacao(token string) string {
	return PrefixoBearer + SemPrefixo(token)
}

// SemPrefixo remove um eventual prefixo de esquema do token.
func SemPrefixo(token string) string {
	token = strings.TrimSpace(token)
	if len(token) >= len(PrefixoBearer) && strings.EqualFold(token[:len(PrefixoBearer)], PrefixoBearer) {
		token = strings.TrimSpace(token[len(PrefixoBearer):])
	}
	return token
}

// PapelDoToken extrai o papel do payload do JWT sem validar assinatura
// nem expiração. Qualquer problema de decodificação devolve vazio em vez
// de erro: quem chama cai para a etiqueta de papel gravada na sessão.
func PapelDoToken(token string) string {
	token = SemPrefixo(token)
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}

	if papel, ok := claims["role"].(string); ok && papel != "" {
		return papel
	}
	for _, chave := range []string{"roles", "authorities"} {
		if lista, ok := claims[chave].([]any); ok && len(lista) > 0 {
			if papel, ok := lista[0].(string); ok && papel != "" {
				return papel
			}
		}
	}
	return ""
}
