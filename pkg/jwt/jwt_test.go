package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proreps/crm-backend/pkg/jwt"
)

const (
	secret = "segredo-de-teste"
	issuer = "crm-backend-test"
)

func TestGenerateParse_Roundtrip(t *testing.T) {
	tok, err := jwt.Generate(secret, 7, "representante", issuer, 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, "representante", role)
}

func TestGenerate_SecretVazioFalha(t *testing.T) {
	_, err := jwt.Generate("", 1, "admin", issuer, 24)
	assert.Error(t, err)
}

func TestParse_SecretErradoFalha(t *testing.T) {
	tok, err := jwt.Generate(secret, 1, "admin", issuer, 24)
	require.NoError(t, err)

	_, _, err = jwt.Parse("outro-segredo", tok)
	assert.Error(t, err, "assinatura feita com outro secret deve ser rejeitada")
}

func TestParse_TokenExpiradoFalha(t *testing.T) {
	tok, err := jwt.Generate(secret, 1, "admin", issuer, -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(secret, tok)
	assert.Error(t, err, "token expirado deve ser rejeitado")
}

func TestParse_LixoFalha(t *testing.T) {
	_, _, err := jwt.Parse(secret, "nao.e.um.jwt")
	assert.Error(t, err)
}

func TestGenerate_TokensDistintos(t *testing.T) {
	// O jti é um UUID novo por token, então dois tokens do mesmo usuário
	// nunca são byte-iguais.
	a, err := jwt.Generate(secret, 1, "admin", issuer, 24)
	require.NoError(t, err)
	b, err := jwt.Generate(secret, 1, "admin", issuer, 24)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
