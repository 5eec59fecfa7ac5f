package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/yourcompany/distribucion-api/pkg/jwt"
)

const (
	testSecret    = "secret-de-pruebas"
	testUserID    = "u-1"
	testCompanyID = "c-1"
	testIssuer    = "distribucion-api-test"
)

func TestJWT_GenerateAndParse_ConRoleYName(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, "Manager", "Laura Gómez", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testCompanyID, claims.CompanyID)
	assert.Equal(t, "Manager", claims.Role)
	assert.Equal(t, "Laura Gómez", claims.Name)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, "Admin", "Admin", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testCompanyID, "Admin", "Admin", testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testCompanyID, "Admin", "Admin", testIssuer, 60)
	assert.Error(t, err)
}
