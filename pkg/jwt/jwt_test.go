package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Backoffice-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

var testSubject = pkgjwt.Subject{
	UserID:    "00000000-0000-0000-0000-000000000001",
	CompanyID: "00000000-0000-0000-0000-000000000002",
	ProfileID: "00000000-0000-0000-0000-000000000003",
	Role:      "supervisor",
}

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, "backoffice-test", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSubject.UserID, claims.UserID)
	assert.Equal(t, testSubject.CompanyID, claims.CompanyID)
	assert.Equal(t, testSubject.ProfileID, claims.ProfileID)
	assert.Equal(t, "supervisor", claims.Role)
	assert.Equal(t, "backoffice-test", claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, "backoffice-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSubject, "backoffice-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestParse_SinCompany(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, pkgjwt.Subject{UserID: "u"}, "backoffice-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "un token sin tenant no sirve para rutas protegidas")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testSubject, "x", 60)
	assert.Error(t, err)
}
