package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/cueros-api/pkg/jwt"
)

func TestGenerateYParse(t *testing.T) {
	in := pkgjwt.Identity{UserID: "u-1", Username: "ana", Role: "admin"}
	tok, err := pkgjwt.Generate("secreto", in, "cueros-test", 5)
	require.NoError(t, err)

	out, err := pkgjwt.Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("secreto", pkgjwt.Identity{UserID: "u-1"}, "x", 5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate("secreto", pkgjwt.Identity{UserID: "u-1"}, "x", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("secreto", tok)
	assert.Error(t, err, "un token vencido no debe aceptarse")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", pkgjwt.Identity{}, "x", 5)
	assert.Error(t, err)
}
