package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// El hash dummy debe ser un hash bcrypt válido de costo 12: un hash
// malformado haría que CompareHashAndPassword fallara al parsear (en
// nanosegundos) en vez de ejecutar la derivación completa, y el camino de
// email desconocido quedaría medible frente al de password incorrecto.
func TestDummyPasswordHash_EsBcryptValidoCosto12(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(dummyPasswordHash))
	require.NoError(t, err, "el hash dummy debe parsear como bcrypt válido")
	assert.Equal(t, BcryptCost, cost)
}

// La comparación contra el hash dummy debe recorrer la derivación completa
// y terminar en mismatch, no en un error de formato del hash.
func TestDummyPasswordHash_ComparacionCompleta(t *testing.T) {
	err := bcrypt.CompareHashAndPassword([]byte(dummyPasswordHash), []byte("cualquier-password"))
	assert.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)
}
