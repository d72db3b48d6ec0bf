package inventory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donpepe/inventario-api/internal/domain"
	"github.com/donpepe/inventario-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Regla de transición de stock
// ──────────────────────────────────────────────────────────────────────────────

func TestNextStock_EntradaSumaAlStock(t *testing.T) {
	after, err := inventory.NextStock("entrada", 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, after)
}

func TestNextStock_SalidaRestaDelStock(t *testing.T) {
	after, err := inventory.NextStock("salida", 10, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, after)
}

// La salida puede dejar el stock exactamente en cero.
func TestNextStock_SalidaHastaCero(t *testing.T) {
	after, err := inventory.NextStock("salida", 5, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, after)
}

// Una salida que dejaría el stock negativo se rechaza con el stock actual
// dentro del error, para que el mensaje al cliente lo incluya.
func TestNextStock_SalidaInsuficiente(t *testing.T) {
	_, err := inventory.NextStock("salida", 3, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 3, insufficient.Current, "el error debe llevar el stock vigente")
}

// El ajuste fija el stock en la cantidad, sin importar el valor anterior.
func TestNextStock_AjusteEsAbsoluto(t *testing.T) {
	after, err := inventory.NextStock("ajuste", 42, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, after)

	// También puede subir el stock.
	after, err = inventory.NextStock("ajuste", 1, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, after)
}

func TestNextStock_CantidadInvalida(t *testing.T) {
	for _, qty := range []int{0, -1, -50} {
		_, err := inventory.NextStock("entrada", 10, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
}

func TestNextStock_TipoDesconocido(t *testing.T) {
	for _, kind := range []string{"", "transferencia", "ENTRADA", "Salida"} {
		_, err := inventory.NextStock(kind, 10, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo %q debe rechazarse", kind)
	}
}
