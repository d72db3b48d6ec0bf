package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donpepe/inventario-api/internal/application/inventory"
	"github.com/donpepe/inventario-api/internal/domain"
	"github.com/donpepe/inventario-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	productID = "11111111-1111-1111-1111-111111111111"
	userID    = "22222222-2222-2222-2222-222222222222"
)

func newUseCase(stock int) (*inventory.RegisterMovementUseCase, *fakeStore) {
	store := newFakeStore()
	store.addProduct(entity.Product{
		ID:           productID,
		Name:         "Torta de chocolate",
		Category:     "tortas",
		CurrentStock: stock,
		MinimumStock: 5,
		Status:       entity.ProductStatusActivo,
	})
	return inventory.NewRegisterMovementUseCase(&fakeTxRunner{store: store}), store
}

func movement(kind string, qty int) inventory.MovementInput {
	return inventory.MovementInput{
		ProductID: productID,
		UserID:    userID,
		Kind:      kind,
		Quantity:  qty,
		Reason:    "test",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimientos: reglas de transición y snapshots
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaSumaStock(t *testing.T) {
	uc, store := newUseCase(10)

	resp, err := uc.RegisterMovement(context.Background(), movement("entrada", 5))
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 15, resp.NewStock)
	assert.Equal(t, 15, store.products[productID].CurrentStock)

	require.Len(t, store.movements, 1)
	m := store.movements[0]
	assert.Equal(t, 10, m.StockBefore, "stock_anterior es el valor previo al movimiento")
	assert.Equal(t, 15, m.StockAfter)
	assert.Equal(t, userID, m.UserID)
}

func TestRegisterMovement_SalidaRestaStock(t *testing.T) {
	uc, store := newUseCase(10)

	resp, err := uc.RegisterMovement(context.Background(), movement("salida", 4))
	require.NoError(t, err)

	assert.Equal(t, 6, resp.NewStock)
	assert.Equal(t, 6, store.products[productID].CurrentStock)
}

func TestRegisterMovement_AjusteFijaStock(t *testing.T) {
	uc, store := newUseCase(42)

	resp, err := uc.RegisterMovement(context.Background(), movement("ajuste", 7))
	require.NoError(t, err)

	assert.Equal(t, 7, resp.NewStock, "el ajuste es absoluto, no relativo")
	require.Len(t, store.movements, 1)
	assert.Equal(t, 42, store.movements[0].StockBefore)
	assert.Equal(t, 7, store.movements[0].StockAfter)
}

// Una salida rechazada no deja rastro: ni fila de movimiento ni cambio de stock.
func TestRegisterMovement_SalidaInsuficienteNoPersisteNada(t *testing.T) {
	uc, store := newUseCase(3)

	_, err := uc.RegisterMovement(context.Background(), movement("salida", 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, store.products[productID].CurrentStock, "el stock no debe cambiar")
	assert.Empty(t, store.movements, "el ledger no debe registrar la salida rechazada")
}

// La salida que deja el stock exactamente en cero es válida.
func TestRegisterMovement_SalidaHastaCero(t *testing.T) {
	uc, store := newUseCase(5)

	resp, err := uc.RegisterMovement(context.Background(), movement("salida", 5))
	require.NoError(t, err)

	assert.Equal(t, 0, resp.NewStock)
	assert.Equal(t, 0, store.products[productID].CurrentStock)
}

func TestRegisterMovement_ProductoInexistente(t *testing.T) {
	uc, store := newUseCase(10)

	in := movement("entrada", 1)
	in.ProductID = "99999999-9999-9999-9999-999999999999"
	_, err := uc.RegisterMovement(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.movements)
}

func TestRegisterMovement_ValidacionDeEntrada(t *testing.T) {
	uc, _ := newUseCase(10)
	ctx := context.Background()

	cases := []struct {
		name string
		in   inventory.MovementInput
	}{
		{"sin producto", inventory.MovementInput{UserID: userID, Kind: "entrada", Quantity: 1}},
		{"sin usuario", inventory.MovementInput{ProductID: productID, Kind: "entrada", Quantity: 1}},
		{"tipo desconocido", movement("transferencia", 1)},
		{"cantidad cero", movement("entrada", 0)},
		{"cantidad negativa", movement("salida", -5)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterMovement(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Los IDs de movimiento crecen estrictamente en orden de commit.
func TestRegisterMovement_IDsCrecientes(t *testing.T) {
	uc, store := newUseCase(100)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := uc.RegisterMovement(ctx, movement("salida", 1))
		require.NoError(t, err)
	}
	require.Len(t, store.movements, 5)
	for i := 1; i < len(store.movements); i++ {
		assert.Greater(t, store.movements[i].ID, store.movements[i-1].ID)
	}
}

// Invariante del ledger: el stock actual siempre coincide con el stock_nuevo
// del último movimiento, y los snapshots encadenan sin huecos.
func TestRegisterMovement_LedgerEncadenado(t *testing.T) {
	uc, store := newUseCase(10)
	ctx := context.Background()

	steps := []struct {
		kind string
		qty  int
	}{
		{"entrada", 20},
		{"salida", 7},
		{"ajuste", 50},
		{"salida", 50},
		{"entrada", 3},
	}
	for _, s := range steps {
		_, err := uc.RegisterMovement(ctx, movement(s.kind, s.qty))
		require.NoError(t, err)
	}

	require.Len(t, store.movements, len(steps))
	prev := 10
	for i, m := range store.movements {
		assert.Equal(t, prev, m.StockBefore, "movimiento %d: stock_anterior debe encadenar", i)
		prev = m.StockAfter
	}
	assert.Equal(t, prev, store.products[productID].CurrentStock,
		"el stock actual debe ser el stock_nuevo del último movimiento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: dos salidas simultáneas no pueden gastar el mismo stock
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_SalidasConcurrentesSerializadas(t *testing.T) {
	uc, store := newUseCase(5)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.RegisterMovement(ctx, movement("salida", 5))
		}(i)
	}
	wg.Wait()

	// Exactamente una salida gana; la otra ve stock 0 y es rechazada.
	var ok, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, domain.ErrInsufficientStock):
			insufficient++
		}
	}
	assert.Equal(t, 1, ok, "solo una salida debe aceptarse")
	assert.Equal(t, 1, insufficient, "la otra debe rechazarse por stock insuficiente")

	assert.Equal(t, 0, store.products[productID].CurrentStock)
	require.Len(t, store.movements, 1, "el ledger solo registra la salida ganadora")
	assert.Equal(t, 5, store.movements[0].StockBefore)
	assert.Equal(t, 0, store.movements[0].StockAfter)
}
