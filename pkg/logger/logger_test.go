package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Logger del servicio
// ──────────────────────────────────────────────────────────────────────────────

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_EstampaServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(Config{Level: "info", Service: "inventario-api"}, &buf)

	l.WithComponent("postgres").Info().Msg("pool listo")

	entry := logLine(t, &buf)
	assert.Equal(t, "inventario-api", entry["servicio"])
	assert.Equal(t, "postgres", entry["componente"])
	assert.Equal(t, "pool listo", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestLogger_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(Config{Level: "warn", Service: "inventario-api"}, &buf)

	l.Debug().Msg("no debe salir")
	l.Info().Msg("tampoco")
	assert.Empty(t, buf.Bytes())

	l.Warn().Msg("esto sí")
	entry := logLine(t, &buf)
	assert.Equal(t, "warn", entry["level"])
}

// Un nivel desconocido no debe tumbar el arranque: se cae a info.
func TestLogger_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(Config{Level: "verboso", Service: "inventario-api"}, &buf)

	l.Debug().Msg("filtrado")
	assert.Empty(t, buf.Bytes())

	l.Info().Msg("visible")
	entry := logLine(t, &buf)
	assert.Equal(t, "visible", entry["message"])
}

func TestLogger_SinServicioNoAgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(Config{Level: "info"}, &buf)

	l.Info().Msg("hola")
	entry := logLine(t, &buf)
	assert.NotContains(t, entry, "servicio")
}
