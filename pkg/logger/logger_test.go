package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "info", Output: &buf})

	log.Named("ledger").Info().Int64("product_id", 7).Msg("movimiento registrado")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "ledger", entry["component"])
	assert.EqualValues(t, 7, entry["product_id"])
	assert.Equal(t, "movimiento registrado", entry["message"])
}

func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("descartado")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestParseLevel_InvalidoUsaInfo(t *testing.T) {
	assert.Equal(t, "info", parseLevel("no-existe").String())
	assert.Equal(t, "info", parseLevel("").String())
	assert.Equal(t, "debug", parseLevel("debug").String())
}
