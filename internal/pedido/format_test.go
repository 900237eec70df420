package pedido

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	assert.Equal(t, NotSet, FormatValue(decimal.NullDecimal{}))
	assert.Equal(t, "€150.00", FormatValue(money("150")))
	assert.Equal(t, "€0.00", FormatValue(money("0")))
	assert.Equal(t, "€99.90", FormatValue(money("99.9")))
}

func TestStatusInfo(t *testing.T) {
	for _, s := range Statuses() {
		d := StatusInfo(s)
		assert.True(t, d.Known, s)
		assert.Equal(t, s, d.Status)
		assert.NotEmpty(t, d.Label)
	}

	d := StatusInfo("arquivado")
	assert.False(t, d.Known)
	assert.Equal(t, "Desconhecido", d.Label)
	assert.Equal(t, Status("arquivado"), d.Status)
	assert.NotEqual(t, StatusInfo(StatusPending).Tone, d.Tone)
}

func TestFormatPlate(t *testing.T) {
	cases := map[string]string{
		"ab12cd":     "AB-12-CD",
		"AB-12-CD":   "AB-12-CD",
		" 12 ab 34 ": "12-AB-34",
		"a":          "A",
		"ab1":        "AB-1",
		"ab12c":      "AB-12-C",
		"ab12cd99":   "AB-12-CD",
		"":           "",
		"--//":       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatPlate(in), in)
	}
}

func TestGlassTypesIsACopy(t *testing.T) {
	g := GlassTypes()
	assert.Len(t, g, 17)
	g[0] = "x"
	assert.Equal(t, "1 - Pára-Brisas", GlassTypes()[0])
}
