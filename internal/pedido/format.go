package pedido

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	NotSet             = "Não definido"
	GlassTypeSeparator = ", "
)

// FormatValue renders a money amount for display. A missing value is shown
// as NotSet, never as zero.
func FormatValue(v decimal.NullDecimal) string {
	if !v.Valid {
		return NotSet
	}
	return "€" + v.Decimal.StringFixed(2)
}

// StatusDisplay is the badge configuration of a status.
type StatusDisplay struct {
	Status Status `json:"status"`
	Label  string `json:"label"`
	Tone   string `json:"tone"`
	Known  bool   `json:"known"`
}

var statusDisplay = map[Status]StatusDisplay{
	StatusPending:       {Label: "Pendente", Tone: "yellow"},
	StatusInProgress:    {Label: "Em Progresso", Tone: "blue"},
	StatusResponded:     {Label: "Respondido", Tone: "amber"},
	StatusAwaitingReply: {Label: "Aguarda Resposta", Tone: "amber"},
	StatusFound:         {Label: "Encontrado", Tone: "green"},
	StatusCompleted:     {Label: "Concluído", Tone: "emerald"},
	StatusCancelled:     {Label: "Cancelado", Tone: "red"},
}

// StatusInfo returns the display configuration. Unknown statuses keep their
// raw value and get a neutral badge instead of the pendente one.
func StatusInfo(s Status) StatusDisplay {
	d, ok := statusDisplay[s]
	if !ok {
		return StatusDisplay{Status: s, Label: "Desconhecido", Tone: "gray"}
	}
	d.Status = s
	d.Known = true
	return d
}

var glassTypes = []string{
	"1 - Pára-Brisas",
	"2 - Custódia Frente Direita",
	"3 - Triângulo Prt Dir. Frente",
	"4 - Lateral Direito Passageiro",
	"5 - Lateral Direito Traseiro",
	"6 - Triângulo Prt Dir. Traseira",
	"7 - Custódia Traseira Direita",
	"8 - Óculo Traseiro Direito",
	"9 - Óculo Traseiro",
	"10 - Óculo Traseiro Esquerdo",
	"11 - Custódia Traseira Esquerda",
	"12 - Triângulo Prt Esq. Traseira",
	"13 - Lateral Esquerdo Traseiro",
	"14 - Lateral Esquerdo Condutor",
	"15 - Triângulo Prt Esq. Frente",
	"16 - Custódia Frente Esquerda",
	"17 - Tecto",
}

// GlassTypes is the catalogue offered on the new-order form.
func GlassTypes() []string { return append([]string(nil), glassTypes...) }

// FormatPlate normalises a Portuguese plate to the AA-00-BB layout.
// Anything beyond six characters is dropped.
func FormatPlate(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	c := b.String()
	switch {
	case len(c) <= 2:
		return c
	case len(c) <= 4:
		return c[:2] + "-" + c[2:]
	case len(c) > 6:
		c = c[:6]
	}
	return c[:2] + "-" + c[2:4] + "-" + c[4:]
}
