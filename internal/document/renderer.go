// Package document renders a quotation as a printable plain-text byte
// stream: lab header, patient block, line-item table, totals and the
// validity footer. Layout is presentation; the amounts and the validity
// date arithmetic come from the caller and are the part under contract.
package document

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"labquote/internal/config"
	"labquote/internal/models"
)

const (
	// nameBudget is the character budget for a study name in the table.
	nameBudget = 85
	lineWidth  = 96
	priceWidth = 14
)

// Renderer produces quotation documents with a fixed laboratory identity.
type Renderer struct {
	lab config.LabConfig
}

// NewRenderer creates a renderer for the given laboratory identity.
func NewRenderer(lab config.LabConfig) *Renderer {
	return &Renderer{lab: lab}
}

// Input is everything a quotation document needs. GeneratedAt drives both
// the date line and the validity window (GeneratedAt + validity days).
type Input struct {
	PatientName string
	Lines       models.CartLines
	Totals      models.Totals
	TierLabel   string
	GeneratedAt time.Time
}

// ValidUntil returns the expiry date of a document generated at the given
// time: generation date plus the configured validity window.
func (r *Renderer) ValidUntil(generatedAt time.Time) time.Time {
	return generatedAt.AddDate(0, 0, r.lab.ValidityDays)
}

// Render produces the document bytes.
func (r *Renderer) Render(in Input) []byte {
	var buf bytes.Buffer
	rule := strings.Repeat("=", lineWidth)
	thin := strings.Repeat("-", lineWidth)

	buf.WriteString(rule + "\n")
	buf.WriteString(center(r.lab.Name) + "\n")
	buf.WriteString(center(r.lab.Address) + "\n")
	buf.WriteString(center(r.lab.Contact) + "\n")
	buf.WriteString(rule + "\n\n")

	fmt.Fprintf(&buf, "%*s\n\n", lineWidth, "Fecha: "+in.GeneratedAt.Format("02/01/2006 15:04"))

	patient := in.PatientName
	if strings.TrimSpace(patient) == "" {
		patient = "Público"
	}
	fmt.Fprintf(&buf, "  Paciente: %s\n", patient)
	fmt.Fprintf(&buf, "  Tarifa aplicada: %s\n\n", in.TierLabel)

	fmt.Fprintf(&buf, "%-*s%*s\n", lineWidth-priceWidth, "Estudio / Servicio", priceWidth, "Precio")
	buf.WriteString(thin + "\n")
	for _, l := range in.Lines {
		fmt.Fprintf(&buf, "%-*s%*s\n",
			lineWidth-priceWidth, truncate(l.Name, nameBudget),
			priceWidth, FormatMoney(l.UnitPrice))
	}
	buf.WriteString(thin + "\n")

	fmt.Fprintf(&buf, "%*s%*s\n", lineWidth-priceWidth, "Subtotal:", priceWidth, FormatMoney(in.Totals.Subtotal))
	if in.Totals.Discount.IsPositive() {
		fmt.Fprintf(&buf, "%*s%*s\n", lineWidth-priceWidth, "Descuento:", priceWidth, "- "+FormatMoney(in.Totals.Discount))
	}
	fmt.Fprintf(&buf, "%*s%*s\n\n", lineWidth-priceWidth, "TOTAL:", priceWidth, FormatMoney(in.Totals.Total))

	buf.WriteString(center(r.lab.LegalNotice) + "\n")
	validity := fmt.Sprintf("Vigencia: %d dias. Valido hasta: %s",
		r.lab.ValidityDays, r.ValidUntil(in.GeneratedAt).Format("02/01/2006"))
	buf.WriteString(center(validity) + "\n")

	return buf.Bytes()
}

func truncate(s string, budget int) string {
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget])
}

func center(s string) string {
	pad := (lineWidth - len([]rune(s))) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
