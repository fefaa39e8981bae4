package analytics

import (
	"strconv"
	"strings"
	"time"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/analytics"
)

var csvHeader = []string{"Nome", "Cognome", "Email", "Esperienze Completate", "Ore Totali", "Ultima Partecipazione"}

// RenderEmployeesCSV renders the stats rows as a CSV download. Every field
// is quoted, dates use the Italian dd/MM/yyyy format and employees without
// participations get the literal "Mai".
func RenderEmployeesCSV(stats []analytics.EmployeeStats, now time.Time) (payload []byte, filename string) {
	var b strings.Builder

	writeCSVRow(&b, csvHeader)
	for _, s := range stats {
		writeCSVRow(&b, []string{
			derefOrEmpty(s.FirstName),
			derefOrEmpty(s.LastName),
			s.Email,
			strconv.Itoa(s.TotalExperiences),
			strconv.FormatFloat(s.TotalHours, 'f', -1, 64),
			formatLastParticipation(s.LastParticipation),
		})
	}

	return []byte(b.String()), "dipendenti_" + now.Format("2006-01-02") + ".csv"
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func formatLastParticipation(t *time.Time) string {
	if t == nil {
		return "Mai"
	}
	return t.Format("02/01/2006")
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
