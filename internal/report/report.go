// Package report renders a point-in-time view of the slot schedule for
// consumers outside the terminal UI.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/akyairhashvil/slotgrid/internal/countdown"
	"github.com/akyairhashvil/slotgrid/internal/models"
	"github.com/go-pdf/fpdf"
)

// Row is one slot as seen at a given instant.
type Row struct {
	Position  int
	Slot      time.Time
	Title     string
	Target    string
	Remaining int
}

func (r Row) Expired() bool {
	return r.Remaining == 0
}

// Status renders the countdown column.
func (r Row) Status() string {
	if r.Expired() {
		return countdown.ExpiredLabel
	}
	return countdown.FormatRemaining(r.Remaining)
}

// BuildRows samples every descriptor against now.
func BuildRows(descs []models.CardDescriptor, now time.Time) []Row {
	rows := make([]Row, 0, len(descs))
	for i, d := range descs {
		rows = append(rows, Row{
			Position:  i + 1,
			Slot:      d.End,
			Title:     d.Title,
			Target:    d.Target,
			Remaining: countdown.Remaining(d.End, now),
		})
	}
	return rows
}

// WriteSnapshot writes a plain-text table of rows.
func WriteSnapshot(w io.Writer, rows []Row, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Countdown snapshot at %s\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(tw, "SLOT\tCARD\tLINK\tREMAINING")
	for _, r := range rows {
		link := r.Target
		if r.Expired() {
			link = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Slot.Format("15:04"), r.Title, link, r.Status())
	}
	return tw.Flush()
}

// WritePDF writes the schedule as a single-table PDF.
func WritePDF(w io.Writer, rows []Row, now time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Countdown schedule", true)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Countdown schedule: %s", now.Format("2006-01-02")))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated at %s", now.Format("15:04:05")))
	pdf.Ln(10)

	widths := []float64{20, 30, 40, 40}
	headers := []string{"Slot", "Card", "Link", "Remaining"}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 11)
	running := 0
	for _, r := range rows {
		if r.Expired() {
			pdf.SetTextColor(150, 150, 150)
		} else {
			running++
			pdf.SetTextColor(0, 0, 0)
		}
		link := r.Target
		if r.Expired() {
			link = "-"
		}
		cells := []string{r.Slot.Format("15:04"), r.Title, link, r.Status()}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Running: %d  Expired: %d", running, len(rows)-running))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
