package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/slotgrid/internal/models"
	"github.com/akyairhashvil/slotgrid/internal/schedule"
)

func sampleRows(now time.Time) []Row {
	sc := schedule.Config{
		Start:    models.TimeOfDay{Hour: 6},
		End:      models.TimeOfDay{Hour: 6, Minute: 30},
		Interval: 15 * time.Minute,
	}
	return BuildRows(schedule.Descriptors(sc.Slots(now)), now)
}

func TestBuildRows(t *testing.T) {
	now := time.Date(2026, 10, 18, 6, 10, 0, 0, time.UTC)
	rows := sampleRows(now)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if !rows[0].Expired() {
		t.Fatalf("expected 06:00 to be expired at 06:10")
	}
	if rows[1].Remaining != 300 || rows[1].Status() != "00:05:00" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
	if rows[2].Position != 3 || rows[2].Target != "/page3" {
		t.Fatalf("unexpected third row: %+v", rows[2])
	}
}

func TestWriteSnapshot(t *testing.T) {
	now := time.Date(2026, 10, 18, 6, 10, 0, 0, time.UTC)
	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, sampleRows(now), now); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"SLOT", "06:00", "Time's up!", "/page2", "00:20:00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("snapshot missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "/page1") {
		t.Fatalf("expired slot should not show its link:\n%s", out)
	}
}

func TestWritePDF(t *testing.T) {
	now := time.Date(2026, 10, 18, 6, 10, 0, 0, time.UTC)
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleRows(now), now); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected PDF header")
	}
}
