package document

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"
	"time"

	"voice_billing/internal/domain/entities"
)

var usageCSVHeader = []string{"id", "from_number", "to_number", "status", "duration (in secs)", "received_at"}

// UsageCSV lists the calls behind an invoice, oldest first.
func (r *Renderer) UsageCSV(_ entities.Invoice, records []entities.UsageRecord) ([]byte, error) {
	sorted := make([]entities.UsageRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ReceivedAt.Before(sorted[j].ReceivedAt) })

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(usageCSVHeader); err != nil {
		return nil, err
	}
	for _, rec := range sorted {
		row := []string{
			rec.ID,
			rec.FromNumber,
			rec.ToNumber,
			rec.Status,
			strconv.FormatInt(rec.DurationSeconds, 10),
			rec.ReceivedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UsageCSVFilename names the attachment after the entity and period.
func UsageCSVFilename(inv entities.Invoice) string {
	return inv.Target().EntityID() + "_call_logs_" +
		inv.BillingPeriod.Start.Format("2006-01-02") + "_to_" + inv.BillingPeriod.End.Format("2006-01-02") + ".csv"
}
