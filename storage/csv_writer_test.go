package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"boataround-scraper/models"
)

func TestCSVWriterOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "boats.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}

	boats := []*models.Boat{
		{
			Name: "Bavaria 46", Marina: "Kaštela", Charter: "Sailing Co", Rating: 9.2,
			NoRefundPrice: models.AmountOf(1250),
			TotalPrice:    models.AmountOf(1600),
			Year:          "2015", Engine: models.NA, People: models.NA, Cabins: "4",
			Toilets: models.NA, Draught: models.NA, Beam: models.NA, Length: "14 m",
			FuelTank: models.NA, WaterTank: models.NA,
			URL: "https://www.boataround.com/boat/bavaria-46",
		},
	}
	if err := w.Write(boats); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1", len(rows))
	}

	header, row := rows[0], rows[1]
	if len(header) != len(models.Columns) {
		t.Fatalf("header has %d columns, want %d", len(header), len(models.Columns))
	}
	for i, col := range models.Columns {
		if header[i] != col {
			t.Errorf("header[%d] = %q; want %q", i, header[i], col)
		}
	}

	byName := make(map[string]string, len(header))
	for i, col := range header {
		byName[col] = row[i]
	}
	if byName["norefund_price"] != "1250" {
		t.Errorf("norefund_price = %q; want 1250", byName["norefund_price"])
	}
	if byName["partrefund_price"] != "NA" {
		t.Errorf("partrefund_price = %q; want literal NA", byName["partrefund_price"])
	}
	if byName["engine"] != "NA" {
		t.Errorf("engine = %q; want literal NA", byName["engine"])
	}
	if byName["rating"] != "9.2" {
		t.Errorf("rating = %q; want 9.2", byName["rating"])
	}
}
