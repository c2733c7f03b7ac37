package refdata

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadResolvesKnownEntries(t *testing.T) {
	dir := t.TempDir()
	vendors := writeFile(t, dir, "vendors.json", `{
        "V100": {"name": "Southside Truck Repair", "phone": "555-0100", "city": "Tulsa", "state": "OK"}
    }`)
	customers := writeFile(t, dir, "customers.json", `{
        "MELTON": {"NAME": "Melton Truck Lines", "ADDRESS1": "808 N 161st E Ave", "CITY": "Tulsa", "STATE": "OK", "ZIPCODE": "74116", "MAINPHONE": "555-0101"}
    }`)

	lookup := Load(vendors, customers, testLogger())

	vendor := lookup.Vendor("V100")
	if vendor.Name != "Southside Truck Repair" || vendor.City != "Tulsa" {
		t.Errorf("unexpected vendor: %+v", vendor)
	}
	if vendor.Code != "V100" {
		t.Errorf("expected vendor code preserved, got %q", vendor.Code)
	}

	customer := lookup.Customer("MELTON")
	if customer.Name != "Melton Truck Lines" || customer.Zipcode != "74116" {
		t.Errorf("unexpected customer: %+v", customer)
	}
}

func TestLookupDefaultsForUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	vendors := writeFile(t, dir, "vendors.json", `{}`)
	customers := writeFile(t, dir, "customers.json", `{}`)

	lookup := Load(vendors, customers, testLogger())

	vendor := lookup.Vendor("NOPE")
	if vendor.Name != "Unknown Vendor" || vendor.Phone != "N/A" || vendor.City != "N/A" || vendor.State != "N/A" {
		t.Errorf("unexpected vendor default: %+v", vendor)
	}

	customer := lookup.Customer("NOPE")
	if customer.Name != "Unknown" || customer.Address1 != "N/A" || customer.MainPhone != "N/A" {
		t.Errorf("unexpected customer default: %+v", customer)
	}
	if customer.Key != "NOPE" {
		t.Errorf("expected key preserved, got %q", customer.Key)
	}
}

func TestLoadToleratesMissingAndMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.json", `{not json`)

	lookup := Load(filepath.Join(dir, "missing.json"), broken, testLogger())

	if got := lookup.Vendor("V1").Name; got != "Unknown Vendor" {
		t.Errorf("expected default vendor after missing file, got %q", got)
	}
	if got := lookup.Customer("C1").Name; got != "Unknown" {
		t.Errorf("expected default customer after malformed file, got %q", got)
	}
}
