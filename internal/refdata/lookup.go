package refdata

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/tntx/fleetport/internal/domain/model"
)

// vendorRecord mirrors one entry of the vendor reference file.
type vendorRecord struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	City  string `json:"city"`
	State string `json:"state"`
}

// customerRecord mirrors one entry of the customer reference file. The upper
// case keys come from the upstream extract that produces the file.
type customerRecord struct {
	Name      string `json:"NAME"`
	Address1  string `json:"ADDRESS1"`
	City      string `json:"CITY"`
	State     string `json:"STATE"`
	Zipcode   string `json:"ZIPCODE"`
	MainPhone string `json:"MAINPHONE"`
}

// Lookup provides immutable vendor and customer reference data loaded once at
// startup. Safe for concurrent use; lookups for unknown keys return documented
// defaults instead of failing.
type Lookup struct {
	vendors   map[string]vendorRecord
	customers map[string]customerRecord
}

// Load reads both reference files. A missing or unparsable file is logged and
// leaves the corresponding map empty; the process keeps starting.
func Load(vendorPath, customerPath string, logger *slog.Logger) *Lookup {
	l := &Lookup{
		vendors:   map[string]vendorRecord{},
		customers: map[string]customerRecord{},
	}

	if err := readJSONMap(vendorPath, &l.vendors); err != nil {
		logger.Error("vendor reference data unavailable", slog.String("path", vendorPath), slog.String("error", err.Error()))
	} else {
		logger.Info("vendor reference data loaded", slog.Int("entries", len(l.vendors)))
	}

	if err := readJSONMap(customerPath, &l.customers); err != nil {
		logger.Error("customer reference data unavailable", slog.String("path", customerPath), slog.String("error", err.Error()))
	} else {
		logger.Info("customer reference data loaded", slog.Int("entries", len(l.customers)))
	}

	return l
}

func readJSONMap(path string, into any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, into)
}

// Vendor resolves a vendor code, falling back to the Unknown Vendor default.
func (l *Lookup) Vendor(code string) model.Vendor {
	if rec, ok := l.vendors[code]; ok {
		return model.Vendor{Code: code, Name: rec.Name, Phone: rec.Phone, City: rec.City, State: rec.State}
	}
	return model.Vendor{Code: code, Name: "Unknown Vendor", Phone: "N/A", City: "N/A", State: "N/A"}
}

// Customer resolves a customer key, falling back to the Unknown default.
func (l *Lookup) Customer(key string) model.Customer {
	if rec, ok := l.customers[key]; ok {
		return model.Customer{
			Key:       key,
			Name:      rec.Name,
			Address1:  rec.Address1,
			City:      rec.City,
			State:     rec.State,
			Zipcode:   rec.Zipcode,
			MainPhone: rec.MainPhone,
		}
	}
	return model.Customer{
		Key:       key,
		Name:      "Unknown",
		Address1:  "N/A",
		City:      "N/A",
		State:     "N/A",
		Zipcode:   "N/A",
		MainPhone: "N/A",
	}
}
