package usecase

import (
	"strings"
	"time"

	"github.com/tntx/fleetport/internal/adapter/trimble"
	"github.com/tntx/fleetport/internal/domain/model"
	"github.com/tntx/fleetport/internal/refdata"
)

// allowedCustomerKeys is the fixed set of customer codes the portal is allowed
// to surface. Orders for any other customer are dropped before caching;
// downstream role-based visibility depends on this filter.
var allowedCustomerKeys = []string{
	"MELTON",
	"104376",
	"ROYAL",
	"HODGES",
	"SMT",
	"CCT",
	"BIGM",
	"WATKINS",
	"WILSON",
	"MC EXPRESS",
}

// openedDateLayouts are tried in order when filtering by date. Upstream dates
// arrive as bare local timestamps.
var openedDateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// Normalizer turns raw Trimble orders into the portal's Order shape using the
// injected reference data. It is immutable and safe for concurrent use.
type Normalizer struct {
	lookup   *refdata.Lookup
	linkBase string
	allowed  map[string]struct{}
}

// NewNormalizer constructs a Normalizer around the given reference lookup and
// road-call link base URL.
func NewNormalizer(lookup *refdata.Lookup, linkBase string) *Normalizer {
	allowed := make(map[string]struct{}, len(allowedCustomerKeys))
	for _, key := range allowedCustomerKeys {
		allowed[key] = struct{}{}
	}
	return &Normalizer{lookup: lookup, linkBase: linkBase, allowed: allowed}
}

// NormalizeBatch maps every raw order, joins unit details by cleaned unit
// number, resolves companies through the directory (upper-cased customer key →
// company id), then applies the optional fromDate filter and the mandatory
// customer allow-list. A malformed individual order degrades to defaults and
// never aborts the batch.
func (n *Normalizer) NormalizeBatch(raw []trimble.RawOrder, units []trimble.RawUnit, companies map[string]int64, fromDate string) []model.Order {
	unitsByNumber := make(map[string]trimble.RawUnit, len(units))
	for _, unit := range units {
		if key := cleanString(unit.UnitNumber); key != "" {
			unitsByNumber[key] = unit
		}
	}

	var from time.Time
	if fromDate != "" {
		from = parseOpenedDate(fromDate)
	}

	orders := make([]model.Order, 0, len(raw))
	for _, r := range raw {
		order := n.normalizeOne(r, unitsByNumber, companies)

		if _, ok := n.allowed[order.Customer.Key]; !ok {
			continue
		}
		if !from.IsZero() {
			opened := parseOpenedDate(order.OpenedDate)
			if !opened.IsZero() && opened.Before(from) {
				continue
			}
		}
		orders = append(orders, order)
	}
	return orders
}

func (n *Normalizer) normalizeOne(r trimble.RawOrder, unitsByNumber map[string]trimble.RawUnit, companies map[string]int64) model.Order {
	customerKey := strings.TrimSpace(r.CustomerNumber)

	vendor := n.lookup.Vendor(r.Vendor)
	vendor.Name = cleanString(vendor.Name)
	vendor.City = cleanString(vendor.City)
	vendor.State = cleanString(vendor.State)

	customer := n.lookup.Customer(customerKey)
	customer.Name = cleanString(customer.Name)
	customer.Address1 = cleanString(customer.Address1)
	customer.City = cleanString(customer.City)
	customer.State = cleanString(customer.State)
	customer.Zipcode = cleanString(customer.Zipcode)
	customer.MainPhone = cleanString(customer.MainPhone)

	var details model.UnitDetails
	if unit, ok := unitsByNumber[cleanString(r.UnitNumber)]; ok {
		details = model.UnitDetails{
			UnitNumber:   unit.UnitNumber,
			UnitType:     normalizeUnitType(unit.UnitType),
			Make:         unit.Make,
			Model:        unit.Model,
			ModelYear:    unit.ModelYear,
			SerialNo:     unit.SerialNo,
			NameCustomer: unit.NameCustomer,
		}
	}

	var compCode, compDesc string
	if len(r.Sections) > 0 {
		compCode = r.Sections[0].CompCode
		compDesc = r.Sections[0].CompDesc
	}

	roadCallNum, roadCallID := extractRoadCall(r.Sections)
	if roadCallNum == "" && roadCallID == "" {
		roadCallNum, roadCallID = r.RoadCallNum, r.RoadCallID
	}

	order := model.Order{
		OrderID:              r.OrderID,
		OrderNumber:          r.OrderNum,
		Status:               r.Status,
		OpenedDate:           r.Opened,
		Vendor:               vendor,
		UnitNumber:           model.UnitRef{Value: r.UnitNumber, Details: details},
		Customer:             customer,
		ComponentCode:        compCode,
		ComponentDescription: compDesc,
	}
	if r.Closed != "" {
		closed := r.Closed
		order.ClosedDate = &closed
	}
	if roadCallNum != "" {
		order.RoadCallNum = &roadCallNum
	}
	if roadCallID != "" {
		order.RoadCallID = &roadCallID
		link := roadCallLink(n.linkBase, roadCallID)
		order.RoadCallLink = &link
	}
	if id, ok := companies[strings.ToUpper(customerKey)]; ok {
		order.CompanyID = &id
	}
	return order
}

// cleanString collapses embedded line breaks to single spaces and trims.
// Upstream data routinely contains CR/LF inside names and addresses.
func cleanString(s string) string {
	if s == "" {
		return ""
	}
	replacer := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	return strings.TrimSpace(replacer.Replace(s))
}

// normalizeUnitType maps free-text unit types onto the closed vocabulary.
// Unrecognized values pass through lowercased.
func normalizeUnitType(raw string) string {
	if raw == "" {
		return ""
	}
	t := strings.ToLower(raw)
	switch {
	case strings.Contains(t, "truck"), strings.Contains(t, "tractor"):
		return model.UnitTypeTractor
	case strings.Contains(t, "trailer"), strings.Contains(t, "trl"):
		return model.UnitTypeTrailer
	}
	return t
}

func parseOpenedDate(value string) time.Time {
	for _, layout := range openedDateLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}
