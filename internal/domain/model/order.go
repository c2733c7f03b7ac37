package model

// Normalized unit type vocabulary. Unrecognized raw values pass through lowercased.
const (
	UnitTypeTractor = "tractor"
	UnitTypeTrailer = "trailer"
)

// Vendor describes the repair vendor assigned to an order, resolved from the
// static vendor reference file.
type Vendor struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	City  string `json:"city"`
	State string `json:"state"`
}

// Customer describes the fleet customer an order belongs to, resolved from the
// static customer reference file.
type Customer struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Address1  string `json:"address1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
	MainPhone string `json:"mainPhone"`
}

// UnitDetails carries per-unit attributes joined in from the GetUnitDetails call.
// Missing joins leave every field empty.
type UnitDetails struct {
	UnitNumber   string `json:"unitNumber"`
	UnitType     string `json:"unitType"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	ModelYear    string `json:"modelYear"`
	SerialNo     string `json:"serialNo"`
	NameCustomer string `json:"nameCustomer"`
}

// UnitRef pairs the order's raw unit number with joined unit details.
type UnitRef struct {
	Value   string      `json:"value"`
	Details UnitDetails `json:"details"`
}

// Order is the normalized repair order served to the portal.
type Order struct {
	OrderID              string   `json:"orderId"`
	OrderNumber          string   `json:"orderNumber"`
	Status               string   `json:"status"`
	OpenedDate           string   `json:"openedDate"`
	ClosedDate           *string  `json:"closedDate"`
	Vendor               Vendor   `json:"vendor"`
	UnitNumber           UnitRef  `json:"unitNumber"`
	Customer             Customer `json:"customer"`
	ComponentCode        string   `json:"componentCode"`
	ComponentDescription string   `json:"componentDescription"`
	RoadCallID           *string  `json:"roadCallId"`
	RoadCallNum          *string  `json:"roadCallNum"`
	RoadCallLink         *string  `json:"roadCallLink"`
	CompanyID            *int64   `json:"company"`
	RepOrders            []Order  `json:"repOrders,omitempty"`
}
