package trimble

import "encoding/xml"

// RawOrder mirrors one OrderParam element of a GetOrderDetails response.
// It is an upstream shape: fields arrive untrimmed and may embed line breaks.
// Repeated elements (sections, order lines) decode into slices regardless of
// whether the upstream payload carried one or many of them.
type RawOrder struct {
	OrderID        string       `xml:"OrderID"`
	OrderNum       string       `xml:"OrderNum"`
	Status         string       `xml:"Status"`
	Opened         string       `xml:"Opened"`
	Closed         string       `xml:"Closed"`
	Vendor         string       `xml:"Vendor"`
	UnitNumber     string       `xml:"UnitNumber"`
	CustomerNumber string       `xml:"CustomerNumber"`
	RoadCallID     string       `xml:"RepOrder>RoadCallId"`
	RoadCallNum    string       `xml:"RepOrder>RoadCallNum"`
	Sections       []RawSection `xml:"Sections>OrderSectionRes"`
}

// RawSection is one repair section with its component coding and lines.
type RawSection struct {
	CompCode string         `xml:"CompCode"`
	CompDesc string         `xml:"CompDesc"`
	Lines    []RawOrderLine `xml:"OrderLines>OrderLineRes"`
}

// RawOrderLine is a single typed order line. COMMENT lines may embed road-call
// references in free text.
type RawOrderLine struct {
	LineType    string `xml:"LineType"`
	Description string `xml:"Description"`
}

// RawUnit mirrors one UnitDetails element of a GetUnitDetails response.
type RawUnit struct {
	UnitNumber   string `xml:"UnitNumber"`
	UnitType     string `xml:"UnitType"`
	Make         string `xml:"Make"`
	Model        string `xml:"Model"`
	ModelYear    string `xml:"ModelYear"`
	SerialNo     string `xml:"SerialNo"`
	NameCustomer string `xml:"NameCustomer"`
}

type orderListingEnvelope struct {
	XMLName xml.Name   `xml:"Envelope"`
	Orders  []RawOrder `xml:"Body>OrderListingResMessage>Result>Orders>OrderParam"`
}

type unitListingEnvelope struct {
	XMLName xml.Name  `xml:"Envelope"`
	Units   []RawUnit `xml:"Body>UnitDetailsListResMessage>UnitList>UnitDetails"`
}
