package trimble

import "encoding/xml"

const (
	soapNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	amsNamespace  = "http://tmwsystems.com/AMS"

	actionGetOrderDetails = "http://tmwsystems.com/AMS/IIntegrationToolKit/GetOrderDetails"
	actionGetUnitDetails  = "http://tmwsystems.com/AMS/IIntegrationToolKit/GetUnitDetails"
)

// OrderFilter narrows the GetOrderDetails query. Empty fields are omitted from
// the generated envelope.
type OrderFilter struct {
	OrderType      string
	Status         string
	OrderID        string
	CustomerNumber string
	OpenedFrom     string
	OpenedTo       string
}

// UnitFilter narrows the GetUnitDetails query. Empty fields are omitted; an
// empty Status is sent as ACTIVE, matching upstream expectations.
type UnitFilter struct {
	UnitID       string
	UnitNumber   string
	CustomerName string
	Status       string
	Make         string
	Model        string
	SerialNo     string
}

type soapHeader struct {
	UserName string `xml:"ams:UserName"`
	Password string `xml:"ams:Password"`
}

type orderRequestEnvelope struct {
	XMLName xml.Name   `xml:"soapenv:Envelope"`
	NSEnv   string     `xml:"xmlns:soapenv,attr"`
	NSAMS   string     `xml:"xmlns:ams,attr"`
	Header  soapHeader `xml:"soapenv:Header"`
	Param   orderParam `xml:"soapenv:Body>ams:GetOrderDetailsParamMessage>ams:Param"`
}

type orderParam struct {
	OrderType      string `xml:"ams:OrderType,omitempty"`
	Status         string `xml:"ams:Status,omitempty"`
	OrderID        string `xml:"ams:OrderID,omitempty"`
	CustomerNumber string `xml:"ams:CustomerNumber,omitempty"`
	OpenedFrom     string `xml:"ams:OpenedFrom,omitempty"`
	OpenedTo       string `xml:"ams:OpenedTo,omitempty"`
}

type unitRequestEnvelope struct {
	XMLName xml.Name   `xml:"soapenv:Envelope"`
	NSEnv   string     `xml:"xmlns:soapenv,attr"`
	NSAMS   string     `xml:"xmlns:ams,attr"`
	Header  soapHeader `xml:"soapenv:Header"`
	Param   unitParam  `xml:"soapenv:Body>ams:GetUnitDetailsParamMessage>ams:Param"`
}

type unitParam struct {
	UnitID       string `xml:"ams:UnitID,omitempty"`
	UnitNumber   string `xml:"ams:UnitNumber,omitempty"`
	CustomerName string `xml:"ams:CustomerName,omitempty"`
	Status       string `xml:"ams:Status,omitempty"`
	Make         string `xml:"ams:Make,omitempty"`
	Model        string `xml:"ams:Model,omitempty"`
	SerialNo     string `xml:"ams:SerialNo,omitempty"`
}

func newOrderEnvelope(header soapHeader, filter OrderFilter) orderRequestEnvelope {
	return orderRequestEnvelope{
		NSEnv:  soapNamespace,
		NSAMS:  amsNamespace,
		Header: header,
		Param: orderParam{
			OrderType:      filter.OrderType,
			Status:         filter.Status,
			OrderID:        filter.OrderID,
			CustomerNumber: filter.CustomerNumber,
			OpenedFrom:     filter.OpenedFrom,
			OpenedTo:       filter.OpenedTo,
		},
	}
}

func newUnitEnvelope(header soapHeader, filter UnitFilter) unitRequestEnvelope {
	status := filter.Status
	if status == "" {
		status = "ACTIVE"
	}
	return unitRequestEnvelope{
		NSEnv:  soapNamespace,
		NSAMS:  amsNamespace,
		Header: header,
		Param: unitParam{
			UnitID:       filter.UnitID,
			UnitNumber:   filter.UnitNumber,
			CustomerName: filter.CustomerName,
			Status:       status,
			Make:         filter.Make,
			Model:        filter.Model,
			SerialNo:     filter.SerialNo,
		},
	}
}
