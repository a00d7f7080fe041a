package models

// DeliveryForm is the flat record of raw values collected by the presentation
// layer. Nothing in it is trusted.
type DeliveryForm struct {
	Plate            string `json:"plate" form:"plate" yaml:"plate"`
	DriverName       string `json:"driverName" form:"driverName" yaml:"driverName"`
	CustomerID       string `json:"customerId" form:"customerId" yaml:"customerId"`
	Date             string `json:"date" form:"date" yaml:"date"`
	Hour             string `json:"hour" form:"hour" yaml:"hour"`
	Minute           string `json:"minute" form:"minute" yaml:"minute"`
	Meridiem         string `json:"meridiem" form:"meridiem" yaml:"meridiem"`
	TruckType        string `json:"truckType" form:"truckType" yaml:"truckType"`
	Company          string `json:"company" form:"company" yaml:"company"`
	DeliveryOrderRef string `json:"deliveryOrderRef" form:"deliveryOrderRef" yaml:"deliveryOrderRef"`
	Items            string `json:"items" form:"items" yaml:"items"`
}

// ItemRecord is one parsed SKU:QTY entry.
type ItemRecord struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// DeliveryPayload is the canonical structure embedded in the QR symbol. Field
// order is the serialization order; optional keys are dropped when empty.
type DeliveryPayload struct {
	Plate            string       `json:"plate"`
	DriverName       string       `json:"driverName"`
	CustomerID       string       `json:"customer_id"`
	DateTimeAtGate   string       `json:"date_time_at_gate"`
	ItemList         []ItemRecord `json:"item_list"`
	TruckType        string       `json:"truckType,omitempty"`
	Company          string       `json:"company,omitempty"`
	DeliveryOrderRef string       `json:"deliveryOrderRef,omitempty"`
}

// Summary is the human-facing digest shown next to a generated symbol.
type Summary struct {
	Plate          string `json:"plate"`
	DriverName     string `json:"driverName"`
	CustomerID     string `json:"customerId"`
	DateTimeAtGate string `json:"dateTimeAtGate"`
	TotalItems     int    `json:"totalItems"`
	TotalQuantity  int    `json:"totalQuantity"`
}
