package domain

import "strings"

// TruckType is one of the fixed vehicle labels accepted by the gate.
type TruckType string

const (
	TruckTypeA TruckType = "Type A"
	TruckTypeB TruckType = "Type B"
	TruckTypeC TruckType = "Type C"
	TruckTypeD TruckType = "Type D"
	TruckTypeE TruckType = "Type E"
)

// TruckTypes lists the closed set in display order.
func TruckTypes() []TruckType {
	return []TruckType{TruckTypeA, TruckTypeB, TruckTypeC, TruckTypeD, TruckTypeE}
}

// ParseTruckType matches s against the closed set, ignoring case and
// surrounding whitespace.
func ParseTruckType(s string) (TruckType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range TruckTypes() {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

// Meridiem is the AM/PM half of a 12-hour clock reading.
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// ParseMeridiem accepts "am"/"pm" in any case.
func ParseMeridiem(s string) (Meridiem, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "AM":
		return AM, true
	case "PM":
		return PM, true
	default:
		return "", false
	}
}

// GateTimeLayout is the timestamp format expected by the integration platform:
// second precision, no zone offset.
const GateTimeLayout = "2006-01-02T15:04:05"
