package validation

import (
	"fmt"
	"strconv"
	"time"

	"truckqr/internal/domain"
	"truckqr/internal/utils"
)

const (
	MsgDateRequired     = "The 'Date' field is required."
	MsgTimeRequired     = "The 'Hours' and 'Minutes' fields are required."
	MsgMeridiemRequired = "The 'AM/PM' field is required."
	MsgInvalidTime      = "Invalid time format."
	MsgFutureDateTime   = "Date and time cannot be in the future."
)

// GateTimeInput is the raw date and 12-hour clock reading of a gate arrival.
type GateTimeInput struct {
	Date     string
	Hour     string
	Minute   string
	Meridiem string
}

// GateTimeResult carries the normalized timestamp or the reasons it was rejected.
type GateTimeResult struct {
	OK        bool
	Time      time.Time
	Timestamp string
	Errors    []string
}

// To24Hour converts a 1-12 clock hour and meridiem to 0-23.
// 12 AM is midnight and 12 PM is noon.
func To24Hour(hour12 int, m domain.Meridiem) int {
	switch {
	case m == domain.PM && hour12 != 12:
		return hour12 + 12
	case m == domain.AM && hour12 == 12:
		return 0
	default:
		return hour12
	}
}

// NormalizeGateTime combines the date and clock reading into a timestamp in
// loc and rejects anything after now.
func NormalizeGateTime(in GateTimeInput, now time.Time, loc *time.Location) GateTimeResult {
	if loc == nil {
		loc = time.Local
	}
	var errs []string

	dateRaw := utils.TrimOrEmpty(in.Date)
	hourRaw := utils.TrimOrEmpty(in.Hour)
	minuteRaw := utils.TrimOrEmpty(in.Minute)
	meridiemRaw := utils.TrimOrEmpty(in.Meridiem)

	if dateRaw == "" {
		errs = append(errs, MsgDateRequired)
	}
	if hourRaw == "" || minuteRaw == "" {
		errs = append(errs, MsgTimeRequired)
	}
	if meridiemRaw == "" {
		errs = append(errs, MsgMeridiemRequired)
	}
	if len(errs) > 0 {
		return GateTimeResult{Errors: errs}
	}

	date, err := utils.ParseDate(dateRaw, loc)
	if err != nil {
		return GateTimeResult{Errors: []string{fmt.Sprintf("Invalid date: '%s'. Use YYYY-MM-DD.", dateRaw)}}
	}

	h12, err := strconv.Atoi(hourRaw)
	if err != nil {
		return GateTimeResult{Errors: []string{fmt.Sprintf("Error processing time: '%s' is not a number.", hourRaw)}}
	}
	minute, err := strconv.Atoi(minuteRaw)
	if err != nil {
		return GateTimeResult{Errors: []string{fmt.Sprintf("Error processing time: '%s' is not a number.", minuteRaw)}}
	}
	m, ok := domain.ParseMeridiem(meridiemRaw)
	if !ok || h12 < 1 || h12 > 12 {
		return GateTimeResult{Errors: []string{MsgInvalidTime}}
	}

	h24 := To24Hour(h12, m)
	if h24 < 0 || h24 > 23 || minute < 0 || minute > 59 {
		return GateTimeResult{Errors: []string{MsgInvalidTime}}
	}

	at := time.Date(date.Year(), date.Month(), date.Day(), h24, minute, 0, 0, loc)
	if at.After(now) {
		return GateTimeResult{Errors: []string{MsgFutureDateTime}}
	}

	return GateTimeResult{
		OK:        true,
		Time:      at,
		Timestamp: at.Format(domain.GateTimeLayout),
	}
}
