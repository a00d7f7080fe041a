package validation

import (
	"time"

	"truckqr/internal/domain/models"
	"truckqr/internal/payload"
)

// ValidationResult is the sole output of the validation phase: either a
// non-empty error list or a built payload, never both.
type ValidationResult struct {
	Errors  []FieldError
	Payload *models.DeliveryPayload
}

func (r ValidationResult) OK() bool { return len(r.Errors) == 0 && r.Payload != nil }

// Messages returns the error messages in detection order.
func (r ValidationResult) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, fe := range r.Errors {
		out = append(out, fe.Message)
	}
	return out
}

// Err returns the errors as a domain.ValidationErrors, or nil when valid.
func (r ValidationResult) Err() error {
	errs := Errors{list: r.Errors}
	return errs.Err()
}

// Validate runs every validator on form, collecting all errors, and builds the
// payload only when none were found.
func Validate(form models.DeliveryForm, now time.Time, loc *time.Location) ValidationResult {
	var errs Errors

	errs.Check(ValidPlate(form.Plate), FieldPlate, MsgInvalidPlate)
	errs.Check(ValidDriverName(form.DriverName), FieldDriverName, MsgInvalidDriverName)
	errs.Check(ValidCustomerID(form.CustomerID), FieldCustomerID, MsgInvalidCustomerID)
	errs.Check(ValidCompany(form.Company), FieldCompany, MsgInvalidCompany)
	errs.Check(ValidDeliveryOrderRef(form.DeliveryOrderRef), FieldDeliveryOrderRef, MsgInvalidDeliveryRef)
	errs.Check(ValidTruckType(form.TruckType), FieldTruckType, MsgInvalidTruckType)

	gate := NormalizeGateTime(GateTimeInput{
		Date:     form.Date,
		Hour:     form.Hour,
		Minute:   form.Minute,
		Meridiem: form.Meridiem,
	}, now, loc)
	if !gate.OK {
		errs.AddAll(FieldDateTime, gate.Errors)
	}

	items := ParseItems(form.Items)
	if !items.OK {
		errs.AddAll(FieldItems, items.Errors)
	}

	if !errs.Empty() {
		return ValidationResult{Errors: errs.List()}
	}

	p := payload.Build(payload.Input{
		Plate:            form.Plate,
		DriverName:       form.DriverName,
		CustomerID:       form.CustomerID,
		DateTimeAtGate:   gate.Timestamp,
		Items:            items.Items,
		TruckType:        form.TruckType,
		Company:          form.Company,
		DeliveryOrderRef: form.DeliveryOrderRef,
	})
	return ValidationResult{Payload: &p}
}
