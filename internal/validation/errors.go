package validation

import "truckqr/internal/domain"

// Field names used in FieldError.Field. They match the payload keys.
const (
	FieldPlate            = "plate"
	FieldDriverName       = "driverName"
	FieldCustomerID       = "customer_id"
	FieldCompany          = "company"
	FieldDeliveryOrderRef = "deliveryOrderRef"
	FieldTruckType        = "truckType"
	FieldDateTime         = "date_time_at_gate"
	FieldItems            = "item_list"
)

// FieldError is one rejected field and the message shown to the user.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors accumulates field errors across independent validators. The zero
// value is ready to use.
type Errors struct {
	list []FieldError
}

// Add records msg against field.
func (e *Errors) Add(field, msg string) {
	e.list = append(e.list, FieldError{Field: field, Message: msg})
}

// AddAll records every message in msgs against field, keeping their order.
func (e *Errors) AddAll(field string, msgs []string) {
	for _, m := range msgs {
		e.Add(field, m)
	}
}

// Check records msg when ok is false and reports ok.
func (e *Errors) Check(ok bool, field, msg string) bool {
	if !ok {
		e.Add(field, msg)
	}
	return ok
}

func (e *Errors) Len() int { return len(e.list) }

func (e *Errors) Empty() bool { return len(e.list) == 0 }

// List returns a copy of the recorded errors in detection order.
func (e *Errors) List() []FieldError {
	out := make([]FieldError, len(e.list))
	copy(out, e.list)
	return out
}

// Messages returns the recorded messages in detection order.
func (e *Errors) Messages() []string {
	out := make([]string, 0, len(e.list))
	for _, fe := range e.list {
		out = append(out, fe.Message)
	}
	return out
}

// Err converts the accumulator into a domain.ValidationErrors, or nil when
// nothing was recorded.
func (e *Errors) Err() error {
	if e.Empty() {
		return nil
	}
	batch := domain.ValidationErrors{Fields: make([]domain.ValidationError, 0, len(e.list))}
	for _, fe := range e.list {
		batch.Fields = append(batch.Fields, domain.ValidationError{Field: fe.Field, Msg: fe.Message})
	}
	return batch
}
