package validation

import (
	"regexp"

	"truckqr/internal/domain"
	"truckqr/internal/utils"
)

var (
	platePattern       = regexp.MustCompile(`^[A-Z0-9-]{3,10}$`)
	driverNamePattern  = regexp.MustCompile(`^[A-Za-z\s.\-']{2,50}$`)
	customerIDPattern  = regexp.MustCompile(`^[A-Z0-9_-]{3,20}$`)
	deliveryRefPattern = regexp.MustCompile(`^[A-Z0-9_-]{3,30}$`)
	itemIDPattern      = regexp.MustCompile(`^[A-Z0-9_-]{1,20}$`)
)

// Messages shown for rejected single-value fields.
const (
	MsgInvalidPlate       = "Invalid plate number format. Use 3-10 characters with letters, numbers, and hyphens only."
	MsgInvalidDriverName  = "Invalid driver name. Use 2-50 characters with letters, spaces, dots, hyphens, and apostrophes only."
	MsgInvalidCustomerID  = "Invalid customer ID format. Use 3-20 characters with letters, numbers, hyphens, and underscores only."
	MsgInvalidCompany     = "Company name must be between 2 and 100 characters."
	MsgInvalidDeliveryRef = "Invalid delivery reference format. Use 3-30 characters with letters, numbers, hyphens, and underscores only."
	MsgInvalidTruckType   = "Invalid truck type. Choose one of: Type A, Type B, Type C, Type D, Type E."
)

// ValidPlate accepts 3-10 letters, digits and hyphens, in any case.
func ValidPlate(plate string) bool {
	return platePattern.MatchString(utils.UpperTrim(plate))
}

// ValidDriverName accepts 2-50 letters, whitespace, dots, hyphens and apostrophes.
func ValidDriverName(name string) bool {
	return driverNamePattern.MatchString(utils.TrimOrEmpty(name))
}

// ValidCustomerID accepts 3-20 letters, digits, hyphens and underscores, in any case.
func ValidCustomerID(id string) bool {
	return customerIDPattern.MatchString(utils.UpperTrim(id))
}

// ValidCompany is optional; when present it must be 2-100 characters.
func ValidCompany(company string) bool {
	company = utils.TrimOrEmpty(company)
	if company == "" {
		return true
	}
	n := utils.RuneLen(company)
	return n >= 2 && n <= 100
}

// ValidDeliveryOrderRef is optional; when present it must be 3-30 letters,
// digits, hyphens and underscores.
func ValidDeliveryOrderRef(ref string) bool {
	ref = utils.UpperTrim(ref)
	if ref == "" {
		return true
	}
	return deliveryRefPattern.MatchString(ref)
}

// ValidTruckType is optional; when present it must name one of the fixed types.
func ValidTruckType(t string) bool {
	if utils.TrimOrEmpty(t) == "" {
		return true
	}
	_, ok := domain.ParseTruckType(t)
	return ok
}

// ValidItemID reports whether an already normalized SKU is acceptable.
func ValidItemID(id string) bool {
	return itemIDPattern.MatchString(id)
}
