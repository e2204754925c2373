package services

// EventAdminFeeIDR is the flat platform fee added to every paid event
// registration, in rupiah.
const EventAdminFeeIDR = 2500.0

// RegistrationTotal computes what a single attendee owes for an event:
// price per person plus the platform fee. Free events cost nothing.
func RegistrationTotal(isPaid bool, pricePerPerson *float64) float64 {
	if !isPaid || pricePerPerson == nil {
		return 0
	}
	return *pricePerPerson + EventAdminFeeIDR
}
