package domain

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "BOOKED"
	BookingStatusRented    BookingStatus = "RENTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is the weakly referenced reservation record the contract was
// created from. The contract core reads its identity fields and writes the
// mirrored check list; it never owns the booking lifecycle beyond the
// rented conversion on final approval.
type Booking struct {
	ID          int32         `json:"id"`
	PropertyID  int32         `json:"property_id"`
	UnitType    string        `json:"unit_type"`
	ContractID  *int32        `json:"contract_id,omitempty"`
	TenantName  string        `json:"tenant_name"`
	TenantPhone string        `json:"tenant_phone"`
	TenantEmail string        `json:"tenant_email"`
	Status      BookingStatus `json:"status"`
	CreatedOn   string        `json:"created_on"`
	UpdatedOn   string        `json:"updated_on"`
}
