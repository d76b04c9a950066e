package domain

// Contact is the address-book entry exposed by the contact directory. The
// engine consumes it one-way to seed tenant and landlord fields and never
// writes back.
type Contact struct {
	ID                     int32  `json:"id"`
	Name                   string `json:"name"`
	Nationality            string `json:"nationality"`
	Gender                 string `json:"gender"`
	PhoneNumber            string `json:"phone_number"`
	Email                  string `json:"email"`
	NationalID             string `json:"national_id"`
	PassportNumber         string `json:"passport_number"`
	PassportExpiry         string `json:"passport_expiry"`
	Workplace              string `json:"workplace"`
	CommercialRegistration string `json:"commercial_registration"`
}

// AsParty maps directory fields onto the contract party shape.
func (c *Contact) AsParty() Party {
	return Party{
		Name:           c.Name,
		Nationality:    c.Nationality,
		Gender:         c.Gender,
		PhoneNumber:    c.PhoneNumber,
		Email:          c.Email,
		NationalID:     c.NationalID,
		PassportNumber: c.PassportNumber,
		PassportExpiry: c.PassportExpiry,
		Workplace:      c.Workplace,
	}
}
