package domain

type Notification struct {
	ID         int32             `json:"id"`
	ContractID int32             `json:"contract_id"`
	Recipient  string            `json:"recipient"` // email or phone of the addressee
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"is_read"`
	Attributes map[string]string `json:"attributes"`
	CreatedOn  string            `json:"created_on"`
}
