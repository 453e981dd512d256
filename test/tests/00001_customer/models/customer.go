package models

type Address struct {
	City   string  `json:"city"`
	Street string  `json:"street"`
	Zip    *string `json:"zip,omitempty"`
}

type Customer struct {
	Address   *Address `json:"address,omitempty"`
	Age       *int     `json:"age,omitempty"`
	CreatedAt *string  `json:"created_at,omitempty"`
	Gender    *string  `json:"gender,omitempty"`
	Name      string   `json:"name"`
	Ssn       *string  `json:"ssn,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}
