package entities

import "strings"

// User is the read-only contact projection the issuance pipeline resolves
// when composing documents and notification emails. Account management and
// authentication live outside this service.
//
// Storage model (DynamoDB):
//   - PK: id

type User struct {
	ID        string `json:"id"`
	FirstName string `json:"prenom"`
	LastName  string `json:"nom"`
	Email     string `json:"email"`
	Phone     string `json:"num_tel,omitempty"`
	Address   string `json:"adresse,omitempty"`
	TaxCode   string `json:"matricule_fiscal,omitempty"`
}

// FullName joins first and last name, falling back to the email so the
// operational email never shows an empty client line.
func (u User) FullName() string {
	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name != "" {
		return name
	}
	if u.Email != "" {
		return u.Email
	}
	return "Client"
}
