package domain

type Passenger struct {
	ID       int64  `json:"idPassageiro"`
	Name     string `json:"nome"`
	CPF      string `json:"CPF"`
	Passport string `json:"passaporte"`
	Phone    string `json:"telefone"`
	Email    string `json:"email"`
}
