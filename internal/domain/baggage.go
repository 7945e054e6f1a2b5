package domain

import "time"

// BaggageStatusRegistered is the status every bag starts in. Later
// transitions are free-form strings chosen by the operations staff;
// the backend does not constrain them.
const BaggageStatusRegistered = "Registrada"

type Baggage struct {
	ID          int64   `json:"idBagagem"`
	PassengerID int64   `json:"idPassageiro"`
	FlightID    int64   `json:"idVoo"`
	Weight      float64 `json:"peso"`
	Status      string  `json:"status"`
}

type BaggageDetails struct {
	Baggage
	PassengerName      string    `json:"nome_passageiro"`
	PassengerCPF       string    `json:"CPF"`
	DepartureTime      time.Time `json:"data_hora_partida"`
	FlightStatus       string    `json:"status_voo"`
	OriginAirport      string    `json:"aeroporto_origem"`
	OriginIATA         string    `json:"iata_origem"`
	DestinationAirport string    `json:"aeroporto_destino"`
	DestinationIATA    string    `json:"iata_destino"`
}
