package domain

import "time"

type Ticket struct {
	ID            int64  `json:"idBilhete"`
	PassengerID   int64  `json:"idPassageiro"`
	FlightID      int64  `json:"idVoo"`
	Class         string `json:"classe"`
	Seat          string `json:"assento"`
	PaymentStatus string `json:"status_pagamento"`
}

// TicketDetails joins a ticket with its passenger, flight and the
// flight's airports. This is the shape the lookup endpoint serves.
type TicketDetails struct {
	Ticket
	PassengerName      string    `json:"nome_passageiro"`
	PassengerCPF       string    `json:"CPF"`
	PassengerEmail     string    `json:"email"`
	DepartureTime      time.Time `json:"data_hora_partida"`
	ArrivalTime        time.Time `json:"data_hora_chegada"`
	FlightStatus       string    `json:"status_voo"`
	OriginAirport      string    `json:"aeroporto_origem"`
	OriginIATA         string    `json:"iata_origem"`
	DestinationAirport string    `json:"aeroporto_destino"`
	DestinationIATA    string    `json:"iata_destino"`
}
