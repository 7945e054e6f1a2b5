package domain

import "time"

type Flight struct {
	ID                   int64     `json:"idVoo"`
	OriginAirportID      int64     `json:"idAeroportoOrigem"`
	DestinationAirportID int64     `json:"idAeroportoDestino"`
	AircraftID           int64     `json:"idAeronave"`
	DepartureTime        time.Time `json:"data_hora_partida"`
	ArrivalTime          time.Time `json:"data_hora_chegada"`
	Status               string    `json:"status"`
}

// FlightDetails is the denormalized read used by the flight listing:
// the flight row joined with both airports, the aircraft and its airline.
type FlightDetails struct {
	Flight
	OriginAirport      string `json:"aeroporto_origem"`
	OriginCity         string `json:"cidade_origem"`
	OriginCountry      string `json:"pais_origem"`
	OriginIATA         string `json:"iata_origem"`
	DestinationAirport string `json:"aeroporto_destino"`
	DestinationCity    string `json:"cidade_destino"`
	DestinationCountry string `json:"pais_destino"`
	DestinationIATA    string `json:"iata_destino"`
	AircraftModel      string `json:"modelo_aeronave"`
	AirlineName        string `json:"companhia_aerea"`
}
