package email

import (
	"context"
	"fmt"

	"github.com/lmonteiro91/aeroportal/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BaggageEvent) error {
	if event.Email == "" {
		fmt.Printf("notify passenger %d: baggage %d %s (%s)\n", event.PassengerID, event.BaggageID, event.Type, event.Status)
		return nil
	}
	fmt.Printf("send email to %s: baggage %d %s (%s)\n", event.Email, event.BaggageID, event.Type, event.Status)
	return nil
}
