package service

import (
	"errors"
	"fmt"

	"github.com/airlinehq/reservation-service/internal/models"
	"github.com/airlinehq/reservation-service/internal/repository"
)

type PaymentMethod string

const (
	PayCash PaymentMethod = "cash"
	PayCard PaymentMethod = "card"
)

// CardDetails is a full new-card entry. Submitting one overwrites the
// passenger's saved card record.
type CardDetails struct {
	CardNumber string
	ExpDate    string
	CardHolder string
	CVV        string
}

// PaymentInput carries everything a payment flow may need up front; the
// core never prompts. A passenger with a card on file can pay by setting
// SavedCardCVV alone; on a CVV mismatch the flow falls through to Card
// when full details were also supplied.
type PaymentInput struct {
	Method       PaymentMethod
	SavedCardCVV string
	Card         *CardDetails
}

// paymentProcessor drives a freshly created reservation from unpaid to
// paid (card) or held (cash). There is no external gateway: a card
// payment always succeeds once details are supplied.
type paymentProcessor struct {
	cards repository.CardStore
}

func (p *paymentProcessor) Process(res *models.Reservation, input PaymentInput) error {
	switch input.Method {
	case PayCash:
		res.PaymentMethod = models.PaymentMethodCash
		res.IsPaid = false
		return nil
	case PayCard:
		return p.processCard(res, input)
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidPayment, input.Method)
	}
}

func (p *paymentProcessor) processCard(res *models.Reservation, input PaymentInput) error {
	if input.SavedCardCVV != "" {
		saved, err := p.cards.Get(res.PassengerName)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err == nil && saved.CVV == input.SavedCardCVV {
			res.PaymentMethod = saved.CardNumber
			res.PaymentDetails = saved.CVV
			res.IsPaid = true
			return nil
		}
		// Wrong CVV or no card on file: fall through to full card entry.
	}

	card := input.Card
	if card == nil || card.CardNumber == "" || card.CVV == "" {
		return fmt.Errorf("%w: card number and cvv are required", ErrInvalidPayment)
	}
	if err := p.cards.Put(res.PassengerName, models.Card{
		CardNumber: card.CardNumber,
		CVV:        card.CVV,
		ExpDate:    card.ExpDate,
		CardHolder: card.CardHolder,
	}); err != nil {
		return err
	}
	res.PaymentMethod = card.CardNumber
	res.PaymentDetails = card.CVV
	res.IsPaid = true
	return nil
}
