package processor

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"trilha_vertical/internal/domain/entities"
)

var (
	ErrWhatsAppMissingPhone = errors.New("whatsapp business phone is not configured")
	ErrWhatsAppEmptyOrder   = errors.New("order has no items for whatsapp summary")
)

// WhatsAppProcessor formats a deep link embedding a human-readable order
// summary. Purely local: no gateway call, no asynchronous confirmation path;
// the order stays pending_payment until someone reconciles it by hand.

type WhatsAppProcessor struct {
	// phone is the business number in E.164 without the plus sign.
	phone string
}

func NewWhatsAppProcessor(phone string) *WhatsAppProcessor {
	return &WhatsAppProcessor{phone: strings.TrimPrefix(strings.TrimSpace(phone), "+")}
}

func (p *WhatsAppProcessor) Create(order entities.Order) (WhatsAppResult, error) {
	if p.phone == "" {
		return WhatsAppResult{}, ErrWhatsAppMissingPhone
	}
	if len(order.Items) == 0 {
		return WhatsAppResult{}, ErrWhatsAppEmptyOrder
	}

	var b strings.Builder
	b.WriteString("Nova reserva de escalada!\n")
	fmt.Fprintf(&b, "Pedido: %s\n", order.ID)
	fmt.Fprintf(&b, "Data: %s\n", order.Climbing.SelectedDate.Format("02/01/2006"))
	b.WriteString("Participantes:\n")
	for _, it := range order.Items {
		fmt.Fprintf(&b, "- %s (%s x%d)\n", it.Participant.Name, it.PackageName, it.Quantity)
	}
	fmt.Fprintf(&b, "Subtotal: %s\n", order.Subtotal)
	if order.Discount != nil {
		fmt.Fprintf(&b, "Desconto: %s (%s)\n", order.Discount.DiscountAmount, order.Discount.CouponCode)
	}
	fmt.Fprintf(&b, "Total: %s\n", order.Total)
	fmt.Fprintf(&b, "Pagamento: %s", order.Payment.Method.Label())
	if order.Climbing.Notes != "" {
		fmt.Fprintf(&b, "\nObs: %s", order.Climbing.Notes)
	}

	link := fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s", p.phone, url.QueryEscape(b.String()))
	return WhatsAppResult{DeepLink: link}, nil
}
