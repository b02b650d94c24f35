package payments

import (
	"context"
	"log"
	"strconv"
	"time"

	"trilha_vertical/internal/domain/entities"
	"trilha_vertical/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

// MercadoPagoPixGateway creates PIX charges through the Mercado Pago payments
// API. The QR code pair (copia-e-cola string plus base64 image) comes back in
// the PointOfInteraction block of the payment response.

type MercadoPagoPixGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPixGateway = (*MercadoPagoPixGateway)(nil)

func NewMercadoPagoPixGateway(accessToken string) (*MercadoPagoPixGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][pix] mock mode enabled")
		return &MercadoPagoPixGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][pix] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][pix] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][pix] Mercado Pago client initialized")

	return &MercadoPagoPixGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoPixGateway) CreateCharge(ctx context.Context, amount entities.Money, payerName, payerEmail, description, externalReference string) (interfaces.PixCharge, error) {
	if g != nil && g.mockMode {
		id := "mock-pix-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][pix] mock charge created id=%s external_reference=%s", id, externalReference)
		return interfaces.PixCharge{
			ID:           id,
			QRCode:       "00020126mockpixcopiaecola" + id,
			QRCodeBase64: "bW9jay1waXgtcXI=",
			TicketURL:    "https://sandbox.mercadopago.com.br/payments/" + id + "/ticket",
		}, nil
	}
	if g == nil || g.client == nil {
		return interfaces.PixCharge{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := payment.Request{
		TransactionAmount: amount.Float64(),
		Description:       description,
		PaymentMethodID:   "pix",
		ExternalReference: externalReference,
		Payer: &payment.PayerRequest{
			Email:     payerEmail,
			FirstName: payerName,
		},
	}

	resource, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][pix] sdk create failed external_reference=%s err=%v", externalReference, err)
		return interfaces.PixCharge{}, err
	}
	log.Printf("[payment][pix] charge created provider_payment_id=%d provider_status=%s", resource.ID, resource.Status)

	return interfaces.PixCharge{
		ID:           strconv.Itoa(resource.ID),
		QRCode:       resource.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: resource.PointOfInteraction.TransactionData.QRCodeBase64,
		TicketURL:    resource.PointOfInteraction.TransactionData.TicketURL,
	}, nil
}
