package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// CheckoutGateway drives an interactive checkout for one order. Satisfied
// by SnapGateway; faked in tests.
type CheckoutGateway interface {
	CreateCheckout(orderID string, grossMinor int64, payerName, payerEmail string) (string, error)
}

// SnapGateway wraps the Midtrans Snap client. The server key comes in by
// injection; nothing here touches the environment.
type SnapGateway struct {
	client snap.Client
}

func NewSnapGateway(serverKey string) *SnapGateway {
	g := &SnapGateway{}
	g.client.New(serverKey, midtrans.Sandbox)
	return g
}

// CreateCheckout returns the snap token the frontend uses to open the
// payment popup. grossMinor is in minor currency units (pesewas).
func (g *SnapGateway) CreateCheckout(orderID string, grossMinor int64, payerName, payerEmail string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossMinor,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payerName,
			Email: payerEmail,
		},
	}

	resp, err := g.client.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
