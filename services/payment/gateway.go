package payment

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

// Gateway is the capability interface over the hosted checkout provider. The
// wizard's verification and polling logic only ever sees this interface, so
// it can be tested against a fake gateway.
type Gateway interface {
	// CreateOrder registers a checkout order for the given amount in minor
	// currency units (paise) and returns the provider's order ID.
	CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (string, error)
	// VerifySignature checks the payment proof delivered by the checkout
	// widget's success callback.
	VerifySignature(orderID, paymentID, signature string) bool
	// OrderPaid reports whether the order has a captured payment. Used by
	// the polling path when the widget was dismissed before the callback.
	OrderPaid(orderID string) (bool, error)
}

// RazorpayGateway implements Gateway using the Razorpay SDK.
type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
}

// NewRazorpayGateway creates a gateway from the key pair configured for the
// resort's Razorpay account.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

func (g *RazorpayGateway) CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order creation failed: %w", err)
	}
	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay order response missing id")
	}
	return orderID, nil
}

func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, g.keySecret)
}

// OrderPaid lists the payments attached to an order and reports whether any
// of them was captured. UPI payments often settle after the widget is gone,
// which is exactly the case the poller covers.
func (g *RazorpayGateway) OrderPaid(orderID string) (bool, error) {
	body, err := g.client.Order.Payments(orderID, nil, nil)
	if err != nil {
		return false, fmt.Errorf("razorpay payment lookup failed for order %s: %w", orderID, err)
	}
	items, _ := body["items"].([]interface{})
	for _, item := range items {
		payment, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if status, _ := payment["status"].(string); status == "captured" {
			return true, nil
		}
	}
	return false, nil
}
