package checkout

import (
	"payswitch/internal/connector"
	"payswitch/internal/domain"
	"payswitch/internal/webhook"
)

var supportedCaptureMethods = []domain.CaptureMethod{
	domain.CaptureAutomatic,
	domain.CaptureManual,
	domain.CaptureSequentialAutomatic,
	domain.CaptureManualMultiple,
}

var supportedCardNetworks = []domain.CardNetwork{
	domain.CardNetworkAmex,
	domain.CardNetworkCartesBancaires,
	domain.CardNetworkDinersClub,
	domain.CardNetworkDiscover,
	domain.CardNetworkJCB,
	domain.CardNetworkMastercard,
	domain.CardNetworkVisa,
	domain.CardNetworkUnionPay,
}

var supportedPaymentMethods = buildSupportedPaymentMethods()

func buildSupportedPaymentMethods() connector.SupportedPaymentMethods {
	cardDetails := connector.PaymentMethodDetails{
		Mandates:                connector.FeatureNotSupported,
		Refunds:                 connector.FeatureSupported,
		SupportedCaptureMethods: supportedCaptureMethods,
		SupportedCardNetworks:   supportedCardNetworks,
	}
	walletDetails := connector.PaymentMethodDetails{
		Mandates:                connector.FeatureNotSupported,
		Refunds:                 connector.FeatureSupported,
		SupportedCaptureMethods: supportedCaptureMethods,
	}

	s := make(connector.SupportedPaymentMethods)
	s.Add(domain.PaymentMethodCard, domain.PaymentMethodTypeCredit, cardDetails)
	s.Add(domain.PaymentMethodCard, domain.PaymentMethodTypeDebit, cardDetails)
	s.Add(domain.PaymentMethodWallet, domain.PaymentMethodTypeGooglePay, walletDetails)
	s.Add(domain.PaymentMethodWallet, domain.PaymentMethodTypeApplePay, walletDetails)
	return s
}

var info = connector.Info{
	DisplayName: "Checkout",
	Description: "Checkout.com is a British multinational financial technology company that processes payments for other companies.",
	Category:    "payment_gateway",
}

var supportedWebhookFlows = []webhook.EventClass{
	webhook.ClassPayments,
	webhook.ClassRefunds,
	webhook.ClassDisputes,
}

// About returns static descriptive metadata for this connector.
func (c *Checkout) About() connector.Info {
	return info
}

// SupportedPaymentMethods reports the payment method capability matrix.
func (c *Checkout) SupportedPaymentMethods() connector.SupportedPaymentMethods {
	return supportedPaymentMethods
}

// SupportedWebhookFlows lists the event classes this connector notifies
// about.
func (c *Checkout) SupportedWebhookFlows() []webhook.EventClass {
	return supportedWebhookFlows
}

// RedirectBehavior reports whether a redirect completion should trigger a
// connector call. Every redirect-returning action requires a follow-up call
// for this connector.
func (c *Checkout) RedirectBehavior(connector.PaymentAction) connector.RedirectBehavior {
	return connector.RedirectTrigger
}
