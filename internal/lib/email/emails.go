package email

func (c *Client) SendWelcomeEmail(to, name string) error {
	data := map[string]string{
		"CustomerName": name,
	}

	return c.SendEmail(to, "Welcome to the portal", TemplateWelcome, data)
}

// Receipt is the data shown on a payment receipt.
type Receipt struct {
	CustomerName string
	PaymentID    string
	Amount       string
	Currency     string
	Method       string
}

func (c *Client) SendPaymentReceipt(to string, r Receipt) error {
	data := map[string]string{
		"CustomerName": r.CustomerName,
		"PaymentID":    r.PaymentID,
		"Amount":       r.Amount,
		"Currency":     r.Currency,
		"Method":       r.Method,
	}

	return c.SendEmail(to, "Your payment receipt", TemplatePaymentReceipt, data)
}
