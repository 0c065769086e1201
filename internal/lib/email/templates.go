package email

// Template names a file under templates/, without the extension.
type Template string

const (
	TemplateWelcome        Template = "welcome"
	TemplatePaymentReceipt Template = "payment_receipt"
)
