package email

// PreviewData holds sample values for rendering each template locally.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"CustomerName": "Ana López",
	},
	TemplatePaymentReceipt: {
		"CustomerName": "Ana López",
		"PaymentID":    "4f1c2d3e-0000-4000-8000-000000000000",
		"Amount":       "199.90",
		"Currency":     "MXN",
		"Method":       "card",
	},
}
