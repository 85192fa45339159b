package services

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"storefront/models"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

// SendReceiptEmail mails the shopper a summary of a completed order. Called
// best-effort after checkout; the caller logs failures and moves on.
func (s *EmailService) SendReceiptEmail(toEmail string, order models.CreateOrderRequest) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Receipt - Payment %s", order.PaymentIntentID))

	rows := ""
	for _, item := range order.Items {
		name := item.Name
		if name == "" {
			name = item.ProductID
		}
		rows += fmt.Sprintf(
			`<tr><td style="padding:8px;border-bottom:1px solid #eee;">%s</td><td style="padding:8px;border-bottom:1px solid #eee;">%d</td><td style="padding:8px;border-bottom:1px solid #eee;">$%s</td></tr>`,
			name, item.Quantity, item.Price.StringFixed(2),
		)
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px;">
        <h2 style="color: #f97316;">Thank you for your purchase!</h2>
        <p>Your payment <strong>%s</strong> was received and your order is being prepared.</p>
        <table style="width:100%%; border-collapse: collapse; margin: 20px 0;">
            <tr><th align="left" style="padding:8px;">Item</th><th align="left" style="padding:8px;">Qty</th><th align="left" style="padding:8px;">Price</th></tr>
            %s
        </table>
        <p style="font-size: 18px;"><strong>Total: $%s</strong></p>
        <p style="color: #888; font-size: 12px;">Shipping to: %s, %s %s</p>
    </div>
</body>
</html>`,
		order.PaymentIntentID, rows, order.TotalAmount.StringFixed(2),
		order.BillingAddress.Line1, order.BillingAddress.City, order.BillingAddress.PostalCode,
	)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
