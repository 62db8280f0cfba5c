package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
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

func (s *EmailService) SendOrderConfirmation(toEmail string, order *Order) error {
	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("SMTP_FROM"))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order %s confirmed - MMOSS Supermarket", order.OrderNumber))

	var items strings.Builder
	for _, it := range order.Items {
		items.WriteString(fmt.Sprintf("<tr><td>%s</td><td>x%d</td><td>%s</td><td>%s</td></tr>",
			it.ProductName, it.Quantity, FormatCents(it.UnitPrice), FormatCents(it.LineTotal)))
	}

	fulfillment := "Pickup"
	detail := ""
	if order.Fulfillment == FulfillmentDelivery {
		fulfillment = "Delivery"
		detail = order.DeliveryAddress
	} else if store := PickupStoreByID(order.PickupStoreID); store != nil {
		detail = fmt.Sprintf("%s, %s", store.Name, store.Address)
	}

	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #16a34a; text-align: center; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        td { padding: 6px 4px; border-bottom: 1px solid #eee; }
        .total { font-size: 18px; font-weight: bold; color: #16a34a; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">MMOSS Supermarket</div>
        <h2>Thank you for your order!</h2>
        <p>Order number: <strong>%s</strong></p>
        <p>%s: %s</p>
        <table>%s</table>
        <p>Subtotal: %s</p>
        <p>Discount: -%s</p>
        <p>Delivery fee: %s</p>
        <p class="total">Total charged: %s</p>
        <div class="footer">MMOSS - Monash Merchant Online Shopping System</div>
    </div>
</body>
</html>`,
		order.OrderNumber, fulfillment, detail, items.String(),
		FormatCents(order.Subtotal), FormatCents(order.DiscountAmount),
		FormatCents(order.DeliveryFee), FormatCents(order.Total))

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
