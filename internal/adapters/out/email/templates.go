package email

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
)

// confirmationTemplate renders the HTML order confirmation sent to customers.
var confirmationTemplate = template.Must(template.New("order_confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background: #667eea; color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
    .content { background: #fff; padding: 30px; border: 1px solid #ddd; border-top: none; }
    .order-id { font-size: 24px; font-weight: bold; color: #667eea; margin: 20px 0; }
    table { width: 100%; border-collapse: collapse; margin: 20px 0; }
    th { background: #f5f5f5; padding: 10px; text-align: left; }
    td { padding: 8px; border-bottom: 1px solid #eee; }
    .total-row td { font-weight: bold; font-size: 18px; padding: 12px; }
    .footer { background: #f5f5f5; padding: 20px; text-align: center; border-radius: 0 0 10px 10px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Order Confirmed!</h1>
      <p>Thank you for choosing {{.BusinessName}}</p>
    </div>
    <div class="content">
      <p>Dear {{.CustomerName}},</p>
      <p>Your order has been confirmed successfully.</p>

      <div class="order-id">Order ID: #{{.OrderID}}</div>

      <h3>Order Details:</h3>
      <table>
        <thead>
          <tr>
            <th>Item</th>
            <th style="text-align: center;">Quantity</th>
            <th style="text-align: right;">Amount</th>
          </tr>
        </thead>
        <tbody>
          {{- range .Items}}
          <tr>
            <td>{{.Name}}</td>
            <td style="text-align: center;">{{.Quantity}}</td>
            <td style="text-align: right;">&#8377;{{.LineTotal}}</td>
          </tr>
          {{- end}}
          {{- if .HasDiscount}}
          <tr>
            <td colspan="2" style="text-align: right;">Discount:</td>
            <td style="text-align: right; color: green;">-&#8377;{{.Discount}}</td>
          </tr>
          {{- end}}
          <tr class="total-row">
            <td colspan="2" style="text-align: right;">Total Amount:</td>
            <td style="text-align: right;">&#8377;{{.Total}}</td>
          </tr>
        </tbody>
      </table>

      <h3>Pickup Address:</h3>
      <p style="background: #f9f9f9; padding: 15px; border-left: 3px solid #667eea;">{{.PickupAddress}}</p>

      <h3>Payment Method:</h3>
      <p><strong>{{.PaymentMethod}}</strong></p>

      <div style="background: #e8f4f8; padding: 15px; border-radius: 5px; margin: 20px 0;">
        <strong>What's Next?</strong><br>
        We'll contact you at <strong>{{.CustomerPhone}}</strong> within 24 hours to schedule the pickup.
      </div>

      <p>If you have any questions, feel free to contact us:</p>
      <p>
        Phone: <a href="tel:{{.BusinessPhone}}">{{.BusinessPhone}}</a><br>
        Website: <a href="{{.WebsiteURL}}">{{.WebsiteURL}}</a>
      </p>
    </div>
    <div class="footer">
      <p style="margin: 0; color: #666;"><strong>{{.BusinessName}}</strong></p>
    </div>
  </div>
</body>
</html>
`))

type confirmationItem struct {
	Name      string
	Quantity  int
	LineTotal string
}

type confirmationData struct {
	BusinessName  string
	BusinessPhone string
	WebsiteURL    string
	OrderID       string
	CustomerName  string
	CustomerPhone string
	Items         []confirmationItem
	HasDiscount   bool
	Discount      string
	Total         string
	PickupAddress string
	PaymentMethod string
}

func paymentMethodLabel(method order.PaymentMethod) string {
	if method == order.PaymentMethodCOD {
		return "Cash on Delivery"
	}
	return "Paid Online"
}

func (c *GomailChannel) confirmationBody(o *order.Order) (string, error) {
	data := confirmationData{
		BusinessName:  c.cfg.BusinessName,
		BusinessPhone: c.cfg.BusinessPhone,
		WebsiteURL:    c.cfg.WebsiteURL,
		OrderID:       o.ID().String(),
		CustomerName:  o.Customer().Name(),
		CustomerPhone: o.Customer().Phone().String(),
		HasDiscount:   o.Amounts().Discount().IsPositive(),
		Discount:      o.Amounts().Discount().StringFixed(2),
		Total:         o.Amounts().Total().StringFixed(2),
		PickupAddress: o.PickupAddress(),
		PaymentMethod: paymentMethodLabel(o.PaymentMethod()),
	}
	for _, item := range o.Items() {
		data.Items = append(data.Items, confirmationItem{
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			LineTotal: item.LineTotal().StringFixed(2),
		})
	}

	var b strings.Builder
	if err := confirmationTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render order confirmation: %w", err)
	}
	return b.String(), nil
}

func (c *GomailChannel) operatorAlertBody(o *order.Order) string {
	customerEmail := o.Customer().Email()
	if customerEmail == "" {
		customerEmail = "Not provided"
	}

	var b strings.Builder
	b.WriteString("NEW ORDER RECEIVED!\n\n")
	fmt.Fprintf(&b, "Order ID: #%s\n", o.ID())
	fmt.Fprintf(&b, "Date: %s\n\n", o.History()[0].Timestamp().Format("02 Jan 2006 15:04"))
	b.WriteString("CUSTOMER DETAILS:\n")
	fmt.Fprintf(&b, "Name: %s\n", o.Customer().Name())
	fmt.Fprintf(&b, "Phone: %s\n", o.Customer().Phone())
	fmt.Fprintf(&b, "Email: %s\n\n", customerEmail)
	b.WriteString("PICKUP ADDRESS:\n")
	fmt.Fprintf(&b, "%s\n\n", o.PickupAddress())
	b.WriteString("ORDER ITEMS:\n")
	for _, item := range o.Items() {
		fmt.Fprintf(&b, "- %s x %d = Rs %s\n", item.Name(), item.Quantity(), item.LineTotal().StringFixed(2))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal: Rs %s\n", o.Amounts().Subtotal().StringFixed(2))
	fmt.Fprintf(&b, "Discount: -Rs %s\n", o.Amounts().Discount().StringFixed(2))
	fmt.Fprintf(&b, "TOTAL: Rs %s\n\n", o.Amounts().Total().StringFixed(2))
	fmt.Fprintf(&b, "Payment Method: %s\n", paymentMethodLabel(o.PaymentMethod()))
	fmt.Fprintf(&b, "Payment Status: %s\n\n", o.PaymentStatus())
	b.WriteString("---\nPlease contact the customer to schedule pickup.")
	return b.String()
}
