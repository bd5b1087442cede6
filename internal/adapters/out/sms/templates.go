package sms

import (
	"fmt"
	"strings"

	"github.com/SahilRouthan/Devbhoomi-Drycleaner/internal/core/domain/model/order"
)

// statusLines maps each fulfillment status to the line customers receive in
// a status update text.
var statusLines = map[order.Status]string{
	order.StatusConfirmed:      "Your order has been confirmed. We will collect your items soon.",
	order.StatusPickedUp:       "Your items have been picked up and are being processed.",
	order.StatusInProcess:      "Your items are being cleaned and processed.",
	order.StatusReady:          "Great news! Your items are ready for delivery.",
	order.StatusOutForDelivery: "Your order is out for delivery. Please be available.",
	order.StatusDelivered:      "Your order has been delivered. Thank you for choosing us!",
	order.StatusCancelled:      "Your order has been cancelled. Contact us for details.",
}

func (c *TwilioChannel) customerConfirmationBody(o *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order Confirmed!\n\n")
	fmt.Fprintf(&b, "Hello %s,\n\n", o.Customer().Name())
	fmt.Fprintf(&b, "Your order #%s has been received.\n\n", o.ID())
	fmt.Fprintf(&b, "Items: %d items\n", len(o.Items()))
	fmt.Fprintf(&b, "Total: Rs %s\n", o.Amounts().Total().StringFixed(2))
	fmt.Fprintf(&b, "Address: %s\n\n", o.PickupAddress())
	if o.PaymentMethod() == order.PaymentMethodCOD {
		b.WriteString("Payment: Cash on Delivery\n\n")
	} else {
		b.WriteString("Payment: Paid Online\n\n")
	}
	fmt.Fprintf(&b, "We'll contact you soon for pickup!\n\n")
	fmt.Fprintf(&b, "- %s\nCall: %s", c.cfg.BusinessName, c.cfg.BusinessPhone)
	return b.String()
}

func (c *TwilioChannel) operatorAlertBody(o *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "NEW ORDER!\n\n")
	fmt.Fprintf(&b, "Order #%s\n\n", o.ID())
	fmt.Fprintf(&b, "Customer: %s\n", o.Customer().Name())
	fmt.Fprintf(&b, "Phone: %s\n", o.Customer().Phone())
	fmt.Fprintf(&b, "Items: %d items\n", len(o.Items()))
	fmt.Fprintf(&b, "Total: Rs %s\n", o.Amounts().Total().StringFixed(2))
	fmt.Fprintf(&b, "Payment: %s\n\n", o.PaymentMethod())
	fmt.Fprintf(&b, "Address:\n%s\n\n", o.PickupAddress())
	b.WriteString("Check admin panel for details.")
	return b.String()
}

func (c *TwilioChannel) statusUpdateBody(o *order.Order) string {
	line, ok := statusLines[o.Status()]
	if !ok {
		line = fmt.Sprintf("Order status updated to: %s", o.Status())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Order Update - #%s\n\n", o.ID())
	fmt.Fprintf(&b, "Hi %s,\n\n", o.Customer().Name())
	fmt.Fprintf(&b, "%s\n\n", line)
	fmt.Fprintf(&b, "Track your order: %s\n\n", c.cfg.WebsiteURL)
	fmt.Fprintf(&b, "- %s\nCall: %s", c.cfg.BusinessName, c.cfg.BusinessPhone)
	return b.String()
}

func (c *TwilioChannel) deliveryReminderBody(o *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Delivery Reminder\n\n")
	fmt.Fprintf(&b, "Hi %s,\n\n", o.Customer().Name())
	fmt.Fprintf(&b, "Your order #%s is out for delivery.\n\n", o.ID())
	fmt.Fprintf(&b, "Please be available at:\n%s\n\n", o.DeliveryAddress())
	fmt.Fprintf(&b, "Amount: Rs %s\n", o.Amounts().Total().StringFixed(2))
	if o.PaymentMethod() == order.PaymentMethodCOD && o.PaymentStatus() != order.PaymentStatusPaid {
		b.WriteString("Cash on Delivery - Please keep exact change\n\n")
	} else {
		b.WriteString("Already paid\n\n")
	}
	fmt.Fprintf(&b, "- %s\nCall: %s", c.cfg.BusinessName, c.cfg.BusinessPhone)
	return b.String()
}
