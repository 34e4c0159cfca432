package impl

import (
	"fmt"
	"html"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/util"
)

var paymentMethodLabels = map[entity.PaymentMethod]string{
	entity.PaymentMethodCash:         "Cash on delivery",
	entity.PaymentMethodBankTransfer: "Bank transfer",
}

func paymentLabel(method entity.PaymentMethod) string {
	if label, ok := paymentMethodLabels[method]; ok {
		return label
	}

	return "Not specified"
}

func newOrderMessage(order *entity.Order) string {
	var b strings.Builder
	b.WriteString("🛒 <b>New order</b>\n\n")
	fmt.Fprintf(&b, "<b>Order:</b> <code>%s</code>\n", order.ID)
	writeContact(&b, order.Contact)
	b.WriteString("\n<b>Items:</b>\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "• %s × %d = %s\n",
			html.EscapeString(item.Name), item.Quantity, util.FormatAmount(item.LineTotal()))
	}
	fmt.Fprintf(&b, "\n<b>Subtotal:</b> %s\n", util.FormatAmount(order.Subtotal))
	fmt.Fprintf(&b, "<b>Delivery:</b> %s\n", util.FormatAmount(order.DeliveryFee))
	fmt.Fprintf(&b, "<b>Total:</b> %s\n", util.FormatAmount(order.Total))
	fmt.Fprintf(&b, "<b>Payment:</b> %s\n", paymentLabel(order.PaymentMethod))

	return b.String()
}

func writeContact(b *strings.Builder, contact entity.ContactDetails) {
	fmt.Fprintf(b, "<b>Customer:</b> %s\n", html.EscapeString(contact.Name))
	fmt.Fprintf(b, "<b>Email:</b> %s\n", html.EscapeString(contact.Email))
	fmt.Fprintf(b, "<b>Phone:</b> %s\n", html.EscapeString(contact.Phone))
	fmt.Fprintf(b, "<b>Address:</b> %s\n", html.EscapeString(contact.Address))
	if contact.Notes != "" {
		fmt.Fprintf(b, "<b>Notes:</b> %s\n", html.EscapeString(contact.Notes))
	}
}

func reminderMessage(order *entity.Order, age time.Duration) string {
	return fmt.Sprintf("⏰ <b>Order still awaiting confirmation</b>\n\n"+
		"<b>Order:</b> <code>%s</code>\n<b>Customer:</b> %s\n<b>Phone:</b> %s\n<b>Total:</b> %s\n<b>Placed:</b> %s ago\n",
		order.ID,
		html.EscapeString(order.Contact.Name),
		html.EscapeString(order.Contact.Phone),
		util.FormatAmount(order.Total),
		util.FormatDuration(age),
	)
}

func confirmedMessage(order *entity.Order) string {
	return fmt.Sprintf("✅ <b>Order confirmed</b>\n\n<b>Order:</b> <code>%s</code>\n<b>Customer:</b> %s\n<b>Status:</b> %s\n",
		order.ID, html.EscapeString(order.Contact.Name), order.Status)
}

func paymentProofMessage(order *entity.Order) string {
	proof := ""
	if order.ProofOfPayment != nil {
		proof = *order.ProofOfPayment
	}

	return fmt.Sprintf("💳 <b>Payment proof received</b>\n\n<b>Order:</b> <code>%s</code>\n<b>Customer:</b> %s\n<b>Total:</b> %s\n<b>Proof:</b> %s\n",
		order.ID, html.EscapeString(order.Contact.Name), util.FormatAmount(order.Total), html.EscapeString(proof))
}

func statusChangedMessage(order *entity.Order, from entity.OrderStatus) string {
	return fmt.Sprintf("📦 <b>Order status updated</b>\n\n<b>Order:</b> <code>%s</code>\n<b>Status:</b> %s → %s\n",
		order.ID, from, order.Status)
}
