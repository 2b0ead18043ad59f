// Package notify sends the shop a heads-up when an order lands. Best effort:
// a missing SMTP configuration or a send failure is logged and never blocks
// the submission.
package notify

import (
	"bytes"
	"fmt"
	"net/smtp"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/layensweets/site/internal/domain"
)

func OrderEmail(o *domain.Order) {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	to := os.Getenv("ORDER_NOTIFY_EMAIL")
	if host == "" || port == "" || user == "" || pass == "" || to == "" {
		log.Warn().Msg("SMTP not configured, skipping order notification")
		return
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Subject: Nouvelle commande #%s\r\n", o.ID)
	fmt.Fprintf(&buf, "From: %s\r\n", user)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	buf.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "Client: %s\nTel: %s\nDate: %s\n", o.CustomerName, o.Phone, o.Date)
	buf.WriteString("Items:\n")
	for _, it := range o.Items {
		if it.Notes != "" {
			fmt.Fprintf(&buf, "- %dx %s (%s)\n", it.Quantity, it.Name, it.Notes)
		} else {
			fmt.Fprintf(&buf, "- %dx %s\n", it.Quantity, it.Name)
		}
	}
	fmt.Fprintf(&buf, "Total: %.2f TND\n", o.TotalPrice)
	if o.Notes != "" {
		fmt.Fprintf(&buf, "Notes: %s\n", o.Notes)
	}

	auth := smtp.PlainAuth("", user, pass, host)
	if err := smtp.SendMail(host+":"+port, auth, user, []string{to}, buf.Bytes()); err != nil {
		log.Error().Err(err).Str("order", o.ID).Msg("order notification email failed")
	}
}
