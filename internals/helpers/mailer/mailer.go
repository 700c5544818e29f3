package mailer

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Fire-and-forget transactional mail. Failures are logged, never surfaced:
// no primary flow may abort because a notification could not be sent.

var (
	client   *sendgrid.Client
	from     *sgmail.Email
	disabled bool
)

func Init(apiKey, fromName, fromAddress string) {
	if apiKey == "" || fromAddress == "" {
		disabled = true
		log.Println("⚠️ SendGrid not configured, mail sending disabled")
		return
	}
	client = sendgrid.NewSendClient(apiKey)
	from = sgmail.NewEmail(fromName, fromAddress)
}

// Send dispatches asynchronously.
func Send(toName, toAddress, subject, plain, html string) {
	if disabled {
		log.Printf("[MAIL] (disabled) to=%s subject=%q", toAddress, subject)
		return
	}
	go func() {
		if html == "" {
			html = "<p>" + plain + "</p>"
		}
		msg := sgmail.NewSingleEmail(from, subject, sgmail.NewEmail(toName, toAddress), plain, html)
		resp, err := client.Send(msg)
		if err != nil {
			log.Printf("[MAIL] send failed to=%s: %v", toAddress, err)
			return
		}
		if resp.StatusCode >= 400 {
			log.Printf("[MAIL] send rejected to=%s status=%d body=%s", toAddress, resp.StatusCode, resp.Body)
		}
	}()
}

// SendOTP emails a one-time code.
func SendOTP(toAddress, code string) {
	Send("", toAddress,
		"Your verification code",
		fmt.Sprintf("Your one-time verification code is %s. It expires in 5 minutes.", code),
		fmt.Sprintf("<p>Your one-time verification code is <b>%s</b>. It expires in 5 minutes.</p>", code),
	)
}
