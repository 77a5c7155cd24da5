package mail

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Akanksha212004/twiller-2.0/internal/domain"
)

// LoginOTP is the one-time code verification mail.
func LoginOTP(to, code string) Message {
	return Message{
		To:      to,
		Subject: "Login OTP Verification",
		HTML:    fmt.Sprintf("<h2>Your Login OTP: %s</h2>", code),
	}
}

// PasswordReset carries a freshly generated temporary password.
func PasswordReset(to, password string) Message {
	return Message{
		To:      to,
		Subject: "Password Reset",
		HTML:    fmt.Sprintf("<h3>%s</h3>", password),
	}
}

// Invoice summarizes a subscription purchase: plan, price and quota,
// with a generated reference number.
func Invoice(to string, plan domain.Plan) Message {
	quota := "Unlimited"
	if q := plan.Quota(); q != domain.UnlimitedTweets {
		quota = fmt.Sprintf("%d", q)
	}
	html := fmt.Sprintf(
		"<h2>Plan: %s</h2><p>Invoice: %s</p><p>Amount: ₹%d</p><p>Tweets: %s</p>",
		strings.ToUpper(string(plan)), uuid.NewString(), plan.Price(), quota,
	)
	return Message{To: to, Subject: "Subscription Invoice", HTML: html}
}
