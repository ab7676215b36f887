package email

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ErlanBelekov/communication-service/internal/domain"
)

const (
	PlaceholderCustomerName          = "{{Customer.Name}}"
	PlaceholderCustomerEmail         = "{{Customer.Email}}"
	PlaceholderCustomerCensoredEmail = "{{Customer.CensoredEmail}}"
	PlaceholderSenderEmail           = "{{Sender.Email}}"
	PlaceholderDate                  = "{{Date}}"

	dateLayout = "2006-01-02"
)

// Render substitutes the known placeholders in body. It is plain text
// replacement; substituted values are not scanned again, so a customer name
// containing a placeholder is emitted verbatim.
func Render(body string, customer domain.Customer, senderEmail string) string {
	return renderAt(body, customer, senderEmail, time.Now())
}

func renderAt(body string, customer domain.Customer, senderEmail string, at time.Time) string {
	r := strings.NewReplacer(
		PlaceholderCustomerName, customer.Name,
		PlaceholderCustomerEmail, customer.Email,
		PlaceholderCustomerCensoredEmail, Censor(customer.Email),
		PlaceholderSenderEmail, senderEmail,
		PlaceholderDate, at.UTC().Format(dateLayout),
	)
	return r.Replace(body)
}

// Censor masks all but the first character of the local part:
// "alice@example.com" becomes "a****@example.com". Addresses whose local part
// is shorter than two characters, or that have no '@', are returned unchanged.
func Censor(email string) string {
	at := strings.IndexByte(email, '@')
	if at < 0 {
		return email
	}

	local := email[:at]
	if utf8.RuneCountInString(local) < 2 {
		return email
	}

	_, first := utf8.DecodeRuneInString(local)
	return local[:first] + strings.Repeat("*", utf8.RuneCountInString(local[first:])) + email[at:]
}
