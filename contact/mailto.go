// Package contact turns contact form submissions into mailto URIs.
package contact

import (
	"net/url"
	"strings"
)

const placeholder = "N/A"

// Subject line of every generated message.
const Subject = "New message from portfolio"

// QueryEscape output mapped to encodeURIComponent's: spaces as %20, and
// the sub-delimiters !'()* left as is.
var componentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Raw contact form fields, as typed by the visitor.
type Form struct {
	Name    string
	Email   string
	Message string
}

// Returns a copy with surrounding whitespace removed from every field.
func (self Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(self.Name),
		Email:   strings.TrimSpace(self.Email),
		Message: strings.TrimSpace(self.Message),
	}
}

// The plain text mail body. Empty name or email render as N/A,
// an empty message stays empty.
func (self Form) Body() string {
	form := self.Trimmed()
	var body strings.Builder
	body.WriteString("Name: ")
	body.WriteString(orPlaceholder(form.Name))
	body.WriteString("\nEmail: ")
	body.WriteString(orPlaceholder(form.Email))
	body.WriteString("\n\n")
	body.WriteString(form.Message)
	return body.String()
}

// Builds the mailto URI for the given form. Subject and body are
// percent-encoded the way encodeURIComponent does it, so spaces are
// %20 rather than '+', since mail clients do not decode '+' in mailto
// headers.
func MailtoURI(recipient string, form Form) string {
	return "mailto:" + strings.TrimSpace(recipient) +
		"?subject=" + EncodeComponent(Subject) +
		"&body=" + EncodeComponent(form.Body())
}

// Percent-encodes everything except A-Z a-z 0-9 and -_.!~*'().
func EncodeComponent(value string) string {
	return componentFixups.Replace(url.QueryEscape(value))
}

func orPlaceholder(value string) string {
	if value == "" {
		return placeholder
	}
	return value
}
