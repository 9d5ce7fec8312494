package utils

import (
	"log"
)

// SendSMS is a stand-in for an external SMS provider. A full
// deployment swaps this for the provider integration; here the code is
// only logged so the sms channel can be exercised end to end.
func SendSMS(recipient, message string) error {
	log.Printf("SMS to %s: %s", recipient, message)
	return nil
}
