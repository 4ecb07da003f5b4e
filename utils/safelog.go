package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
)

// Buyer and volunteer contact details go through these helpers so production
// logs never carry raw personal data. In development everything is logged
// as-is.

var IsProduction = os.Getenv("GIN_MODE") == "release" ||
	os.Getenv("ENVIRONMENT") == "production"

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phoneRegex = regexp.MustCompile(`(\+\d{1,3}[\s.-]?)?\(?\d{2,4}\)?[\s.-]?\d{2,4}[\s.-]?\d{2,4}[\s.-]?\d{0,4}`)
	uuidRegex  = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// MaskString masks emails, phone numbers and full UUIDs in a string.
func MaskString(input string) string {
	if !IsProduction {
		return input
	}

	result := emailRegex.ReplaceAllString(input, "***@***.***")
	result = phoneRegex.ReplaceAllString(result, "***")
	result = uuidRegex.ReplaceAllStringFunc(result, func(id string) string {
		return id[:8] + "..."
	})
	return result
}

func MaskEmail(email string) string {
	if !IsProduction {
		return email
	}
	return "***@***.***"
}

func MaskID(id string) string {
	if !IsProduction {
		return id
	}
	if len(id) <= 8 {
		return "***"
	}
	return id[:8] + "..."
}

// SafeLog logs a formatted message with sensitive data masked.
func SafeLog(format string, args ...interface{}) {
	log.Print(MaskString(fmt.Sprintf(format, args...)))
}

// LogAuthAction logs a staff login attempt.
func LogAuthAction(action, email string, success bool) {
	status := "SUCCESS"
	if !success {
		status = "FAILED"
	}
	log.Printf("[Auth] %s - Email: %s Status: %s", action, MaskEmail(email), status)
}

// LogOrderAction logs a checkout or delivery event without buyer details.
func LogOrderAction(action, orderID, buyerEmail string) {
	log.Printf("[Order] %s - Order: %s Buyer: %s", action, MaskID(orderID), MaskEmail(buyerEmail))
}

// LogContactAction logs a contact form submission.
func LogContactAction(senderEmail string, delivered bool) {
	status := "SENT"
	if !delivered {
		status = "FAILED"
	}
	log.Printf("[Contact] Submission - From: %s Email: %s", MaskEmail(senderEmail), status)
}
