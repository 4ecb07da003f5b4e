package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"time"

	"github.com/artistycode/studio-api/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// EmailService delivers transactional mail through the Resend HTTP API. All
// sends are fire-and-forget from the handlers' point of view: a failed send
// only surfaces as a toast flag, never as a failed mutation.
type EmailService struct {
	apiKey     string
	fromEmail  string
	adminEmail string
	endpoint   string
	client     *http.Client
}

func NewEmailService() *EmailService {
	fromEmail := os.Getenv("FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = "Artisty Studio <noreply@artisty.studio>"
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "contact@artisty.studio"
	}

	return &EmailService{
		apiKey:     os.Getenv("RESEND_API_KEY"),
		fromEmail:  fromEmail,
		adminEmail: adminEmail,
		endpoint:   resendEndpoint,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

var contactNoticeTemplate = template.Must(template.New("contactNotice").Parse(`
<div style="max-width:600px;margin:auto;font-family:Arial,sans-serif;">
  <div style="background-color:#000319;padding:24px;text-align:center;">
    <h1 style="color:#ffffff;margin:0;font-size:22px;">Artisty Studio</h1>
    <p style="color:#bbbbbb;margin:4px 0 0;font-size:14px;">New Contact Form Submission</p>
  </div>
  <div style="padding:24px;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}N/A{{end}}</p>
    <p style="white-space:pre-line;"><strong>Message:</strong> {{.Message}}</p>
  </div>
</div>
`))

var contactReplyTemplate = template.Must(template.New("contactReply").Parse(`
<div style="max-width:600px;margin:auto;font-family:Arial,sans-serif;">
  <div style="background-color:#000319;padding:24px;text-align:center;">
    <h1 style="color:#ffffff;margin:0;font-size:22px;">Artisty Studio</h1>
  </div>
  <div style="padding:24px;">
    <p>Hi {{.Name}},</p>
    <p>Thank you for reaching out to <strong>Artisty Studio</strong>. We have received
    your message and our team will get back to you shortly.</p>
    <p style="font-size:14px;color:#777;">Your submitted message:</p>
    <blockquote style="padding:12px 16px;background-color:#f9f9f9;border-left:4px solid #000319;font-style:italic;">{{.Message}}</blockquote>
    <p>Best regards,<br/>Team Artisty Studio</p>
  </div>
</div>
`))

var orderNoticeTemplate = template.Must(template.New("orderNotice").Parse(`
<div style="max-width:600px;margin:auto;font-family:Arial,sans-serif;">
  <div style="background-color:#000319;padding:24px;text-align:center;">
    <h1 style="color:#ffffff;margin:0;font-size:22px;">Artisty Studio - New Order</h1>
  </div>
  <div style="padding:24px;">
    <p><strong>Resource:</strong> {{.ResourceTitle}}</p>
    <p><strong>Buyer Name:</strong> {{.BuyerName}}</p>
    <p><strong>Email:</strong> {{.BuyerEmail}}</p>
    <p><strong>Phone Number:</strong> {{.BuyerNumber}}</p>
    <p><strong>Price:</strong> {{if .IsFree}}Free{{else}}{{.Price}}{{end}}</p>
    {{if .Note}}<p><strong>Note:</strong> {{.Note}}</p>{{end}}
    <p style="margin-top:24px;">Please follow up as soon as possible.</p>
  </div>
</div>
`))

var orderStatusTemplate = template.Must(template.New("orderStatus").Parse(`
<div style="max-width:600px;margin:auto;font-family:Arial,sans-serif;">
  <div style="background-color:#000319;padding:24px;text-align:center;">
    <h1 style="color:#ffffff;margin:0;font-size:22px;">Artisty Studio</h1>
  </div>
  <div style="padding:24px;">
    <p>Hi,</p>
    <p>Your order status has been updated to <strong>{{.Status}}</strong>.</p>
    {{if .URL}}<p>Your download: <a href="{{.URL}}">{{.URL}}</a></p>{{end}}
    <p>Best regards,<br/>Team Artisty Studio</p>
  </div>
</div>
`))

// SendContactNotice mails the submission to the studio inbox and an
// auto-reply to the sender.
func (s *EmailService) SendContactNotice(req models.ContactRequest) error {
	notice, err := render(contactNoticeTemplate, req)
	if err != nil {
		return err
	}
	if err := s.send(s.adminEmail, fmt.Sprintf("New Contact Form Submission - %s", req.Name), notice); err != nil {
		return err
	}

	reply, err := render(contactReplyTemplate, req)
	if err != nil {
		return err
	}
	return s.send(req.Email, fmt.Sprintf("Thanks for contacting us, %s!", req.Name), reply)
}

// SendOrderNotice notifies the studio inbox about a new checkout.
func (s *EmailService) SendOrderNotice(order models.OrderItem) error {
	body, err := render(orderNoticeTemplate, order)
	if err != nil {
		return err
	}
	return s.send(s.adminEmail, fmt.Sprintf("New Order Received from %s", order.BuyerName), body)
}

// SendOrderStatusUpdate mails the buyer when an order is marked delivered or
// reverted.
func (s *EmailService) SendOrderStatusUpdate(buyerEmail, orderID, status, url string) error {
	body, err := render(orderStatusTemplate, struct {
		Status string
		URL    string
	}{Status: status, URL: url})
	if err != nil {
		return err
	}
	return s.send(buyerEmail, fmt.Sprintf("Your Order Status Update - Order #%s", orderID), body)
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *EmailService) send(to, subject, htmlBody string) error {
	if s.apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	payload := emailPayload{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", s.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("email API returned status: %d", resp.StatusCode)
	}

	return nil
}
