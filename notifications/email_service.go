package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "pgstay-server/configs"
)

type BrevoService struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

var EmailClient *BrevoService

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

func InitEmailService() {
	apiKey := config.Config("BREVO_API_KEY")
	senderEmail := config.Config("EMAIL_SENDER")
	senderName := config.Config("EMAIL_SENDER_NAME")

	if apiKey == "" || senderEmail == "" || senderName == "" {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
		EmailClient = nil
		return
	}

	EmailClient = &BrevoService{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
	}
	log.Println("✅ Email service initialized successfully.")
}

func (s *BrevoService) send(toEmail, toName, subject, htmlContent string) error {
	url := "https://api.brevo.com/v3/smtp/email"

	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}

	recipientName := toName
	if recipientName == "" {
		recipientName = toEmail[:strings.Index(toEmail, "@")]
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.SenderName, "email": s.SenderEmail},
		To:          []map[string]string{{"email": toEmail, "name": recipientName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", s.APIKey)
	req.Header.Set("content-type", "application/json")

	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		log.Printf("Brevo API error: Status %d, Body: %s", resp.StatusCode, string(bodyBytes))
		return fmt.Errorf("failed to send email via Brevo: %s", string(bodyBytes))
	}

	return nil
}

// SendEmail delivers an email and logs the outcome. Callers that must not
// block run it in a goroutine.
func SendEmail(toName, toEmail, subject, htmlContent string) error {
	if EmailClient == nil {
		log.Println("Email client not initialized, skipping email send.")
		return fmt.Errorf("email client not initialized")
	}

	if err := EmailClient.send(toEmail, toName, subject, htmlContent); err != nil {
		log.Printf("🔥 Failed to send email to %s: %v", toEmail, err)
		return err
	}

	log.Printf("✅ Email sent successfully to %s", toEmail)
	return nil
}

func SendOtpEmail(toName, toEmail, otpCode string) error {
	subject := "Your PgStay verification code"
	htmlContent := fmt.Sprintf(`
		<h2>Email Verification</h2>
		<p>Hi %s,</p>
		<p>Your verification code is:</p>
		<h1 style="letter-spacing: 4px;">%s</h1>
		<p>The code expires in 5 minutes. If you did not request it, ignore this email.</p>
	`, toName, otpCode)
	return SendEmail(toName, toEmail, subject, htmlContent)
}

func SendWelcomeEmail(toName, toEmail string) {
	subject := "Welcome to PgStay!"
	htmlContent := fmt.Sprintf(`
		<h2>Welcome aboard, %s!</h2>
		<p>Your email has been verified and your account is ready.</p>
		<p>Start exploring PGs and hostels near you.</p>
	`, toName)
	if err := SendEmail(toName, toEmail, subject, htmlContent); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", toEmail, err)
	}
}

func SendBookingStatusEmail(toName, toEmail, propertyName, status string) {
	subject := fmt.Sprintf("Booking update for %s", propertyName)
	htmlContent := fmt.Sprintf(`
		<h2>Booking Update</h2>
		<p>Hi %s,</p>
		<p>Your booking for <strong>%s</strong> is now <strong>%s</strong>.</p>
		<p>Open the app for details.</p>
	`, toName, propertyName, status)
	if err := SendEmail(toName, toEmail, subject, htmlContent); err != nil {
		log.Printf("Failed to send booking status email to %s: %v", toEmail, err)
	}
}

func SendPaymentReceiptEmail(toName, toEmail, propertyName string, amount float64) {
	subject := "Payment received"
	htmlContent := fmt.Sprintf(`
		<h2>Payment Receipt</h2>
		<p>Hi %s,</p>
		<p>We received your payment of <strong>₹%.2f</strong> for <strong>%s</strong>.</p>
	`, toName, amount, propertyName)
	if err := SendEmail(toName, toEmail, subject, htmlContent); err != nil {
		log.Printf("Failed to send payment receipt to %s: %v", toEmail, err)
	}
}
