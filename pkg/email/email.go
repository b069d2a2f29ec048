package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/smtp"
	"time"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// ReportEmailData carries the numbers rendered into the daily report email
type ReportEmailData struct {
	ResortName   string
	Date         string
	InvoiceCount int64
	Subtotal     string
	TaxAmount    string
	TotalAmount  string
}

// SendDailySalesReport sends the daily sales summary, optionally attaching
// the Excel workbook for the same day.
func (s *EmailService) SendDailySalesReport(toEmail string, data ReportEmailData, attachment []byte, attachmentName string) error {
	htmlContent, err := s.renderDailyReportEmail(data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Daily Sales Report - %s", data.Date)

	var message []byte
	if len(attachment) > 0 {
		message = s.buildEmailWithAttachment(toEmail, subject, htmlContent, attachment, attachmentName)
	} else {
		message = s.buildHTMLEmail(toEmail, subject, htmlContent)
	}

	return s.sendEmail(toEmail, message)
}

// InvoiceEmailData carries the fields rendered into the invoice email
type InvoiceEmailData struct {
	ResortName    string
	InvoiceNumber string
	InvoiceDate   time.Time
	GuestName     string
	TotalAmount   string
	PaymentStatus string
}

// SendInvoiceEmail sends an invoice summary to the guest
func (s *EmailService) SendInvoiceEmail(toEmail string, data InvoiceEmailData) error {
	htmlContent, err := s.renderInvoiceEmail(data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Invoice %s - %s", data.InvoiceNumber, data.ResortName)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

// buildEmailWithAttachment builds a multipart message with an HTML body and
// a single binary attachment.
func (s *EmailService) buildEmailWithAttachment(to, subject, htmlBody string, attachment []byte, filename string) []byte {
	boundary := "resortbill-mail-boundary"

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	buf.WriteString(htmlBody)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: application/vnd.openxmlformats-officedocument.spreadsheetml.sheet\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n\r\n", filename)

	encoded := base64.StdEncoding.EncodeToString(attachment)
	// RFC 2045 caps encoded lines at 76 characters.
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded)
	buf.WriteString("\r\n")
	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	return buf.Bytes()
}

// renderDailyReportEmail renders the daily sales report email template
func (s *EmailService) renderDailyReportEmail(data ReportEmailData) (string, error) {
	tmpl, err := template.New("daily_report").Parse(dailyReportTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderInvoiceEmail renders the invoice email template
func (s *EmailService) renderInvoiceEmail(data InvoiceEmailData) (string, error) {
	tmpl, err := template.New("invoice").Parse(invoiceTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const dailyReportTemplate = `
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.ResortName}} - Daily Sales Report</h2>
  <p>Sales summary for <strong>{{.Date}}</strong>:</p>
  <table border="1" cellpadding="8" cellspacing="0" style="border-collapse: collapse;">
    <tr><td>Invoices</td><td>{{.InvoiceCount}}</td></tr>
    <tr><td>Subtotal</td><td>{{.Subtotal}}</td></tr>
    <tr><td>Tax</td><td>{{.TaxAmount}}</td></tr>
    <tr><td><strong>Total</strong></td><td><strong>{{.TotalAmount}}</strong></td></tr>
  </table>
  <p>The detailed workbook is attached when available.</p>
</body>
</html>
`

const invoiceTemplate = `
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.ResortName}}</h2>
  <p>Dear {{.GuestName}},</p>
  <p>Please find your invoice summary below:</p>
  <table border="1" cellpadding="8" cellspacing="0" style="border-collapse: collapse;">
    <tr><td>Invoice Number</td><td>{{.InvoiceNumber}}</td></tr>
    <tr><td>Date</td><td>{{.InvoiceDate.Format "02 Jan 2006"}}</td></tr>
    <tr><td>Amount</td><td>{{.TotalAmount}}</td></tr>
    <tr><td>Payment Status</td><td>{{.PaymentStatus}}</td></tr>
  </table>
  <p>Thank you for staying with us.</p>
</body>
</html>
`
