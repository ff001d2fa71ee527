package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendBookingConfirmation(toEmail, reference, activityName, slot string) error
	SendBookingCancellation(toEmail, reference, refundNote string) error
	SendWaiverSigningLink(toEmail, participantName, waiverCode string) error
	SendWaiverConfirmation(toEmail, participantName, waiverCode string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("CLIENT_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) send(toEmail, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send %q to %s: %v\n", subject, toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] %q sent to %s\n", subject, toEmail)
	return nil
}

func (s *emailService) SendBookingConfirmation(toEmail, reference, activityName, slot string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your booking is confirmed!</h2>
			<p>Activity: <b>%s</b></p>
			<p>When: <b>%s</b></p>
			<p>Your booking reference is:</p>
			<h1 style="color: #4CAF50; letter-spacing: 3px;">%s</h1>
			<p>Use this reference to look up your booking in the customer portal.</p>
		</div>
	`, activityName, slot, reference)
	return s.send(toEmail, "Booking Confirmed", body)
}

func (s *emailService) SendBookingCancellation(toEmail, reference, refundNote string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Booking %s cancelled</h2>
			<p>%s</p>
			<p>If you didn't request this, please contact the venue.</p>
		</div>
	`, reference, refundNote)
	return s.send(toEmail, "Booking Cancelled", body)
}

func (s *emailService) SendWaiverSigningLink(toEmail, participantName, waiverCode string) error {
	signLink := fmt.Sprintf("%s/waiver/sign?code=%s", s.frontendURL, waiverCode)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s, your waiver is ready to sign</h2>
			<p>Click the button below to review and sign your waiver:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Sign Waiver</a>
			<p>Or copy this link:</p>
			<p>%s</p>
		</div>
	`, participantName, signLink, signLink)
	return s.send(toEmail, "Please Sign Your Waiver", body)
}

func (s *emailService) SendWaiverConfirmation(toEmail, participantName, waiverCode string) error {
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thanks %s, your waiver is signed</h2>
			<p>Your waiver code is:</p>
			<h1 style="color: #4CAF50; letter-spacing: 3px;">%s</h1>
			<p>Show this code at check-in.</p>
		</div>
	`, participantName, waiverCode)
	return s.send(toEmail, "Waiver Signed", body)
}
