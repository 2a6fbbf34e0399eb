package notification

import (
	"context"
	"fmt"
	"strings"

	"tidyhouse/models"
)

// BookingMailer composes and sends the transactional emails around a
// booking: customer confirmation, business alert, and contact form mail.
type BookingMailer struct {
	Sender        EmailSender
	BusinessName  string
	BusinessEmail string
	BusinessPhone string
}

func formatAddOns(addOns []string) string {
	if len(addOns) == 0 {
		return "None"
	}
	return strings.Join(addOns, ", ")
}

// SendBookingConfirmation emails the customer after payment completes.
func (m *BookingMailer) SendBookingConfirmation(ctx context.Context, booking models.Booking, amountPaid string) error {
	html := fmt.Sprintf(`
		<h1>Booking Confirmed!</h1>
		<p>Hi %s,</p>
		<p>Thank you for booking with %s. We have received your payment of <strong>$%s</strong>.</p>

		<h3>Your Booking Details:</h3>
		<ul>
			<li><strong>Date:</strong> %s (%s)</li>
			<li><strong>Service:</strong> %s cleaning, %s home</li>
			<li><strong>Address:</strong> %s</li>
			<li><strong>Extras:</strong> %s</li>
		</ul>

		<p>We will see you soon!</p>
		<p>- The %s Team</p>`,
		booking.Name, m.BusinessName, amountPaid,
		booking.PreferredDate, booking.TimeSlot,
		booking.CleaningType, booking.HomeSize,
		booking.Address, formatAddOns(booking.AddOns),
		m.BusinessName)

	return m.Sender.Send(ctx, EmailMessage{
		To:      booking.Email,
		ToName:  booking.Name,
		Subject: fmt.Sprintf("Booking Confirmed: %s", m.BusinessName),
		Body:    fmt.Sprintf("Your %s booking for %s is confirmed.", m.BusinessName, booking.PreferredDate),
		HTML:    html,
	})
}

// SendBusinessAlert emails the business owner about a new paid booking.
func (m *BookingMailer) SendBusinessAlert(ctx context.Context, booking models.Booking, amountPaid string) error {
	html := fmt.Sprintf(`
		<h1>You have a new job!</h1>
		<p><strong>Customer:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Address:</strong> %s</p>
		<p><strong>Date:</strong> %s (%s)</p>
		<p><strong>Service:</strong> %s cleaning, %s home, %d bathroom(s)</p>
		<p><strong>Extras:</strong> %s</p>
		<p><strong>Paid:</strong> $%s</p>`,
		booking.Name, booking.Phone, booking.Email, booking.Address,
		booking.PreferredDate, booking.TimeSlot,
		booking.CleaningType, booking.HomeSize, booking.Bathrooms,
		formatAddOns(booking.AddOns), amountPaid)

	return m.Sender.Send(ctx, EmailMessage{
		To:      m.BusinessEmail,
		ToName:  m.BusinessName,
		Subject: fmt.Sprintf("NEW BOOKING: %s", booking.Name),
		Body:    fmt.Sprintf("New booking from %s on %s, $%s paid.", booking.Name, booking.PreferredDate, amountPaid),
		HTML:    html,
	})
}

// SendContactMessages forwards a contact form submission to the business and
// sends the customer an acknowledgement.
func (m *BookingMailer) SendContactMessages(ctx context.Context, msg models.ContactMessage) error {
	phone := msg.Phone
	if phone == "" {
		phone = "Not provided"
	}

	ownerHTML := fmt.Sprintf(`
		<h2>New Client Message</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p style="white-space: pre-wrap;">%s</p>`,
		msg.Name, msg.Email, phone, msg.Message)

	if err := m.Sender.Send(ctx, EmailMessage{
		To:      m.BusinessEmail,
		ToName:  m.BusinessName,
		Subject: fmt.Sprintf("New Contact Form Message — %s", m.BusinessName),
		Body:    fmt.Sprintf("New contact message from %s <%s>: %s", msg.Name, msg.Email, msg.Message),
		HTML:    ownerHTML,
	}); err != nil {
		return err
	}

	customerHTML := fmt.Sprintf(`
		<h2>Thank you for contacting us, %s!</h2>
		<p>We've received your message and will get back to you within 24 hours.</p>
		<p><strong>Your Message:</strong></p>
		<p style="white-space: pre-wrap;">%s</p>
		<hr/>
		<p><strong>%s</strong><br/>Email: %s<br/>Phone: %s</p>`,
		msg.Name, msg.Message, m.BusinessName, m.BusinessEmail, m.BusinessPhone)

	return m.Sender.Send(ctx, EmailMessage{
		To:      msg.Email,
		ToName:  msg.Name,
		Subject: fmt.Sprintf("We Received Your Message — %s", m.BusinessName),
		Body:    fmt.Sprintf("Thanks %s, we received your message and will reply within 24 hours.", msg.Name),
		HTML:    customerHTML,
	})
}
