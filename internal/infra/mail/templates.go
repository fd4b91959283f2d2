package mail

import (
	"html/template"
	"strings"

	"github.com/noshecambridge/booking-service/internal/domain"
)

// Email bodies mirror the site's booking confirmation styling.

var customerTemplate = template.Must(template.New("customer").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #F5EBE0; color: #333;">
  <h1 style="color: #8B2635; text-align: center;">Booking Confirmation</h1>
  <p>Dear <strong>{{.Name}}</strong>,</p>
  <p>Thank you for booking a table at {{.Restaurant}}. We're excited to welcome you!</p>
  <div style="background-color: #fff; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <h2 style="color: #4A5D23; margin-top: 0;">Your Reservation Details:</h2>
    <p><strong>Date:</strong> {{.Date}}</p>
    <p><strong>Time:</strong> {{.Time}}</p>
    <p><strong>Number of guests:</strong> {{.Guests}}</p>
    {{if .SpecialRequests}}<p><strong>Special Requests:</strong> {{.SpecialRequests}}</p>{{end}}
  </div>
  <p>If you need to make any changes to your reservation, please call us at <strong>{{.Phone}}</strong>.</p>
  <p>We look forward to serving you with our delicious Afghan cuisine and Kenza coffee!</p>
  <p>Best regards,<br><strong>{{.Restaurant}} Team</strong></p>
</div>`))

var managerTemplate = template.Must(template.New("manager").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #F5EBE0; color: #333;">
  <h1 style="color: #8B2635; text-align: center;">New Booking Alert</h1>
  <p>A new booking has been made at {{.Restaurant}}:</p>
  <div style="background-color: #fff; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <h2 style="color: #4A5D23; margin-top: 0;">Booking Details:</h2>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{.GuestPhone}}</p>
    <p><strong>Date:</strong> {{.Date}}</p>
    <p><strong>Time:</strong> {{.Time}}</p>
    <p><strong>Number of guests:</strong> {{.Guests}}</p>
    {{if .SpecialRequests}}<p><strong>Special Requests:</strong> {{.SpecialRequests}}</p>{{end}}
  </div>
  <p>Please ensure the table is prepared accordingly.</p>
</div>`))

type emailData struct {
	Restaurant      string
	Phone           string
	Name            string
	Email           string
	GuestPhone      string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
}

func newEmailData(cfg Config, booking *domain.Booking) emailData {
	requests := ""
	if booking.SpecialRequests != nil {
		requests = *booking.SpecialRequests
	}
	return emailData{
		Restaurant:      cfg.RestaurantName,
		Phone:           cfg.RestaurantPhone,
		Name:            booking.Name,
		Email:           booking.Email,
		GuestPhone:      booking.Phone,
		Date:            booking.Date.Format("Monday, 2 January 2006"),
		Time:            booking.Slot().String(),
		Guests:          booking.Guests,
		SpecialRequests: requests,
	}
}

func renderCustomerEmail(cfg Config, booking *domain.Booking) (string, error) {
	var b strings.Builder
	if err := customerTemplate.Execute(&b, newEmailData(cfg, booking)); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderManagerEmail(cfg Config, booking *domain.Booking) (string, error) {
	var b strings.Builder
	if err := managerTemplate.Execute(&b, newEmailData(cfg, booking)); err != nil {
		return "", err
	}
	return b.String(), nil
}
