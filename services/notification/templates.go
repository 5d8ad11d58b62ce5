package notification

import (
	"bytes"
	"errors"
	"html/template"
	"strconv"

	"skibook/models"
)

// mailStrings are the translatable pieces of the customer confirmation email.
type mailStrings struct {
	Subject    string
	Title      string
	Hello      string
	Thanks     string
	Details    string
	Lesson     string
	Level      string
	Duration   string
	Date       string
	Students   string
	TotalPrice string
	Status     string
	Pending    string
	Contact    string
	Phone      string
	Email      string
	Notes      string
	Questions  string
}

var confirmationStrings = map[string]mailStrings{
	models.LangKa: {
		Subject:    "✅ დაჯავშნის დადასტურება - Ski Instructor",
		Title:      "დაჯავშნა წარმატებით დადასტურდა!",
		Hello:      "გამარჯობა",
		Thanks:     "მადლობა თქვენი დაჯავშნისთვის! ჩვენ მალე დაგიკავშირდებით დადასტურებისთვის.",
		Details:    "დაჯავშნის დეტალები",
		Lesson:     "გაკვეთილი",
		Level:      "დონე",
		Duration:   "ხანგრძლივობა",
		Date:       "თარიღი",
		Students:   "მოსწავლეთა რაოდენობა",
		TotalPrice: "ჯამური ფასი",
		Status:     "სტატუსი",
		Pending:    "მოლოდინში",
		Contact:    "თქვენი საკონტაქტო ინფორმაცია",
		Phone:      "ტელეფონი",
		Email:      "ელ. ფოსტა",
		Notes:      "შენიშვნები",
		Questions:  "თუ რაიმე შეკითხვა გაქვთ, მოგვწერეთ ან დაგვირეკეთ.",
	},
	models.LangEn: {
		Subject:    "✅ Booking Confirmation - Ski Instructor",
		Title:      "Booking Successfully Confirmed!",
		Hello:      "Hello",
		Thanks:     "Thank you for your booking! We will contact you shortly for confirmation.",
		Details:    "Booking Details",
		Lesson:     "Lesson",
		Level:      "Level",
		Duration:   "Duration",
		Date:       "Date",
		Students:   "Number of Students",
		TotalPrice: "Total Price",
		Status:     "Status",
		Pending:    "Pending",
		Contact:    "Your Contact Information",
		Phone:      "Phone",
		Email:      "Email",
		Notes:      "Notes",
		Questions:  "If you have any questions, please write or call us.",
	},
	models.LangRu: {
		Subject:    "✅ Подтверждение бронирования - Ski Instructor",
		Title:      "Бронирование успешно подтверждено!",
		Hello:      "Здравствуйте",
		Thanks:     "Спасибо за ваше бронирование! Мы свяжемся с вами в ближайшее время для подтверждения.",
		Details:    "Детали бронирования",
		Lesson:     "Урок",
		Level:      "Уровень",
		Duration:   "Продолжительность",
		Date:       "Дата",
		Students:   "Количество учеников",
		TotalPrice: "Общая цена",
		Status:     "Статус",
		Pending:    "Ожидание",
		Contact:    "Ваша контактная информация",
		Phone:      "Телефон",
		Email:      "Email",
		Notes:      "Заметки",
		Questions:  "Если у вас есть вопросы, пишите или звоните нам.",
	},
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 20px auto; background-color: white; border-radius: 10px; overflow: hidden; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
    .header { background: linear-gradient(135deg, #0ea5e9 0%, #06b6d4 100%); color: white; padding: 30px; text-align: center; }
    .content { padding: 30px; }
    .booking-details { background-color: #f0f9ff; border-left: 4px solid #0ea5e9; padding: 20px; margin: 20px 0; border-radius: 5px; }
    .detail-row { margin: 10px 0; }
    .detail-label { font-weight: bold; color: #0369a1; }
    .footer { background-color: #f8fafc; padding: 20px; text-align: center; color: #64748b; font-size: 14px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>⛷️ Ski Instructor</h1>
      <p>{{.T.Title}}</p>
    </div>
    <div class="content">
      <p>{{.T.Hello}} {{.Name}},</p>
      <p>{{.T.Thanks}}</p>

      <div class="booking-details">
        <h2>{{.T.Details}}</h2>
        <div class="detail-row"><span class="detail-label">{{.T.Lesson}}:</span> {{.Lesson}}</div>
        <div class="detail-row"><span class="detail-label">{{.T.Level}}:</span> {{.Level}}</div>
        <div class="detail-row"><span class="detail-label">{{.T.Duration}}:</span> {{.Duration}}</div>
        <div class="detail-row"><span class="detail-label">{{.T.Date}}:</span> {{.Date}}</div>
        <div class="detail-row"><span class="detail-label">{{.T.Students}}:</span> {{.Students}}</div>
        <div class="detail-row"><span class="detail-label">{{.T.TotalPrice}}:</span> <strong>{{.TotalPrice}}{{.Currency}}</strong></div>
        <div class="detail-row"><span class="detail-label">{{.T.Status}}:</span> <strong style="color: #f59e0b;">{{.T.Pending}}</strong></div>
      </div>

      <p>{{.T.Contact}}:</p>
      <ul>
        <li><strong>{{.T.Phone}}:</strong> {{.Phone}}</li>
        <li><strong>{{.T.Email}}:</strong> {{.Email}}</li>
      </ul>

      {{if .Notes}}<p><strong>{{.T.Notes}}:</strong> {{.Notes}}</p>{{end}}

      <p>{{.T.Questions}}</p>
    </div>
    <div class="footer">
      <p>© 2026 Ski Instructor</p>
    </div>
  </div>
</body>
</html>`))

var adminTmpl = template.Must(template.New("admin").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
    .container { max-width: 600px; margin: 20px auto; background-color: white; border-radius: 10px; overflow: hidden; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
    .header { background: linear-gradient(135deg, #f59e0b 0%, #ea580c 100%); color: white; padding: 30px; text-align: center; }
    .content { padding: 30px; }
    .booking-details { background-color: #fef3c7; border-left: 4px solid #f59e0b; padding: 20px; margin: 20px 0; border-radius: 5px; }
    .detail-row { margin: 10px 0; }
    .detail-label { font-weight: bold; color: #c2410c; }
    .footer { background-color: #f8fafc; padding: 20px; text-align: center; color: #64748b; font-size: 14px; }
    .alert { background-color: #dcfce7; border: 2px solid #22c55e; border-radius: 8px; padding: 15px; margin: 20px 0; color: #166534; font-weight: bold; text-align: center; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>🔔 ახალი დაჯავშნა!</h1>
      <p>Admin Notification</p>
    </div>
    <div class="content">
      <div class="alert">⚠️ ახალი დაჯავშნა მოვიდა! გთხოვთ დაუკავშირდეთ მომხმარებელს.</div>

      <div class="booking-details">
        <h2>📋 დაჯავშნის დეტალები</h2>
        <div class="detail-row"><span class="detail-label">👤 სახელი:</span> {{.Name}}</div>
        <div class="detail-row"><span class="detail-label">📧 Email:</span> {{.Email}}</div>
        <div class="detail-row"><span class="detail-label">📞 ტელეფონი:</span> {{.Phone}}</div>
        <div class="detail-row"><span class="detail-label">🎿 გაკვეთილი:</span> {{.Lesson}}</div>
        <div class="detail-row"><span class="detail-label">📊 დონე:</span> {{.Level}}</div>
        <div class="detail-row"><span class="detail-label">⏱️ ხანგრძლივობა:</span> {{.Duration}}</div>
        <div class="detail-row"><span class="detail-label">📅 თარიღი:</span> {{.Date}}</div>
        <div class="detail-row"><span class="detail-label">👥 მოსწავლეები:</span> {{.Students}}</div>
        <div class="detail-row"><span class="detail-label">💰 ჯამური ფასი:</span> <strong style="color: #22c55e; font-size: 20px;">{{.TotalPrice}}{{.Currency}}</strong></div>
        {{if .Notes}}<div class="detail-row"><span class="detail-label">📝 შენიშვნები:</span> {{.Notes}}</div>{{end}}
        <div class="detail-row"><span class="detail-label">🌍 ენა:</span> {{.LanguageLabel}}</div>
      </div>
    </div>
    <div class="footer">
      <p>© 2026 Ski Instructor Admin Panel</p>
      <p>🔗 Booking ID: {{.BookingID}}</p>
    </div>
  </div>
</body>
</html>`))

type mailData struct {
	T             mailStrings
	BookingID     string
	Name          string
	Email         string
	Phone         string
	Lesson        string
	Level         string
	Duration      string
	Date          string
	Students      int
	TotalPrice    string
	Currency      string
	Notes         string
	LanguageLabel string
}

var languageLabels = map[string]string{
	models.LangKa: "ქართული 🇬🇪",
	models.LangEn: "English 🇬🇧",
	models.LangRu: "Русский 🇷🇺",
}

func formatDate(booking *models.Booking, lang string) string {
	if lang == models.LangEn {
		return booking.Date.Format("1/2/2006")
	}
	return booking.Date.Format("02.01.2006")
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

func newMailData(booking *models.Booking, lang string) (mailData, error) {
	if booking.Session == nil {
		return mailData{}, errors.New("booking has no session attached")
	}
	return mailData{
		BookingID:     booking.ID,
		Name:          booking.Name,
		Email:         booking.Email,
		Phone:         booking.Phone,
		Lesson:        booking.Session.Title.Get(lang),
		Level:         booking.Session.Level.Get(lang),
		Duration:      booking.Session.Duration.Get(lang),
		Date:          formatDate(booking, lang),
		Students:      booking.Students,
		TotalPrice:    formatPrice(booking.TotalPrice),
		Currency:      booking.Session.Currency,
		Notes:         booking.Notes,
		LanguageLabel: languageLabels[booking.Language],
	}, nil
}

// renderConfirmation builds the customer email in the booking's language.
func renderConfirmation(booking *models.Booking) (subject, body string, err error) {
	lang := booking.Language
	t, ok := confirmationStrings[lang]
	if !ok {
		lang = models.LangKa
		t = confirmationStrings[lang]
	}

	data, err := newMailData(booking, lang)
	if err != nil {
		return "", "", err
	}
	data.T = t

	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return t.Subject, buf.String(), nil
}

// renderAdminAlert builds the operator notification. The lesson text follows
// the customer's language so the admin sees what the customer booked.
func renderAdminAlert(booking *models.Booking) (subject, body string, err error) {
	data, err := newMailData(booking, booking.Language)
	if err != nil {
		return "", "", err
	}

	var buf bytes.Buffer
	if err := adminTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return "🔔 ახალი დაჯავშნა - Ski Instructor Admin", buf.String(), nil
}
