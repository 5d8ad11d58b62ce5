package booking

import (
	"regexp"
	"strings"
	"time"

	"skibook/models"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// normalizeRequest trims free-text fields, lower-cases the email and applies
// the Georgian language default.
func normalizeRequest(req *models.BookingRequest) {
	req.SessionID = strings.TrimSpace(req.SessionID)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.Notes = strings.TrimSpace(req.Notes)
	req.Language = strings.TrimSpace(req.Language)
	if req.Language == "" {
		req.Language = models.LangKa
	}
}

// validateRequest checks field-level constraints and parses the lesson date.
// It returns a ValidationError listing every offending field.
func validateRequest(req models.BookingRequest) (time.Time, error) {
	fields := map[string]string{}

	if req.SessionID == "" {
		fields["session"] = "გაკვეთილი სავალდებულოა"
	}
	if req.Name == "" {
		fields["name"] = "სახელი სავალდებულოა"
	}
	switch {
	case req.Email == "":
		fields["email"] = "ელ. ფოსტა სავალდებულოა"
	case !emailPattern.MatchString(req.Email):
		fields["email"] = "გთხოვთ შეიყვანოთ სწორი ელ. ფოსტა"
	}
	if req.Phone == "" {
		fields["phone"] = "ტელეფონი სავალდებულოა"
	}
	if req.Students < 1 {
		fields["students"] = "მოსწავლეთა რაოდენობა სავალდებულოა"
	}
	if !models.ValidLanguage(req.Language) {
		fields["language"] = "language must be one of ka, en, ru"
	}

	var date time.Time
	if req.Date == "" {
		fields["date"] = "თარიღი სავალდებულოა"
	} else {
		parsed, err := parseDate(req.Date)
		if err != nil {
			fields["date"] = "თარიღის ფორმატი არასწორია"
		} else {
			date = parsed
		}
	}

	if len(fields) > 0 {
		return time.Time{}, &ValidationError{Fields: fields}
	}
	return date, nil
}

// parseDate accepts the two shapes the frontend sends: RFC 3339 timestamps
// and plain calendar dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
