package models

import "time"

// Supported interface languages.
const (
	LangKa = "ka"
	LangEn = "en"
	LangRu = "ru"
)

// ValidLanguage reports whether lang is one of the supported language codes.
func ValidLanguage(lang string) bool {
	return lang == LangKa || lang == LangEn || lang == LangRu
}

// LocalizedText holds the three language variants every catalog text carries.
// All three are required when a session is created.
type LocalizedText struct {
	Ka string `bson:"ka" json:"ka"`
	En string `bson:"en" json:"en"`
	Ru string `bson:"ru" json:"ru"`
}

// Get returns the variant for lang, falling back to Georgian.
func (t LocalizedText) Get(lang string) string {
	switch lang {
	case LangEn:
		return t.En
	case LangRu:
		return t.Ru
	default:
		return t.Ka
	}
}

// Complete reports whether all three variants are present.
func (t LocalizedText) Complete() bool {
	return t.Ka != "" && t.En != "" && t.Ru != ""
}

// Session is one bookable lesson type in the catalog.
type Session struct {
	ID          string        `bson:"id" json:"id"`
	Title       LocalizedText `bson:"title" json:"title"`
	Duration    LocalizedText `bson:"duration" json:"duration"`
	Price       float64       `bson:"price" json:"price"`
	Currency    string        `bson:"currency" json:"currency"`
	Level       LocalizedText `bson:"level" json:"level"`
	MaxStudents int           `bson:"maxStudents" json:"maxStudents"`
	Description LocalizedText `bson:"description" json:"description"`
	Image       string        `bson:"image" json:"image"`
	IsActive    bool          `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// SessionInput is the payload for creating or replacing a catalog session.
type SessionInput struct {
	Title       LocalizedText `json:"title"`
	Duration    LocalizedText `json:"duration"`
	Price       float64       `json:"price"`
	Currency    string        `json:"currency"`
	Level       LocalizedText `json:"level"`
	MaxStudents int           `json:"maxStudents"`
	Description LocalizedText `json:"description"`
	Image       string        `json:"image"`
	IsActive    *bool         `json:"isActive"`
}
