// Seeds the lesson catalog with the standard ski-school offering.
// Run manually against a development database: go run ./tests
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"skibook/config"
	"skibook/database"
	"skibook/models"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	coll := database.Collection("sessions")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear the existing catalog.
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear sessions collection: %v", err)
	}

	now := time.Now()
	sessions := []interface{}{
		models.Session{
			ID: uuid.New().String(),
			Title: models.LocalizedText{
				Ka: "ინდივიდუალური გაკვეთილი",
				En: "Private Lesson",
				Ru: "Индивидуальный урок",
			},
			Duration: models.LocalizedText{Ka: "1 საათი", En: "1 hour", Ru: "1 час"},
			Level: models.LocalizedText{
				Ka: "ყველა დონე",
				En: "All levels",
				Ru: "Все уровни",
			},
			Description: models.LocalizedText{
				Ka: "პერსონალური მიდგომა, ტემპი თქვენზეა მორგებული.",
				En: "One-on-one coaching at your own pace.",
				Ru: "Персональный подход, темп подстроен под вас.",
			},
			Price:       100,
			Currency:    "₾",
			MaxStudents: 2,
			Image:       "⛷️",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		models.Session{
			ID: uuid.New().String(),
			Title: models.LocalizedText{
				Ka: "ჯგუფური გაკვეთილი",
				En: "Group Lesson",
				Ru: "Групповой урок",
			},
			Duration: models.LocalizedText{Ka: "2 საათი", En: "2 hours", Ru: "2 часа"},
			Level: models.LocalizedText{
				Ka: "დამწყები",
				En: "Beginner",
				Ru: "Начинающий",
			},
			Description: models.LocalizedText{
				Ka: "ისწავლეთ მეგობრებთან ერთად, მაქსიმუმ 6 მოსწავლე.",
				En: "Learn together with friends, up to 6 students.",
				Ru: "Учитесь вместе с друзьями, максимум 6 учеников.",
			},
			Price:       50,
			Currency:    "₾",
			MaxStudents: 6,
			Image:       "🎿",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		models.Session{
			ID: uuid.New().String(),
			Title: models.LocalizedText{
				Ka: "ფრირაიდის გაკვეთილი",
				En: "Freeride Lesson",
				Ru: "Урок фрирайда",
			},
			Duration: models.LocalizedText{Ka: "3 საათი", En: "3 hours", Ru: "3 часа"},
			Level: models.LocalizedText{
				Ka: "მოწინავე",
				En: "Advanced",
				Ru: "Продвинутый",
			},
			Description: models.LocalizedText{
				Ka: "მოუმზადებელი ფერდობები გამოცდილ მოთხილამურეებს.",
				En: "Off-piste terrain for experienced skiers.",
				Ru: "Неподготовленные склоны для опытных лыжников.",
			},
			Price:       180,
			Currency:    "₾",
			MaxStudents: 4,
			Image:       "🏔️",
			IsActive:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	res, err := coll.InsertMany(ctx, sessions)
	if err != nil {
		log.Fatalf("Failed to seed sessions: %v", err)
	}
	log.Printf("Seeded %d sessions", len(res.InsertedIDs))
}
