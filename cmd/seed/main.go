package main

import (
	"log"
	"os"
	"time"

	"staybook/internal/database"
	"staybook/internal/domain"
)

// Seeds a demo hierarchy with a few users and requests in every
// lifecycle state. Intended for local development against SQLite.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "staybook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	for _, table := range []string{
		"assigned_accommodations",
		"team_members",
		"requests",
		"beds",
		"rooms",
		"flats",
		"apartments",
		"cities",
		"users",
	} {
		db.Exec("DELETE FROM " + table)
	}

	log.Println("Creating hierarchy...")
	berlin := domain.City{Name: "Berlin"}
	munich := domain.City{Name: "Munich"}
	db.Create(&berlin)
	db.Create(&munich)

	towerA := domain.Apartment{Name: "Tower A", CityID: berlin.ID, GoogleMapLink: "https://maps.example/tower-a"}
	riverside := domain.Apartment{Name: "Riverside", CityID: munich.ID}
	db.Create(&towerA)
	db.Create(&riverside)

	flat3 := domain.Flat{Name: "Flat 3", ApartmentID: towerA.ID}
	flat7 := domain.Flat{Name: "Flat 7", ApartmentID: riverside.ID}
	db.Create(&flat3)
	db.Create(&flat7)

	room12 := domain.Room{Name: "Room 12", FlatID: flat3.ID, Beds: 2}
	room2 := domain.Room{Name: "Room 2", FlatID: flat7.ID, Beds: 1}
	db.Create(&room12)
	db.Create(&room2)

	db.Create(&domain.Bed{Name: "Bed 1", RoomID: room12.ID})
	db.Create(&domain.Bed{Name: "Bed 2", RoomID: room12.ID, IsBooked: true})
	db.Create(&domain.Bed{Name: "Bed 1", RoomID: room2.ID})

	log.Println("Creating users...")
	alice := domain.User{Name: "Alice Meyer", Email: "alice@corp.example", Role: "employee"}
	bob := domain.User{Name: "Bob Tanaka", Email: "bob@corp.example", Role: "admin"}
	db.Create(&alice)
	db.Create(&bob)

	log.Println("Creating requests...")
	now := time.Now()

	pending := domain.Request{
		UserID:      alice.ID,
		CityID:      berlin.ID,
		BookingType: domain.BookingIndividual,
		DateFrom:    now.AddDate(0, 0, 7),
		DateTo:      now.AddDate(0, 0, 10),
		CheckIn:     now,
		CheckOut:    now,
		Status:      domain.RequestPending,
		Timestamp:   now,
	}
	db.Create(&pending)

	processed := now.Add(-24 * time.Hour)
	approved := domain.Request{
		UserID:      alice.ID,
		CityID:      berlin.ID,
		BookingType: domain.BookingTeam,
		DateFrom:    now.AddDate(0, 0, -3),
		DateTo:      now.AddDate(0, 0, 2),
		CheckIn:     now,
		CheckOut:    now,
		Remarks:     "team offsite",
		Status:      domain.RequestApproved,
		Timestamp:   now.Add(-48 * time.Hour),
		ProcessedAt: &processed,
	}
	db.Create(&approved)

	db.Create(&domain.TeamMember{RequestID: approved.ID, Email: "bob@corp.example"})
	db.Create(&domain.AssignedAccommodation{
		RequestID:   approved.ID,
		UserEmail:   alice.Email,
		CityID:      berlin.ID,
		ApartmentID: &towerA.ID,
		FlatID:      &flat3.ID,
	})
	db.Create(&domain.AssignedAccommodation{
		RequestID:   approved.ID,
		UserEmail:   bob.Email,
		CityID:      berlin.ID,
		ApartmentID: &towerA.ID,
		FlatID:      &flat3.ID,
		RoomID:      &room12.ID,
	})

	log.Println("Seed complete.")
}
