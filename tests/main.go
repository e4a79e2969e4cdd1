package main

import (
	"context"
	"log"
	"time"

	"fittribe/config"
	"fittribe/database"
	"fittribe/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the trainer directory with the demo roster.
func main() {
	config.LoadConfig()

	// Initialize the database connection.
	database.InitDB()
	client := database.MongoClient
	db := client.Database("fittribe")
	trainerColl := db.Collection("trainers")

	// Clear existing trainers.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := trainerColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear trainers collection: %v", err)
	}

	now := time.Now()
	roster := []models.Trainer{
		{
			ID: "1", FirstName: "John", LastName: "Smith",
			ProfileImage: "/images/trainer1.jpg",
			Specialties:  []string{"Yoga", "Meditation"},
			Bio:          "Certified yoga instructor with 5+ years of experience.",
			HourlyRate:   75, Rating: 4.8, TotalReviews: 124, Featured: true,
		},
		{
			ID: "2", FirstName: "Sarah", LastName: "Johnson",
			ProfileImage: "/images/trainer2.jpg",
			Specialties:  []string{"HIIT", "Strength Training"},
			Bio:          "Passionate about helping clients achieve their fitness goals.",
			HourlyRate:   85, Rating: 4.9, TotalReviews: 98, Featured: true,
		},
		{
			ID: "3", FirstName: "Michael", LastName: "Brown",
			ProfileImage: "/images/trainer3.jpg",
			Specialties:  []string{"Nutrition", "Weight Loss"},
			Bio:          "Nutrition expert specializing in sustainable weight loss.",
			HourlyRate:   70, Rating: 4.7, TotalReviews: 76,
		},
		{
			ID: "4", FirstName: "Emily", LastName: "Davis",
			ProfileImage: "/images/trainer4.jpg",
			Specialties:  []string{"Pilates", "Flexibility"},
			Bio:          "Pilates instructor focused on improving core strength and flexibility.",
			HourlyRate:   80, Rating: 4.9, TotalReviews: 112, Featured: true,
		},
		{
			ID: "5", FirstName: "David", LastName: "Wilson",
			ProfileImage: "/images/trainer5.jpg",
			Specialties:  []string{"Strength Training", "Cardio"},
			Bio:          "Former athlete helping clients build strength and endurance.",
			HourlyRate:   90, Rating: 4.6, TotalReviews: 85,
		},
		{
			ID: "6", FirstName: "Jessica", LastName: "Martinez",
			ProfileImage: "/images/trainer6.jpg",
			Specialties:  []string{"Yoga", "Meditation", "Flexibility"},
			Bio:          "Holistic approach to fitness focusing on mind-body connection.",
			HourlyRate:   75, Rating: 4.8, TotalReviews: 92,
		},
		{
			ID: "7", FirstName: "Robert", LastName: "Taylor",
			ProfileImage: "/images/trainer7.jpg",
			Specialties:  []string{"HIIT", "Weight Loss", "Cardio"},
			Bio:          "Specializing in high-intensity workouts for maximum results.",
			HourlyRate:   95, Rating: 4.7, TotalReviews: 78,
		},
		{
			ID: "8", FirstName: "Amanda", LastName: "Clark",
			ProfileImage: "/images/trainer8.jpg",
			Specialties:  []string{"Nutrition", "Weight Loss", "Strength Training"},
			Bio:          "Comprehensive approach combining nutrition and exercise.",
			HourlyRate:   85, Rating: 4.9, TotalReviews: 105, Featured: true,
		},
	}

	docs := make([]interface{}, 0, len(roster))
	for i := range roster {
		// Stagger creation times so roster order is stable.
		roster[i].CreatedAt = now.Add(time.Duration(i) * time.Second)
		roster[i].UpdatedAt = roster[i].CreatedAt
		docs = append(docs, roster[i])
	}

	if _, err := trainerColl.InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to seed trainers: %v", err)
	}

	log.Printf("Seeded %d trainers", len(roster))
}
