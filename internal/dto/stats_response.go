package dto

import "time"

type StatsResponse struct {
	HappyFamilies         int64     `json:"happy_families"`
	Countries             int       `json:"countries"`
	OrganicPercentage     int       `json:"organic_percentage"`
	MichelinStars         int       `json:"michelin_stars"`
	ProductsAvailable     int64     `json:"products_available"`
	TotalReviews          int64     `json:"total_reviews"`
	NewsletterSubscribers int64     `json:"newsletter_subscribers"`
	AverageRating         float64   `json:"average_rating"`
	YearsOfExperience     int       `json:"years_of_experience"`
	MasterArtisans        int       `json:"master_artisans"`
	AwardsWon             int       `json:"awards_won"`
	GeneratedAt           time.Time `json:"generated_at"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message"`
}
