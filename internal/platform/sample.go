package platform

import (
	"fmt"
	"math/rand"
	"time"

	"repupulse-api/internal/model"
)

// Synthetic review pools. The shape is deterministic (count, id scheme,
// rating bands per sentiment); the content is drawn randomly from these
// fixed pools so the downstream pipeline can be exercised without live
// credentials.
var samplePositive = []string{
	"Great product! Exceeded my expectations.",
	"Excellent customer service and quality.",
	"Highly recommended. Very satisfied with my purchase.",
	"Best company in the industry. Keep it up!",
	"Outstanding experience from start to finish.",
	"Amazing service and great value for money.",
}

var sampleNegative = []string{
	"Poor customer support. Very disappointed.",
	"Product quality is not as advertised.",
	"Had issues with delivery and refund process.",
	"Waste of money. Would not recommend.",
	"Terrible experience. Avoid at all costs.",
	"False advertising. Did not meet expectations.",
}

var sampleNeutral = []string{
	"Product is okay. Nothing special.",
	"Average quality for the price.",
	"Met expectations but could be better.",
	"Decent service, room for improvement.",
	"It works as described. Fair value.",
	"Neither great nor terrible. Just okay.",
}

var sampleAuthors = []string{
	"John D.", "Sarah M.", "Michael P.", "Emma L.", "David R.",
	"Lisa K.", "James W.", "Rachel G.", "Tom H.", "Angela B.",
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

// GenerateSampleReviews produces count synthetic reviews for platformName.
// Roughly 70% of reviews are polarized (split evenly between positive and
// negative), the rest neutral. Ratings follow the sentiment band: 4-5 for
// positive, 1-2 for negative, 3 for neutral.
func GenerateSampleReviews(platformName string, count int) []model.Review {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	reviews := make([]model.Review, 0, count)
	for i := 0; i < count; i++ {
		var content string
		var rating float64
		switch {
		case rng.Float64() <= 0.3:
			content = pick(rng, sampleNeutral)
			rating = 3
		case rng.Float64() > 0.5:
			content = pick(rng, samplePositive)
			rating = float64(rng.Intn(2) + 4)
		default:
			content = pick(rng, sampleNegative)
			rating = float64(rng.Intn(2) + 1)
		}

		reviews = append(reviews, model.Review{
			ReviewID:     fmt.Sprintf("sample-%s-%d-%d", platformName, now.UnixMilli(), i),
			Author:       pick(rng, sampleAuthors),
			Content:      content,
			Rating:       rating,
			URL:          fmt.Sprintf("https://%s.example.com/review/%d", platformName, i),
			ReviewedAt:   now.Add(-time.Duration(rng.Int63n(int64(30 * 24 * time.Hour)))),
			PlatformName: platformName,
		})
	}

	return reviews
}

// SampleResponse wraps GenerateSampleReviews in the adapter result shape.
func SampleResponse(platformName string, count int) FetchResult {
	reviews := GenerateSampleReviews(platformName, count)
	return FetchResult{
		Reviews:    reviews,
		TotalCount: len(reviews),
		HasMore:    false,
		Source:     SourceSample,
	}
}
