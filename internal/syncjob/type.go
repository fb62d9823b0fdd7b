package syncjob

const (
	// DefaultListLimit bounds plain history listings.
	DefaultListLimit = 100
	// DefaultPlatformListLimit bounds per-platform history listings.
	DefaultPlatformListLimit = 50
	// DefaultSuccessRateWindowDays is the trailing window for the success
	// rate metric when the caller does not choose one.
	DefaultSuccessRateWindowDays = 30
)

type CompleteInput struct {
	ID             string
	ReviewsFetched int
}

type FailInput struct {
	ID           string
	ErrorMessage string
}

type ListInput struct {
	PlatformName string
	Limit        int
}
