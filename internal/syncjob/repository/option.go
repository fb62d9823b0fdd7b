package repository

type CreateOptions struct {
	PlatformName string
}

type FinishOptions struct {
	ID             string
	Status         string // success or failed
	ReviewsFetched int
	ErrorMessage   string
}

type ListOptions struct {
	PlatformName string
	Limit        int
}
