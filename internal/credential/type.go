package credential

type SaveInput struct {
	PlatformName string
	KeyName      string
	Value        string
}
