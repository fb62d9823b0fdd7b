package twilio

import "time"

const (
	messagesURLTemplate = "https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json"

	whatsappPrefix = "whatsapp:"

	DefaultTimeout = 30 * time.Second
)
