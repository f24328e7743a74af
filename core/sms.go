package core

// SMSMessage is a single text message to a phone number.
type SMSMessage struct {
	To   string
	Body string
}

// SMSService is any service that can deliver text messages.
// Delivery is out-of-band: implementations must not block the caller.
type SMSService interface {
	// SendMessages sends messages concurrently
	SendMessages(messages ...*SMSMessage)
}
