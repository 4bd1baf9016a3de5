package twilio

type SendSMSInput struct {
	To   string
	Body string
}
