package mail

// Message is a fully-rendered email ready for any channel.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Channel is one delivery strategy. The dispatcher walks its channels in
// preference order and uses the first one whose configuration is present.
type Channel interface {
	Name() string
	Configured() bool
	Send(msg Message) error
}
