package email

// Message is a single outbound mail.
type Message struct {
	To      string
	Subject string
	Body    string
	IsHTML  bool
}

// Provider delivers mail. The SMTP implementation is used in production;
// tests substitute a recording mock.
type Provider interface {
	Send(msg Message) error
}
