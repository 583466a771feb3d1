package service

// MailSender is the external email collaborator. Delivery is synchronous from
// the caller's perspective: a nil return means the message was handed to the
// transport, not that it reached the inbox.
type MailSender interface {
	Send(to, subject, body string) error
}
