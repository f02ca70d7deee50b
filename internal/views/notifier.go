package views

// NoticeKind classifies a notification for the front end
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
	NoticeValidation
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeError:
		return "error"
	case NoticeValidation:
		return "validation"
	default:
		return "info"
	}
}

// Notifier is supplied by the front end.
// Notify must not block; Confirm shows a prompt and calls onAck once it is dismissed.
type Notifier interface {
	Notify(kind NoticeKind, title, message string)
	Confirm(title, message string, onAck func())
}
