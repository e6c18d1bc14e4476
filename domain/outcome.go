package domain

// IndexStatus is the audit outcome of an index or remove attempt.
type IndexStatus string

const (
	StatusSuccess IndexStatus = "success"
	StatusError   IndexStatus = "error"
)

// IndexOutcome is the explicit result of an index/remove attempt. Every
// public index service operation returns one; nothing is reported through
// hidden entity mutation, and no error escapes the service boundary.
// Callers persist the outcome as the entity's indexing status if they want
// the audit record.
type IndexOutcome struct {
	DocumentID string
	Status     IndexStatus
	Message    string
}

func SuccessOutcome(documentID, message string) IndexOutcome {
	return IndexOutcome{DocumentID: documentID, Status: StatusSuccess, Message: message}
}

func ErrorOutcome(documentID, message string) IndexOutcome {
	return IndexOutcome{DocumentID: documentID, Status: StatusError, Message: message}
}
