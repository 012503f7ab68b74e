package response

type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ConfirmationRequired is returned when a status change needs an explicit
// user acknowledgment. It carries the identifying fields of the affected
// record so the confirmation dialog can display them.
type ConfirmationRequired[T any] struct {
	ConfirmationRequired bool   `json:"confirmation_required"`
	Message              string `json:"message"`
	Record               T      `json:"record"`
}
