package entities

// ToastType is the severity of a toast notification
type ToastType string

const (
	ToastInfo    ToastType = "INFO"
	ToastSuccess ToastType = "SUCCESS"
	ToastWarning ToastType = "WARNING"
	ToastDanger  ToastType = "DANGER"
)

// ToastMessage is a notification shown to the user once
type ToastMessage struct {
	Text string    `json:"text"`
	Type ToastType `json:"type"`
}
