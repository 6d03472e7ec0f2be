package constants

// エラーメッセージ
const (
	ErrUserNotFound  = "User not found"
	ErrGuestNotFound = "Guest not found"
	ErrItemNotFound  = "Item not found"
	ErrDuplicate     = "Resource already exists"
	ErrForeignKey    = "Referenced resource does not exist"
	ErrInvalidInput  = "Invalid input"
	ErrUnexpected    = "Unexpected error"
)
