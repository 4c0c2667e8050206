package response

// Canonical messages and codes for the standard envelope.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong. Please try again later."

	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404
	BadRequestErrorCode     = 400
)

// Wire formats for Date and DateTime values.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
