package constvars

// Error messages for clients. The wire shapes follow the portal's original
// contract: auth failures answer with a bare message object.
const (
	ErrClientUnauthorizedAccess            = "unauthorized access"
	ErrClientForbiddenAccess               = "forbidden access"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientTooManyBookingRequests        = "too many booking requests, try again shortly"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON      = "cannot parse JSON"
	ErrDevValidationFailed     = "validation failed"
	ErrDevAuthTokenMissing     = "token missing"
	ErrDevAuthTokenInvalid     = "invalid or expired token"
	ErrDevAuthSigningMethod    = "unexpected signing method"
	ErrDevAuthGenerateToken    = "failed to generate token"
	ErrDevAuthEmailNotInClaims = "email claim missing from token"
	ErrDevAuthEmailMismatch    = "requested email does not match token claim"
	ErrDevAuthNotAdmin         = "user is not an admin"
	ErrDevAuthUnknownUser      = "no user record for requested email"

	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"

	ErrDevRedisSet       = "failed to set redis key"
	ErrDevRedisGetNoData = "failed to get redis key"

	ErrDevImageValidationFailed = "image validation failed"
	ErrDevMinioCreateObject     = "failed to store object in bucket"
	ErrDevMailQueuePublish      = "failed to publish mail queue message"
)

const (
	BookingConflictMessageFormat = "You already have a booking on %s"
	LivenessMessage              = "Doctor Portal Service is running"
)
