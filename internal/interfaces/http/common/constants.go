package common

const (
	// MaxApplicationRequestBody limits multipart bodies for the submission
	// endpoint: nine single files plus the certificate batch at 5MB each.
	MaxApplicationRequestBody = 64 << 20
	// MaxStatusRequestBody limits JSON bodies for the status endpoint.
	MaxStatusRequestBody = 1 << 20
)
