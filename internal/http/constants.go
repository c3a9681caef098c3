package httpx

const (
	// defaultPageSize matches the attendance backend's default page size for
	// catalog listings.
	defaultPageSize = 10
	// defaultLogPageSize matches the audit trail default page size.
	defaultLogPageSize = 50
)
