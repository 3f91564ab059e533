package hivetrace

// Version information for the hivetrace telemetry pipeline
const (
	// Version is the current library version
	Version = "development"

	// APIVersion is the current API version
	APIVersion = "v1alpha1"
)
