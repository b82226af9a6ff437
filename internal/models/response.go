package models

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthDetailedResponse extends HealthResponse with component and runtime state
type HealthDetailedResponse struct {
	HealthResponse
	Uptime        float64           `json:"uptime"`
	Services      map[string]string `json:"services"`
	SystemMetrics SystemMetrics     `json:"system_metrics"`
}

// SystemMetrics is a snapshot of the Go runtime
type SystemMetrics struct {
	Goroutines     int    `json:"goroutines"`
	HeapAllocBytes uint64 `json:"heap_alloc_bytes"`
	SysBytes       uint64 `json:"sys_bytes"`
	NumCPU         int    `json:"num_cpu"`
	NumGC          uint32 `json:"num_gc"`
}

// ServiceResponse represents one service
type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	IsActive    bool   `json:"is_active"`
}

// ServiceListResponse represents list services response
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes used in ErrorDetail.Code
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeAlreadyExists   = "ALREADY_EXISTS"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeInvalidRequest  = "INVALID_REQUEST"
)
