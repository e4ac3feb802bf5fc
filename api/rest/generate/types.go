package generate

// Request represents the request body for code generation
type Request struct {
	Prompt   string `json:"prompt"`
	Language string `json:"language"`
}
