package llm

import "fmt"

// creates the code generator for the configured provider
func NewCodeGenerator(config Config) (CodeGenerator, error) {
	config = config.withDefaults()

	switch config.Provider {
	case ProviderHuggingFace:
		return NewHuggingFaceGenerator(config), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", config.Provider)
	}
}
