package api

// ServerEnvironment holds runtime information reported on the API root.
type ServerEnvironment struct {
	Provider string `json:"provider" yaml:"provider"`
	Origin   string `json:"origin"   yaml:"origin"`
}
