package openscad

import "github.com/aretw0/introspection"

// ClientState exposes renderer usage for observability.
type ClientState struct {
	Binary     string `json:"binary"`
	Renders    int    `json:"renders"`
	Failures   int    `json:"failures"`
	LastOutput string `json:"last_output,omitempty"`
}

// State implements introspection.Introspectable.
func (c *Client) State() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ClientState{
		Binary:     c.Binary,
		Renders:    c.renders,
		Failures:   c.failures,
		LastOutput: c.last,
	}
}

// ComponentType implements introspection.Component.
func (c *Client) ComponentType() string {
	return "renderer"
}

var _ introspection.Introspectable = (*Client)(nil)
var _ introspection.Component = (*Client)(nil)
