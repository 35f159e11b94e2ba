package providers

import (
	"context"
	"fmt"
)

// Load gets a specific provider and initializes it with the provider configuration.
func Load(ctx context.Context, name string, config map[string]string) (Provider, error) {
	switch name {
	case "origin":
		provider := &origin{config: config}

		err := provider.load(ctx)
		if err != nil {
			return nil, err
		}

		return provider, nil
	case "local":
		provider := &local{config: config}

		err := provider.load(ctx)
		if err != nil {
			return nil, err
		}

		return provider, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}
