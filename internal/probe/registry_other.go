//go:build !windows

package probe

// systemRegistry reports the registry as unavailable.
type systemRegistry struct{}

func (systemRegistry) SubKeys(string) ([]string, error) { return nil, ErrRegistryUnavailable }

func (systemRegistry) StringValue(string, string) (string, error) {
	return "", ErrRegistryUnavailable
}
