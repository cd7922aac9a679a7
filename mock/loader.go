package mock

import "github.com/fwojciec/ngoscan"

var _ ngoscan.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader is a mock implementation of ngoscan.ConfigLoader.
type ConfigLoader struct {
	LoadFn func(path string) (*ngoscan.Config, error)
}

func (l *ConfigLoader) Load(path string) (*ngoscan.Config, error) {
	return l.LoadFn(path)
}
