package cmd

import (
	"github.com/nyonicai/squirrel-core/internal/driver"
	"github.com/nyonicai/squirrel-core/internal/plugin"
	"github.com/nyonicai/squirrel-core/internal/service"
	"github.com/nyonicai/squirrel-core/internal/tracing"
)

// newPluginRegistry builds the registry with the builtin drivers
// registered. Catalog fragments come only from configuration at the
// moment; external plugins contribute through the same interfaces.
func newPluginRegistry() *plugin.Registry {
	reg := plugin.NewRegistry()
	for _, factory := range driver.Builtin() {
		_ = reg.RegisterDriver(factory)
	}
	return reg
}

// newService builds the catalog service from the effective config.
func newService(provider *tracing.Provider) *service.Service {
	return service.New(cfg, newPluginRegistry(), service.WithTracer(provider.Tracer()))
}
