// Package builtin assembles the plugins shipped with pagetags.
package builtin

import (
	"github.com/bgraf/pagetags/plugin"
	"github.com/bgraf/pagetags/plugin/tagfilter"
)

// Plugins returns fresh instances of all builtin plugins in hook order.
func Plugins() []plugin.Plugin {
	return []plugin.Plugin{
		tagfilter.New(),
	}
}

func NewHost() *plugin.Host {
	return plugin.NewHost(Plugins()...)
}
