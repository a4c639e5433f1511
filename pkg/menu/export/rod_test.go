package export

import (
	"testing"

	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/stretchr/testify/assert"
)

func TestRodLauncherFlags(t *testing.T) {
	l := (&RodRasterizer{Bin: "/opt/chrome/chrome"}).launcher()

	assert.Equal(t, "/opt/chrome/chrome", l.Get(flags.Bin))
	assert.True(t, l.Has(flags.Headless))
	for _, f := range PrintFlags {
		if !assert.True(t, l.Has(flags.Flag(f.Name)), "flag %s", f.Name) {
			continue
		}
		if f.Value != "" {
			assert.Equal(t, f.Value, l.Get(flags.Flag(f.Name)), "flag %s", f.Name)
		}
	}
}
