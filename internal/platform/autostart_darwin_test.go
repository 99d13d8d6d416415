//go:build darwin

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaunchAgentPlistArguments(t *testing.T) {
	plist := launchAgentPlist(launchAgentLabel("Lux Tray"), LaunchCommand{
		Path: "/Applications/LuxTray.app/Contents/MacOS/luxtray",
		Args: []string{"--config", "/Users/me/a&b.yaml"},
	})

	assert.Contains(t, plist, "<string>com.luxtray.lux-tray</string>")
	assert.Contains(t, plist, "\t\t<string>/Applications/LuxTray.app/Contents/MacOS/luxtray</string>\n"+
		"\t\t<string>--config</string>\n"+
		"\t\t<string>/Users/me/a&amp;b.yaml</string>\n")
	assert.Contains(t, plist, "<key>RunAtLoad</key>")
}
