package app

import (
	"os"
	"testing"

	"github.com/specialistvlad/webtomcp/internal/testutil"
	"github.com/stretchr/testify/require"
)

// SetupAppTest creates a new app instance for system testing. Logs go to
// the returned buffer at debug level.
func SetupAppTest(t *testing.T, appConfig *Config) (*App, *testutil.SafeBuffer) {
	t.Helper()

	logBuffer := &testutil.SafeBuffer{}
	appConfig.LogLevel = "debug"
	if appConfig.LogFormat == "" {
		appConfig.LogFormat = "text"
	}
	testApp, err := NewApp(logBuffer, appConfig, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("WEBTOMCP_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
