package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"pom.xml", KindMaven},
		{"services/api/pom.xml", KindMaven},
		{"pom.xml.bak", KindNone},
		{"my-pom.xml", KindNone},
		{"build.gradle", KindGradle},
		{"app/build.gradle.kts", KindGradle},
		{"build.gradle.orig", KindNone},
		{"settings.gradle", KindNone},
		{"src/main/java/App.java", KindNone},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}

func TestMatchesCoordinate(t *testing.T) {
	assert.True(t, matchesCoordinate("org.springframework.ai:spring-ai-starter-mcp-server-webmvc", "org.springframework.ai", "spring-ai-starter-mcp-server-webmvc"))
	assert.True(t, matchesCoordinate(" org.springframework.ai:spring-ai-starter-mcp-server-webmvc:1.0.0:sources ", "org.springframework.ai", "spring-ai-starter-mcp-server-webmvc"))
	assert.False(t, matchesCoordinate("org.springframework.ai:spring-ai-starter-mcp-server-webmvc-extra:1.0.0", "org.springframework.ai", "spring-ai-starter-mcp-server-webmvc"))
	assert.False(t, matchesCoordinate("org.springframework.ai", "org.springframework.ai", ""))
}
