package descriptor

import (
	"testing"

	"github.com/specialistvlad/webtomcp/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMavenScanner_Scan(t *testing.T) {
	tests := []struct {
		name string
		pom  string
		want bool
	}{
		{
			name: "direct dependency with namespace",
			pom: `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <dependencies>
    <dependency>
      <groupId>org.springframework.ai</groupId>
      <artifactId>spring-ai-starter-mcp-server-webmvc</artifactId>
      <version>1.0.0</version>
    </dependency>
  </dependencies>
</project>`,
			want: true,
		},
		{
			name: "profile dependency",
			pom: `<project>
  <profiles><profile><id>mcp</id><dependencies><dependency>
    <groupId>org.springframework.ai</groupId>
    <artifactId>spring-ai-starter-mcp-server-webmvc</artifactId>
  </dependency></dependencies></profile></profiles>
</project>`,
			want: true,
		},
		{
			name: "placeholder resolved from properties",
			pom: `<project>
  <properties>
    <ai.group>org.springframework.ai</ai.group>
    <ai.starter>spring-ai-starter-mcp-server-${ai.flavour}</ai.starter>
    <ai.flavour>webmvc</ai.flavour>
  </properties>
  <dependencies><dependency>
    <groupId>${ai.group}</groupId>
    <artifactId>${ai.starter}</artifactId>
  </dependency></dependencies>
</project>`,
			want: true,
		},
		{
			name: "dependency management only",
			pom: `<project>
  <dependencyManagement><dependencies><dependency>
    <groupId>org.springframework.ai</groupId>
    <artifactId>spring-ai-starter-mcp-server-webmvc</artifactId>
  </dependency></dependencies></dependencyManagement>
</project>`,
			want: false,
		},
		{
			name: "other artifact",
			pom: `<project><dependencies><dependency>
    <groupId>org.springframework.ai</groupId>
    <artifactId>spring-ai-starter-mcp-server-webflux</artifactId>
  </dependency></dependencies></project>`,
			want: false,
		},
	}
	s := NewMavenScanner(config.Default().Dependency)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Scan([]byte(tt.pom))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMavenScanner_Malformed(t *testing.T) {
	s := NewMavenScanner(config.Default().Dependency)
	_, err := s.Scan([]byte("<project><dependencies>"))
	require.Error(t, err)
}

func TestMavenScanner_DeclaredEncoding(t *testing.T) {
	s := NewMavenScanner(config.Default().Dependency)
	for _, enc := range []string{"ISO-8859-1", "windows-1252"} {
		t.Run(enc, func(t *testing.T) {
			pom := "<?xml version=\"1.0\" encoding=\"" + enc + "\"?>\n" +
				"<project>\n" +
				"  <name>Caf\xe9 \xc0 la carte</name>\n" +
				"  <dependencies>\n" +
				"    <dependency>\n" +
				"      <groupId>org.springframework.ai</groupId>\n" +
				"      <artifactId>spring-ai-starter-mcp-server-webmvc</artifactId>\n" +
				"    </dependency>\n" +
				"  </dependencies>\n" +
				"</project>\n"
			got, err := s.Scan([]byte(pom))
			require.NoError(t, err)
			assert.True(t, got)
		})
	}
}

func TestExpand(t *testing.T) {
	props := map[string]string{"a": "${b}", "b": "x", "loop": "${loop}"}
	assert.Equal(t, "x-x", expand("${a}-${b}", props))
	assert.Equal(t, "${missing}", expand("${missing}", props))
	assert.Equal(t, "${loop}", expand("${loop}", props))
}
