package fsutil

import (
	"testing"

	"github.com/specialistvlad/webtomcp/internal/model"
	"github.com/specialistvlad/webtomcp/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProject(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	root := testutil.WriteTree(t, map[string]string{
		".gitignore":                         "build/\n*.log\n",
		"pom.xml":                            "<project/>",
		"build.gradle.kts":                   "dependencies {}",
		"src/main/java/a/A.java":             "package a; class A {}",
		"src/main/resources/application.yml": "a: b\n",
		"build/classes/Gen.java":             "class Gen {}",
		".git/config.properties":             "x=y",
		"README.md":                          "# readme",
		"debug.log":                          "noise",
	})

	forest, err := LoadProject(ctx, root)
	require.NoError(t, err)

	var paths []string
	for _, u := range forest.Units() {
		paths = append(paths, u.Path)
	}
	assert.Equal(t, []string{
		"build.gradle.kts",
		"pom.xml",
		"src/main/java/a/A.java",
		"src/main/resources/application.yml",
	}, paths)

	u, ok := forest.Lookup("src/main/java/a/A.java")
	require.True(t, ok)
	assert.Equal(t, model.FormatJava, u.Format)
	assert.Equal(t, "package a; class A {}", string(u.Content()))
}

func TestLoadProject_NotADirectory(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	root := testutil.WriteTree(t, map[string]string{"pom.xml": "<project/>"})

	_, err := LoadProject(ctx, root+"/pom.xml")
	assert.Error(t, err)
	_, err = LoadProject(ctx, root+"/missing")
	assert.Error(t, err)
}

func TestWriteChanged(t *testing.T) {
	ctx, _ := testutil.NewContext(t)
	root := testutil.WriteTree(t, map[string]string{
		"pom.xml":    "<project/>",
		"src/A.java": "class A {}",
		"src/B.java": "class B {}",
	})
	forest, err := LoadProject(ctx, root)
	require.NoError(t, err)

	u, _ := forest.Lookup("src/A.java")
	u.SetContent([]byte("class A { void x() {} }"))

	written, err := WriteChanged(ctx, root, forest)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/A.java"}, written)

	assert.Equal(t, map[string]string{
		"pom.xml":    "<project/>",
		"src/A.java": "class A { void x() {} }",
		"src/B.java": "class B {}",
	}, testutil.ReadTree(t, root))
}
