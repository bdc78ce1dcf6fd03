package javaast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEdits(t *testing.T) {
	src := []byte("abcdef")
	got := ApplyEdits(src, []Edit{
		{Start: 3, End: 3, Text: "1"},
		{Start: 0, End: 1, Text: "A"},
		{Start: 3, End: 3, Text: "2"},
		{Start: 6, End: 6, Text: "!"},
	})
	assert.Equal(t, "Abc12def!", string(got))
	assert.Equal(t, "abcdef", string(src), "source must not be modified")
}

func TestFile_ImportEdits(t *testing.T) {
	tests := []struct {
		name string
		src  string
		add  []string
		want string
	}{
		{
			name: "sorted position",
			src:  "package a;\n\nimport org.b.B;\nimport org.d.D;\n\nclass Main {}\n",
			add:  []string{"org.c.C", "org.a.A"},
			want: "package a;\n\nimport org.a.A;\nimport org.b.B;\nimport org.c.C;\nimport org.d.D;\n\nclass Main {}\n",
		},
		{
			name: "skips name of a declared class",
			src:  "package a;\n\nimport org.b.B;\n\nclass A {}\n",
			add:  []string{"org.a.A", "org.c.C"},
			want: "package a;\n\nimport org.b.B;\nimport org.c.C;\n\nclass A {}\n",
		},
		{
			name: "after last import",
			src:  "package a;\n\nimport org.b.B;\n\nclass A {}\n",
			add:  []string{"org.z.Z", "org.y.Y"},
			want: "package a;\n\nimport org.b.B;\nimport org.y.Y;\nimport org.z.Z;\n\nclass A {}\n",
		},
		{
			name: "after package",
			src:  "package a;\n\nclass A {}\n",
			add:  []string{"org.y.Y", "org.x.X"},
			want: "package a;\n\nimport org.x.X;\nimport org.y.Y;\n\nclass A {}\n",
		},
		{
			name: "default package",
			src:  "class A {}\n",
			add:  []string{"org.x.X"},
			want: "import org.x.X;\n\nclass A {}\n",
		},
		{
			name: "skips covered names",
			src:  "package a;\n\nimport org.b.*;\nimport org.c.C;\n\nclass A {}\n",
			add:  []string{"org.b.B", "org.c.C", "a.Local", "java.lang.String", "org.c.C"},
			want: "package a;\n\nimport org.b.*;\nimport org.c.C;\n\nclass A {}\n",
		},
		{
			name: "skips clashing simple name",
			src:  "package a;\n\nimport org.c.C;\n\nclass A {}\n",
			add:  []string{"org.other.C"},
			want: "package a;\n\nimport org.c.C;\n\nclass A {}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse("A.java", []byte(tt.src))
			require.NoError(t, err)
			got := string(ApplyEdits(f.Src, f.ImportEdits(tt.add, nil)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ImportEdits() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassDecl_AppendMemberEdit(t *testing.T) {
	src := "class A {\n    void m() {\n    }\n}\n"
	f, err := Parse("A.java", []byte(src))
	require.NoError(t, err)
	cls := f.Types[0]
	assert.Equal(t, "    ", cls.MemberIndent())

	e, ok := cls.AppendMemberEdit(f.Src, "    void n() {\n    }")
	require.True(t, ok)
	want := "class A {\n    void m() {\n    }\n\n    void n() {\n    }\n}\n"
	assert.Equal(t, want, string(ApplyEdits(f.Src, []Edit{e})))

	broken, err := Parse("B.java", []byte("class B {\n"))
	require.NoError(t, err)
	_, ok = broken.Types[0].AppendMemberEdit(broken.Src, "x")
	assert.False(t, ok)
}
