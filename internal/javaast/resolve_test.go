package javaast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_Resolve(t *testing.T) {
	src := `package com.acme;

import org.springframework.web.bind.annotation.GetMapping;
import org.springframework.ai.tool.annotation.*;
import com.other.Tool;

class App {
    static class Inner {}
}
`
	f, err := Parse("App.java", []byte(src))
	require.NoError(t, err)

	idx := TypeSet{}
	idx.Add("com.acme.Sibling", "org.springframework.ai.tool.annotation.ToolParam")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"explicit import", "GetMapping", "org.springframework.web.bind.annotation.GetMapping"},
		{"explicit import wins over wildcard", "Tool", "com.other.Tool"},
		{"wildcard checked against index", "ToolParam", "org.springframework.ai.tool.annotation.ToolParam"},
		{"declared in file", "Inner", "com.acme.App.Inner"},
		{"same package", "Sibling", "com.acme.Sibling"},
		{"java.lang", "String", "java.lang.String"},
		{"fully qualified", "org.springframework.stereotype.Service", "org.springframework.stereotype.Service"},
		{"qualified through import", "GetMapping.List", "org.springframework.web.bind.annotation.GetMapping.List"},
		{"unknown falls back to package", "Unknown", "com.acme.Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Resolve(tt.in, idx))
		})
	}
}

func TestFile_CanUseSimple(t *testing.T) {
	src := "package com.acme;\n\nimport com.other.Tool;\n\nclass App {}\n"
	f, err := Parse("App.java", []byte(src))
	require.NoError(t, err)
	idx := TypeSet{}
	idx.Add("com.acme.Bean")

	assert.False(t, f.CanUseSimple("org.springframework.ai.tool.annotation.Tool", idx))
	assert.True(t, f.CanUseSimple("com.other.Tool", idx))
	assert.False(t, f.CanUseSimple("org.springframework.context.annotation.Bean", idx))
	assert.False(t, f.CanUseSimple("org.x.App", idx))
	assert.True(t, f.CanUseSimple("org.springframework.ai.tool.ToolCallbackProvider", idx))
}

func TestFile_FindAnnotation(t *testing.T) {
	src := `package a;
import org.springframework.web.bind.annotation.*;
@org.springframework.stereotype.Service
class S {
    @PostMapping @GetMapping void m() {}
}
`
	f, err := Parse("S.java", []byte(src))
	require.NoError(t, err)
	idx := TypeSet{}
	idx.Add("org.springframework.web.bind.annotation.GetMapping", "org.springframework.web.bind.annotation.PostMapping")

	cls := f.Types[0]
	assert.True(t, f.HasAnnotation(cls.Annotations, idx, "org.springframework.stereotype.Service"))
	a := f.FindAnnotation(cls.Methods[0].Annotations, idx, "org.springframework.web.bind.annotation.GetMapping", "org.springframework.web.bind.annotation.PostMapping")
	require.NotNil(t, a)
	assert.Equal(t, "PostMapping", a.Name)
	assert.False(t, f.HasAnnotation(cls.Methods[0].Annotations, nil, "org.springframework.web.bind.annotation.GetMapping"))
}
