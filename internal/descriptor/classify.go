package descriptor

import (
	"path"
	"strings"
)

// Kind tags a file as one of the recognised build descriptor variants.
type Kind int

const (
	KindNone Kind = iota
	KindMaven
	KindGradle
)

func (k Kind) String() string {
	switch k {
	case KindMaven:
		return "maven"
	case KindGradle:
		return "gradle"
	default:
		return "none"
	}
}

// Classify tags a file by its name: `pom.xml` is Maven, `build.gradle` and
// `build.gradle.kts` are Gradle. Everything else is KindNone.
func Classify(p string) Kind {
	base := path.Base(p)
	switch {
	case base == "pom.xml":
		return KindMaven
	case strings.HasPrefix(base, "build.gradle") && (base == "build.gradle" || base == "build.gradle.kts"):
		return KindGradle
	default:
		return KindNone
	}
}

// matchesCoordinate reports whether a `group:artifact[:version[:...]]`
// notation names the given group and artifact exactly.
func matchesCoordinate(notation, group, artifact string) bool {
	parts := strings.Split(strings.TrimSpace(notation), ":")
	return len(parts) >= 2 && parts[0] == group && parts[1] == artifact
}
