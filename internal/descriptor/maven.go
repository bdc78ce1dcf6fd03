package descriptor

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"

	"github.com/specialistvlad/webtomcp/internal/config"
	"golang.org/x/net/html/charset"
)

// MavenScanner looks for a dependency in a POM. Direct dependencies and
// dependencies declared inside profiles count; dependencyManagement entries
// only pin versions and do not.
type MavenScanner struct {
	coord config.Coordinate
}

// NewMavenScanner creates a scanner for the given coordinate.
func NewMavenScanner(coord config.Coordinate) *MavenScanner {
	return &MavenScanner{coord: coord}
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

type pomProject struct {
	GroupID string `xml:"groupId"`
	Version string `xml:"version"`
	Parent  struct {
		GroupID string `xml:"groupId"`
		Version string `xml:"version"`
	} `xml:"parent"`
	Properties   pomProperties   `xml:"properties"`
	Dependencies []pomDependency `xml:"dependencies>dependency"`
	Profiles     []struct {
		Dependencies []pomDependency `xml:"dependencies>dependency"`
	} `xml:"profiles>profile"`
}

// pomProperties decodes the free-form <properties> element.
type pomProperties map[string]string

func (p *pomProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	props := pomProperties{}
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var v string
			if err := d.DecodeElement(&v, &t); err != nil {
				return err
			}
			props[t.Name.Local] = strings.TrimSpace(v)
		case xml.EndElement:
			*p = props
			return nil
		}
	}
}

var placeholder = regexp.MustCompile(`\$\{([^}]+)\}`)

// Scan reports whether the POM declares the coordinate. POMs declaring a
// non UTF-8 encoding such as ISO-8859-1 are transcoded while decoding.
func (s *MavenScanner) Scan(content []byte) (bool, error) {
	var pom pomProject
	dec := xml.NewDecoder(bytes.NewReader(content))
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&pom); err != nil {
		return false, fmt.Errorf("failed to decode POM: %w", err)
	}

	props := map[string]string{}
	for k, v := range pom.Properties {
		props[k] = v
	}
	groupID := pom.GroupID
	if groupID == "" {
		groupID = pom.Parent.GroupID
	}
	version := pom.Version
	if version == "" {
		version = pom.Parent.Version
	}
	props["project.groupId"] = groupID
	props["pom.groupId"] = groupID
	props["project.version"] = version
	props["pom.version"] = version
	props["project.parent.groupId"] = pom.Parent.GroupID
	props["project.parent.version"] = pom.Parent.Version

	deps := pom.Dependencies
	for _, prof := range pom.Profiles {
		deps = append(deps, prof.Dependencies...)
	}
	for _, d := range deps {
		if expand(d.GroupID, props) == s.coord.Group && expand(d.ArtifactID, props) == s.coord.Artifact {
			return true, nil
		}
	}
	return false, nil
}

// expand substitutes ${name} placeholders, following references between
// properties a bounded number of times.
func expand(s string, props map[string]string) string {
	s = strings.TrimSpace(s)
	for i := 0; i < 8 && strings.Contains(s, "${"); i++ {
		next := placeholder.ReplaceAllStringFunc(s, func(m string) string {
			if v, ok := props[m[2:len(m)-1]]; ok {
				return v
			}
			return m
		})
		if next == s {
			break
		}
		s = next
	}
	return s
}
