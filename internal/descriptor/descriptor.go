// Package descriptor parses the value descriptors accepted by the
// encode-{ber,cer,der} command line collaborators:
//
//	[class-letter construction-letter tag-number]::=type:literal
//
// e.g. "[u p 2]::=int:42" or "[c c 0]::=utf8:hello".
package descriptor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tlvcodec/asn1"
)

// Descriptor is one parsed command-line value descriptor.
type Descriptor struct {
	Class        asn1.Class
	Construction asn1.Construction
	Tag          int
	Type         string
	Literal      string
}

// Parse decodes a single descriptor string.
func Parse(s string) (Descriptor, error) {
	open := strings.IndexByte(s, '[')
	close := strings.IndexByte(s, ']')
	if open != 0 || close < 0 {
		return Descriptor{}, fmt.Errorf("descriptor: missing [class construction tag]: %q", s)
	}
	header := s[open+1 : close]
	rest := s[close+1:]
	rest = strings.TrimPrefix(rest, "::=")
	fields := strings.Fields(header)
	if len(fields) != 3 {
		return Descriptor{}, fmt.Errorf("descriptor: expected 3 header fields, got %d: %q", len(fields), header)
	}

	class, err := parseClass(fields[0])
	if err != nil {
		return Descriptor{}, err
	}
	construction, err := parseConstruction(fields[1])
	if err != nil {
		return Descriptor{}, err
	}
	tag, err := strconv.Atoi(fields[2])
	if err != nil {
		return Descriptor{}, fmt.Errorf("descriptor: bad tag number %q: %w", fields[2], err)
	}

	typ, literal, ok := strings.Cut(rest, ":")
	if !ok {
		return Descriptor{}, fmt.Errorf("descriptor: missing type:literal in %q", s)
	}

	return Descriptor{
		Class:        class,
		Construction: construction,
		Tag:          tag,
		Type:         typ,
		Literal:      literal,
	}, nil
}

func parseClass(s string) (asn1.Class, error) {
	switch strings.ToLower(s) {
	case "u":
		return asn1.ClassUniversal, nil
	case "a":
		return asn1.ClassApplication, nil
	case "c":
		return asn1.ClassContextSpecific, nil
	case "p":
		return asn1.ClassPrivate, nil
	}
	return 0, fmt.Errorf("descriptor: unknown class letter %q", s)
}

func parseConstruction(s string) (asn1.Construction, error) {
	switch strings.ToLower(s) {
	case "p":
		return asn1.Primitive, nil
	case "c":
		return asn1.Constructed, nil
	}
	return 0, fmt.Errorf("descriptor: unknown construction letter %q", s)
}
