package vkxml

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Registry is the root of one parsed registry document.
type Registry struct {
	XMLName    xml.Name     `xml:"registry"`
	Enums      []EnumsBlock `xml:"enums"`
	Features   []Feature    `xml:"feature"`
	Extensions []Extension  `xml:"extensions>extension"`
}

// EnumsBlock is one <enums> element. Only blocks with Type "enum" define
// enumeration types; bitmask and constant blocks are carried but ignored by
// the assembler.
type EnumsBlock struct {
	Name  string     `xml:"name,attr"`
	Type  string     `xml:"type,attr"`
	Enums []EnumDecl `xml:"enum"`
}

// Feature is one <feature> element; its required enums may extend
// previously declared enumeration types.
type Feature struct {
	Name     string    `xml:"name,attr"`
	Requires []Require `xml:"require"`
}

// Extension is one <extensions>/<extension> element.
type Extension struct {
	Name      string    `xml:"name,attr"`
	Number    int64     `xml:"number,attr"`
	Supported string    `xml:"supported,attr"`
	Requires  []Require `xml:"require"`
}

// Require is a <require> grouping inside a feature or extension.
type Require struct {
	Enums []EnumDecl `xml:"enum"`
}

// EnumDecl is one <enum> declaration. Exactly one of Value, Alias, or
// Offset is expected on well-formed value declarations; attributes are kept
// as raw strings so the assembler owns interpretation and error reporting.
type EnumDecl struct {
	Name      string `xml:"name,attr"`
	Value     string `xml:"value,attr"`
	Alias     string `xml:"alias,attr"`
	Offset    string `xml:"offset,attr"`
	ExtNumber string `xml:"extnumber,attr"`
	Dir       string `xml:"dir,attr"`
	Extends   string `xml:"extends,attr"`
}

// HasValue reports whether the declaration carries an explicit literal.
func (d *EnumDecl) HasValue() bool { return d.Value != "" }

// HasAlias reports whether the declaration is an alias.
func (d *EnumDecl) HasAlias() bool { return d.Alias != "" }

// HasOffset reports whether the declaration is in extension-offset form.
func (d *EnumDecl) HasOffset() bool { return d.Offset != "" }

// IsError reports whether the declaration carries the negative direction
// marker used by extension-contributed status codes.
func (d *EnumDecl) IsError() bool { return d.Dir == "-" }

// ParseValue interprets the literal value attribute, accepting base
// prefixes the way the registry writes them (decimal, 0x hex, octal).
func (d *EnumDecl) ParseValue() (int64, error) {
	return strconv.ParseInt(d.Value, 0, 64)
}

// ParseOffset interprets the offset attribute.
func (d *EnumDecl) ParseOffset() (int64, error) {
	return strconv.ParseInt(d.Offset, 0, 64)
}

// ParseExtNumber interprets the explicit extension-number override.
func (d *EnumDecl) ParseExtNumber() (int64, error) {
	return strconv.ParseInt(d.ExtNumber, 0, 64)
}

// SupportedBy reports whether the extension's supported attribute, a
// comma-separated API list, names any of the given APIs.
func (e *Extension) SupportedBy(apis []string) bool {
	for _, entry := range strings.Split(e.Supported, ",") {
		for _, api := range apis {
			if entry == api {
				return true
			}
		}
	}
	return false
}
