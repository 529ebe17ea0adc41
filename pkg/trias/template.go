package trias

import (
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"regexp"
)

//go:embed templates/*.xml
var templateFiles embed.FS

const (
	findStopsTemplate  = "find_stops"
	departuresTemplate = "departures"
	tripTemplate       = "trip"
)

func loadTemplate(name string) (string, error) {
	content, err := templateFiles.ReadFile(fmt.Sprintf("templates/%s.xml", name))
	if err != nil {
		return "", err
	}

	return string(content), nil
}

var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// FillTemplate replaces every {{key}} placeholder for the keys present in values in a
// single pass over the template. Placeholders without a value are left untouched and
// inserted values are never scanned for placeholders themselves.
func FillTemplate(template string, values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(placeholder string) string {
		if value, ok := values[placeholder[2:len(placeholder)-2]]; ok {
			return value
		}

		return placeholder
	})
}

// EscapeValue makes a value safe to place inside XML character data
func EscapeValue(value string) string {
	var buffer bytes.Buffer
	xml.EscapeText(&buffer, []byte(value))

	return buffer.String()
}
