package util

// RemoveDuplicateStrings keeps the first occurrence of every non empty string in order
func RemoveDuplicateStrings(strings []string, ignoreList []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, ignoreString := range ignoreList {
		presentStrings[ignoreString] = true
	}

	for _, item := range strings {
		if _, value := presentStrings[item]; !value && item != "" {
			presentStrings[item] = true
			list = append(list, item)
		}
	}
	return list
}

// TrimString shortens s to at most length characters, counting runes so umlauts in stop
// names are never split
func TrimString(s string, length int) string {
	runes := []rune(s)
	if len(runes) <= length {
		return s
	}

	if length <= 1 {
		return string(runes[:length])
	}

	return string(runes[:length-1]) + "…"
}
