package pdfgen

const ellipsis = "..."

// truncateToWidth shortens text until measure reports it fits within
// maxWidth. Left-to-right text keeps its head and drops the tail;
// right-to-left text keeps its tail (the visually leading part) and drops
// the head, with the ellipsis marking the cut side either way. A maxWidth
// of zero disables truncation.
func truncateToWidth(text string, maxWidth float64, rtl bool, measure func(string) float64) string {
	if maxWidth <= 0 || text == "" || measure(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	if rtl {
		for i := 1; i < len(runes); i++ {
			candidate := ellipsis + string(runes[i:])
			if measure(candidate) <= maxWidth {
				return candidate
			}
		}
	} else {
		for i := len(runes) - 1; i > 0; i-- {
			candidate := string(runes[:i]) + ellipsis
			if measure(candidate) <= maxWidth {
				return candidate
			}
		}
	}
	return ellipsis
}

// truncateShapedToWidth truncates right-to-left text whose on-page width
// is only known after shaping; measure receives unshaped candidates and
// is expected to shape before measuring.
func truncateShapedToWidth(text string, maxWidth float64, measure func(string) float64) string {
	return truncateToWidth(text, maxWidth, true, measure)
}
