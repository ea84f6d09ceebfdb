package i18n

// Arabic Unicode blocks: main, Supplement, Extended-A and both Presentation
// Forms ranges. Presentation forms show up in pre-shaped input, so they
// count as Arabic too.
var arabicRanges = [...][2]rune{
	{0x0600, 0x06FF},
	{0x0750, 0x077F},
	{0x08A0, 0x08FF},
	{0xFB50, 0xFDFF},
	{0xFE70, 0xFEFF},
}

type Direction string

const (
	DirLTR Direction = "ltr"
	DirRTL Direction = "rtl"
)

func isArabicRune(r rune) bool {
	for _, rg := range arabicRanges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// IsRTL reports whether text contains at least one Arabic-script codepoint.
func IsRTL(text string) bool {
	for _, r := range text {
		if isArabicRune(r) {
			return true
		}
	}
	return false
}

func DirectionOf(text string) Direction {
	if IsRTL(text) {
		return DirRTL
	}
	return DirLTR
}

// IsMixed reports whether text carries both Arabic-script characters and
// Latin letters or ASCII digits.
func IsMixed(text string) bool {
	var hasArabic, hasLatin bool
	for _, r := range text {
		switch {
		case isArabicRune(r):
			hasArabic = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			hasLatin = true
		}
		if hasArabic && hasLatin {
			return true
		}
	}
	return false
}
