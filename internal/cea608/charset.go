package cea608

// Character tables from CEA-608-E. The basic set is ASCII with a handful of
// substitutions; the special and extended sets are addressed by command words
// and carry the accented characters the basic set lacks.

// standardChars lists where the basic set deviates from ASCII. Codes missing
// from the map pass through as their ASCII value.
var standardChars = map[byte]rune{
	0x2a: 'á',
	0x5c: 'é',
	0x5e: 'í',
	0x5f: 'ó',
	0x60: 'ú',
	0x7b: 'ç',
	0x7c: '÷',
	0x7d: 'Ñ',
	0x7e: 'ñ',
	0x7f: '█',
}

func standardChar(code byte) rune {
	if r, ok := standardChars[code]; ok {
		return r
	}
	return rune(code)
}

// transparentSpace is the one special character that clears the cursor cell
// instead of writing to it.
const transparentSpace = 0x39

// specialChars maps the low byte of a 0x11 special-character command,
// 0x30-0x3f. The transparentSpace slot is unused; the decoder handles it
// before the lookup.
var specialChars = map[byte]rune{
	0x30: '®',
	0x31: '°',
	0x32: '½',
	0x33: '¿',
	0x34: '™',
	0x35: '¢',
	0x36: '£',
	0x37: '♪',
	0x38: 'à',
	0x3a: 'è',
	0x3b: 'â',
	0x3c: 'ê',
	0x3d: 'î',
	0x3e: 'ô',
	0x3f: 'û',
}

// extendedChars maps (high byte, low byte) of the extended western-European
// sets. Each extended character is transmitted after a basic fallback
// character; insertion backspaces over the fallback first.
var extendedChars = map[[2]byte]rune{
	// Spanish and miscellaneous (0x12, 0x20-0x2f)
	{0x12, 0x20}: 'Á',
	{0x12, 0x21}: 'É',
	{0x12, 0x22}: 'Ó',
	{0x12, 0x23}: 'Ú',
	{0x12, 0x24}: 'Ü',
	{0x12, 0x25}: 'ü',
	{0x12, 0x26}: '‘',
	{0x12, 0x27}: '¡',
	{0x12, 0x28}: '*',
	{0x12, 0x29}: '\'',
	{0x12, 0x2a}: '—',
	{0x12, 0x2b}: '©',
	{0x12, 0x2c}: '℠',
	{0x12, 0x2d}: '•',
	{0x12, 0x2e}: '“',
	{0x12, 0x2f}: '”',
	// French (0x12, 0x30-0x3f)
	{0x12, 0x30}: 'À',
	{0x12, 0x31}: 'Â',
	{0x12, 0x32}: 'Ç',
	{0x12, 0x33}: 'È',
	{0x12, 0x34}: 'Ê',
	{0x12, 0x35}: 'Ë',
	{0x12, 0x36}: 'ë',
	{0x12, 0x37}: 'Î',
	{0x12, 0x38}: 'Ï',
	{0x12, 0x39}: 'ï',
	{0x12, 0x3a}: 'Ô',
	{0x12, 0x3b}: 'Ù',
	{0x12, 0x3c}: 'ù',
	{0x12, 0x3d}: 'Û',
	{0x12, 0x3e}: '«',
	{0x12, 0x3f}: '»',
	// Portuguese (0x13, 0x20-0x2f)
	{0x13, 0x20}: 'Ã',
	{0x13, 0x21}: 'ã',
	{0x13, 0x22}: 'Í',
	{0x13, 0x23}: 'Ì',
	{0x13, 0x24}: 'ì',
	{0x13, 0x25}: 'Ò',
	{0x13, 0x26}: 'ò',
	{0x13, 0x27}: 'Õ',
	{0x13, 0x28}: 'õ',
	{0x13, 0x29}: '{',
	{0x13, 0x2a}: '}',
	{0x13, 0x2b}: '\\',
	{0x13, 0x2c}: '^',
	{0x13, 0x2d}: '_',
	{0x13, 0x2e}: '|',
	{0x13, 0x2f}: '~',
	// German and Danish (0x13, 0x30-0x3f)
	{0x13, 0x30}: 'Ä',
	{0x13, 0x31}: 'ä',
	{0x13, 0x32}: 'Ö',
	{0x13, 0x33}: 'ö',
	{0x13, 0x34}: 'ß',
	{0x13, 0x35}: '¥',
	{0x13, 0x36}: '¤',
	{0x13, 0x37}: '¦',
	{0x13, 0x38}: 'Å',
	{0x13, 0x39}: 'å',
	{0x13, 0x3a}: 'Ø',
	{0x13, 0x3b}: 'ø',
	{0x13, 0x3c}: '┌',
	{0x13, 0x3d}: '┐',
	{0x13, 0x3e}: '└',
	{0x13, 0x3f}: '┘',
}
