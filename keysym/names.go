package keysym

// latin1 holds the names of keysyms 0x20…0x7e, followed by 0xa0…0xff.
// Keysym values in this range are identical to their code-point.
var latin1 = [...]string{
	"space", "exclam", "quotedbl", "numbersign", "dollar", "percent", "ampersand",
	"apostrophe", "parenleft", "parenright", "asterisk", "plus", "comma", "minus",
	"period", "slash", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "colon",
	"semicolon", "less", "equal", "greater", "question", "at",
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P",
	"Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"bracketleft", "backslash", "bracketright", "asciicircum", "underscore", "grave",
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m", "n", "o", "p",
	"q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"braceleft", "bar", "braceright", "asciitilde",
	// 0xa0
	"nobreakspace", "exclamdown", "cent", "sterling", "currency", "yen", "brokenbar",
	"section", "diaeresis", "copyright", "ordfeminine", "guillemetleft", "notsign",
	"hyphen", "registered", "macron", "degree", "plusminus", "twosuperior",
	"threesuperior", "acute", "mu", "paragraph", "periodcentered", "cedilla",
	"onesuperior", "masculine", "guillemetright", "onequarter", "onehalf",
	"threequarters", "questiondown",
	// 0xc0
	"Agrave", "Aacute", "Acircumflex", "Atilde", "Adiaeresis", "Aring", "AE",
	"Ccedilla", "Egrave", "Eacute", "Ecircumflex", "Ediaeresis", "Igrave", "Iacute",
	"Icircumflex", "Idiaeresis", "ETH", "Ntilde", "Ograve", "Oacute", "Ocircumflex",
	"Otilde", "Odiaeresis", "multiply", "Oslash", "Ugrave", "Uacute", "Ucircumflex",
	"Udiaeresis", "Yacute", "THORN", "ssharp",
	// 0xe0
	"agrave", "aacute", "acircumflex", "atilde", "adiaeresis", "aring", "ae",
	"ccedilla", "egrave", "eacute", "ecircumflex", "ediaeresis", "igrave", "iacute",
	"icircumflex", "idiaeresis", "eth", "ntilde", "ograve", "oacute", "ocircumflex",
	"otilde", "odiaeresis", "division", "oslash", "ugrave", "uacute", "ucircumflex",
	"udiaeresis", "yacute", "thorn", "ydiaeresis",
}

type named struct {
	name string
	ks   Keysym
}

// aliases are alternative names; they never win the reverse mapping.
var aliases = []named{
	{"guillemotleft", 0xab},
	{"guillemotright", 0xbb},
	{"ordmasculine", 0xba},
	{"Ooblique", 0xd8},
	{"ooblique", 0xf8},
	{"Eth", 0xd0},
	{"Thorn", 0xde},
	{"script_switch", 0xff7e},
	{"ISO_Group_Shift", 0xff7e},
	{"dead_perispomeni", 0xfe53},
	{"dead_psili", 0xfe64},
	{"dead_dasia", 0xfe65},
}

var functionKeys = []named{
	{"NoSymbol", NoSymbol},
	{"BackSpace", 0xff08}, {"Tab", 0xff09}, {"Linefeed", 0xff0a}, {"Clear", 0xff0b},
	{"Return", 0xff0d}, {"Pause", 0xff13}, {"Scroll_Lock", 0xff14}, {"Sys_Req", 0xff15},
	{"Escape", 0xff1b}, {"Multi_key", MultiKey},
	{"Home", 0xff50}, {"Left", 0xff51}, {"Up", 0xff52}, {"Right", 0xff53},
	{"Down", 0xff54}, {"Prior", 0xff55}, {"Next", 0xff56}, {"End", 0xff57},
	{"Insert", 0xff63}, {"Menu", 0xff67}, {"Mode_switch", ModeSwitch}, {"Num_Lock", NumLock},
	{"KP_Space", 0xff80}, {"KP_Tab", 0xff89}, {"KP_Enter", 0xff8d},
	{"KP_Multiply", 0xffaa}, {"KP_Add", 0xffab}, {"KP_Separator", 0xffac},
	{"KP_Subtract", 0xffad}, {"KP_Decimal", 0xffae}, {"KP_Divide", 0xffaf},
	{"KP_0", 0xffb0}, {"KP_1", 0xffb1}, {"KP_2", 0xffb2}, {"KP_3", 0xffb3},
	{"KP_4", 0xffb4}, {"KP_5", 0xffb5}, {"KP_6", 0xffb6}, {"KP_7", 0xffb7},
	{"KP_8", 0xffb8}, {"KP_9", 0xffb9}, {"KP_Equal", 0xffbd},
	{"F1", 0xffbe}, {"F2", 0xffbf}, {"F3", 0xffc0}, {"F4", 0xffc1}, {"F5", 0xffc2},
	{"F6", 0xffc3}, {"F7", 0xffc4}, {"F8", 0xffc5}, {"F9", 0xffc6}, {"F10", 0xffc7},
	{"F11", 0xffc8}, {"F12", 0xffc9},
	{"Shift_L", ShiftL}, {"Shift_R", 0xffe2}, {"Control_L", 0xffe3}, {"Control_R", 0xffe4},
	{"Caps_Lock", 0xffe5}, {"Shift_Lock", 0xffe6}, {"Meta_L", 0xffe7}, {"Meta_R", 0xffe8},
	{"Alt_L", 0xffe9}, {"Alt_R", 0xffea}, {"Super_L", 0xffeb}, {"Super_R", 0xffec},
	{"Hyper_L", 0xffed}, {"Hyper_R", HyperR}, {"Delete", Delete},
	{"ISO_Lock", ISOLock}, {"ISO_Level2_Latch", 0xfe02}, {"ISO_Level3_Shift", 0xfe03},
	{"ISO_Level3_Latch", 0xfe04}, {"ISO_Level3_Lock", 0xfe05}, {"ISO_Group_Latch", 0xfe06},
	{"ISO_Group_Lock", 0xfe07}, {"ISO_Next_Group", 0xfe08}, {"ISO_Next_Group_Lock", 0xfe09},
	{"ISO_Prev_Group", 0xfe0a}, {"ISO_Prev_Group_Lock", 0xfe0b},
	{"ISO_First_Group", 0xfe0c}, {"ISO_First_Group_Lock", 0xfe0d},
	{"ISO_Last_Group", 0xfe0e}, {"ISO_Last_Group_Lock", ISOLastGrpLock},
	{"ISO_Level5_Shift", 0xfe11}, {"ISO_Level5_Latch", 0xfe12}, {"ISO_Level5_Lock", 0xfe13},
}

var deadKeys = []named{
	{"dead_grave", 0xfe50}, {"dead_acute", 0xfe51}, {"dead_circumflex", 0xfe52},
	{"dead_tilde", 0xfe53}, {"dead_macron", 0xfe54}, {"dead_breve", 0xfe55},
	{"dead_abovedot", 0xfe56}, {"dead_diaeresis", 0xfe57}, {"dead_abovering", 0xfe58},
	{"dead_doubleacute", 0xfe59}, {"dead_caron", 0xfe5a}, {"dead_cedilla", 0xfe5b},
	{"dead_ogonek", 0xfe5c}, {"dead_iota", 0xfe5d}, {"dead_voiced_sound", 0xfe5e},
	{"dead_semivoiced_sound", 0xfe5f}, {"dead_belowdot", 0xfe60}, {"dead_hook", 0xfe61},
	{"dead_horn", 0xfe62}, {"dead_stroke", 0xfe63}, {"dead_abovecomma", 0xfe64},
	{"dead_abovereversedcomma", 0xfe65}, {"dead_doublegrave", 0xfe66},
	{"dead_belowring", 0xfe67}, {"dead_belowmacron", 0xfe68},
	{"dead_belowcircumflex", 0xfe69}, {"dead_belowtilde", 0xfe6a},
	{"dead_belowbreve", 0xfe6b}, {"dead_belowdiaeresis", 0xfe6c},
	{"dead_invertedbreve", 0xfe6d}, {"dead_belowcomma", 0xfe6e},
	{"dead_currency", 0xfe6f}, {"dead_greek", 0xfe8c},
}

// legacy keysyms outside Latin-1, with the code-point they produce.
var legacy = []struct {
	named
	r rune
}{
	{named{"Aogonek", 0x1a1}, 0x0104}, {named{"breve", 0x1a2}, 0x02d8},
	{named{"Lstroke", 0x1a3}, 0x0141}, {named{"Scaron", 0x1a9}, 0x0160},
	{named{"Zcaron", 0x1ae}, 0x017d}, {named{"Zabovedot", 0x1af}, 0x017b},
	{named{"aogonek", 0x1b1}, 0x0105}, {named{"ogonek", 0x1b2}, 0x02db},
	{named{"lstroke", 0x1b3}, 0x0142}, {named{"caron", 0x1b7}, 0x02c7},
	{named{"scaron", 0x1b9}, 0x0161}, {named{"zcaron", 0x1be}, 0x017e},
	{named{"zabovedot", 0x1bf}, 0x017c}, {named{"Ccaron", 0x1c8}, 0x010c},
	{named{"Eogonek", 0x1ca}, 0x0118}, {named{"Ecaron", 0x1cc}, 0x011a},
	{named{"ccaron", 0x1e8}, 0x010d}, {named{"eogonek", 0x1ea}, 0x0119},
	{named{"ecaron", 0x1ec}, 0x011b}, {named{"abovedot", 0x1ff}, 0x02d9},
	{named{"doubleacute", 0x1bd}, 0x02dd},
	{named{"OE", 0x13bc}, 0x0152}, {named{"oe", 0x13bd}, 0x0153},
	{named{"Ydiaeresis", 0x13be}, 0x0178},
	{named{"emdash", 0xaa9}, 0x2014}, {named{"endash", 0xaaa}, 0x2013},
	{named{"ellipsis", 0xaae}, 0x2026}, {named{"trademark", 0xac9}, 0x2122},
	{named{"leftsinglequotemark", 0xad0}, 0x2018},
	{named{"rightsinglequotemark", 0xad1}, 0x2019},
	{named{"leftdoublequotemark", 0xad2}, 0x201c},
	{named{"rightdoublequotemark", 0xad3}, 0x201d},
	{named{"dagger", 0xaf1}, 0x2020}, {named{"doubledagger", 0xaf2}, 0x2021},
	{named{"singlelowquotemark", 0xafd}, 0x201a},
	{named{"doublelowquotemark", 0xafe}, 0x201e},
	{named{"EuroSign", 0x20ac}, 0x20ac},
}

var byName map[string]Keysym
var byValue map[Keysym]string
var legacyRunes map[Keysym]rune

func init() {
	byName = make(map[string]Keysym, 512)
	byValue = make(map[Keysym]string, 512)
	legacyRunes = make(map[Keysym]rune, len(legacy))
	register := func(name string, ks Keysym) {
		byName[name] = ks
		if _, ok := byValue[ks]; !ok {
			byValue[ks] = name
		}
	}
	for i, name := range latin1 {
		ks := Keysym(0x20 + i)
		if i >= 0x7f-0x20 {
			ks = Keysym(0xa0 + i - (0x7f - 0x20))
		}
		register(name, ks)
	}
	for _, n := range functionKeys {
		register(n.name, n.ks)
	}
	for _, n := range deadKeys {
		register(n.name, n.ks)
	}
	for _, l := range legacy {
		register(l.name, l.ks)
		legacyRunes[l.ks] = l.r
	}
	for _, n := range aliases {
		register(n.name, n.ks)
	}
}
