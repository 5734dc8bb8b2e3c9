// SPDX-License-Identifier: Unlicense OR MIT

package key

import (
	"unicode"
)

// X keysym values, shared by GDK keyvals and xkbcommon.
const (
	keysymISOLeftTab = 0xfe20
	keysymBackSpace  = 0xff08
	keysymTab        = 0xff09
	keysymReturn     = 0xff0d
	keysymPause      = 0xff13
	keysymScrollLock = 0xff14
	keysymEscape     = 0xff1b
	keysymHome       = 0xff50
	keysymLeft       = 0xff51
	keysymUp         = 0xff52
	keysymRight      = 0xff53
	keysymDown       = 0xff54
	keysymPageUp     = 0xff55
	keysymPageDown   = 0xff56
	keysymEnd        = 0xff57
	keysymPrint      = 0xff61
	keysymInsert     = 0xff63
	keysymNumLock    = 0xff7f
	keysymKPSpace    = 0xff80
	keysymKPTab      = 0xff89
	keysymKPEnter    = 0xff8d
	keysymF1         = 0xffbe
	keysymF12        = 0xffc9
	keysymShiftL     = 0xffe1
	keysymShiftR     = 0xffe2
	keysymControlL   = 0xffe3
	keysymControlR   = 0xffe4
	keysymCapsLock   = 0xffe5
	keysymAltL       = 0xffe9
	keysymAltR       = 0xffea
	keysymSuperL     = 0xffeb
	keysymSuperR     = 0xffec
	keysymDelete     = 0xffff
)

var functionKeys = [...]Name{
	NameF1, NameF2, NameF3, NameF4, NameF5, NameF6,
	NameF7, NameF8, NameF9, NameF10, NameF11, NameF12,
}

// NameFromKeysym converts an X keysym to a key Name. Letters are
// reported in upper case.
func NameFromKeysym(s uint32) (Name, bool) {
	if s >= keysymF1 && s <= keysymF12 {
		return functionKeys[s-keysymF1], true
	}
	var n Name
	switch s {
	case keysymEscape:
		n = NameEscape
	case keysymLeft:
		n = NameLeftArrow
	case keysymRight:
		n = NameRightArrow
	case keysymUp:
		n = NameUpArrow
	case keysymDown:
		n = NameDownArrow
	case keysymReturn:
		n = NameReturn
	case keysymKPEnter:
		n = NameEnter
	case keysymHome:
		n = NameHome
	case keysymEnd:
		n = NameEnd
	case keysymBackSpace:
		n = NameDeleteBackward
	case keysymDelete:
		n = NameDeleteForward
	case keysymPageUp:
		n = NamePageUp
	case keysymPageDown:
		n = NamePageDown
	case keysymTab, keysymKPTab, keysymISOLeftTab:
		n = NameTab
	case 0x20, keysymKPSpace:
		n = NameSpace
	case keysymInsert:
		n = NameInsert
	case keysymPrint:
		n = NamePrint
	case keysymScrollLock:
		n = NameScrollLock
	case keysymPause:
		n = NamePause
	case keysymNumLock:
		n = NameNumLock
	case keysymCapsLock:
		n = NameCapsLock
	case keysymControlL:
		n = NameLeftCtrl
	case keysymControlR:
		n = NameRightCtrl
	case keysymShiftL:
		n = NameLeftShift
	case keysymShiftR:
		n = NameRightShift
	case keysymAltL:
		n = NameLeftAlt
	case keysymAltR:
		n = NameRightAlt
	case keysymSuperL:
		n = NameLeftSuper
	case keysymSuperR:
		n = NameRightSuper
	default:
		// Latin-1 keysyms equal their code points.
		if s > 0x20 && s <= 0xff && unicode.IsPrint(rune(s)) {
			return Name(string(unicode.ToUpper(rune(s)))), true
		}
		return "", false
	}
	return n, true
}
