// Package encoding maps charset names to decoders from
// golang.org/x/text/encoding. It exists so that the parser can accept
// byte input in legacy encodings, and so that package names such as
// "unicode" do not clash with the stdlib inside tagsoup.
package encoding

import (
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// normalize lowercases name and drops separators, so that "UTF-8",
// "utf_8" and "utf8" are the same charset.
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}

// Load returns the encoding registered under name, or nil if the name
// is not known.
func Load(name string) enc.Encoding {
	switch normalize(name) {
	case "", "utf8":
		return unicode.UTF8
	case "utf16", "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "utf16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case "eucjp":
		return japanese.EUCJP
	case "shiftjis", "sjis", "cp932":
		return japanese.ShiftJIS
	case "jis", "iso2022jp":
		return japanese.ISO2022JP
	case "big5":
		return traditionalchinese.Big5
	case "euckr":
		return korean.EUCKR
	case "gbk", "gb2312":
		return simplifiedchinese.GBK
	case "gb18030":
		return simplifiedchinese.GB18030
	case "hzgb2312":
		return simplifiedchinese.HZGB2312
	case "cp437":
		return charmap.CodePage437
	case "cp866":
		return charmap.CodePage866
	case "iso88592":
		return charmap.ISO8859_2
	case "iso88593":
		return charmap.ISO8859_3
	case "iso88594":
		return charmap.ISO8859_4
	case "iso88595":
		return charmap.ISO8859_5
	case "iso88596":
		return charmap.ISO8859_6
	case "iso88597":
		return charmap.ISO8859_7
	case "iso88598":
		return charmap.ISO8859_8
	case "iso885910":
		return charmap.ISO8859_10
	case "iso885913":
		return charmap.ISO8859_13
	case "iso885914":
		return charmap.ISO8859_14
	case "iso885915":
		return charmap.ISO8859_15
	case "iso885916":
		return charmap.ISO8859_16
	case "koi8r":
		return charmap.KOI8R
	case "koi8u":
		return charmap.KOI8U
	case "macintosh":
		return charmap.Macintosh
	case "windows1250":
		return charmap.Windows1250
	case "windows1251":
		return charmap.Windows1251
	// browsers treat latin-1 labels as windows-1252
	case "iso88591", "latin1", "usascii", "ascii", "windows1252":
		return charmap.Windows1252
	case "windows1253":
		return charmap.Windows1253
	case "windows1254":
		return charmap.Windows1254
	case "windows1255":
		return charmap.Windows1255
	case "windows1256":
		return charmap.Windows1256
	case "windows1257":
		return charmap.Windows1257
	case "windows1258":
		return charmap.Windows1258
	case "windows874":
		return charmap.Windows874
	}
	return nil
}
