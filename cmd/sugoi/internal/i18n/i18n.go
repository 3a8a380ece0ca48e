// Package i18n translates the user-facing messages of the tool views.
// English strings are the catalog keys; other languages register
// translations in init.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Each is a fmt format string.
const (
	MsgInvalidBase64   = "Invalid base64 input at byte %d (%s)."
	MsgInvalidDigit    = "Invalid digit %q at position %d for base %d."
	MsgEmptyNumber     = "Enter a number."
	MsgBaseOutOfRange  = "Base %d is out of range (%d to %d)."
	MsgInvalidPattern  = "Invalid regular expression: %v"
	MsgUnknownError    = "Something went wrong: %v"
	MsgCopied          = "Copied to clipboard."
	MsgCopyFailed      = "Copy failed: %v"
	MsgNothingToCopy   = "Nothing to copy."
	MsgUnderConstruct  = "%s is under construction."
	MsgSelectFromHere  = "Select from here"
	MsgNotValidUTF8    = "Decoded bytes are not valid UTF-8; showing a quoted form."
	MsgDecodedVariant  = "Decoded as %s."
	MsgEnterSamples    = "Enter one sample per line."
	MsgEnterPattern    = "Enter a regular expression."
	MsgEmptyUsesRandom = "Empty input shows a random phrase (ctrl+r to reroll)."
)

var japanese = map[string]string{
	MsgInvalidBase64:   "不正な base64 入力です（%[2]s、%[1]d バイト目）。",
	MsgInvalidDigit:    "%[3]d 進数として不正な文字 %[1]q があります（位置 %[2]d）。",
	MsgEmptyNumber:     "数値を入力してください。",
	MsgBaseOutOfRange:  "基数 %d は範囲外です（%d〜%d）。",
	MsgInvalidPattern:  "正規表現が不正です: %v",
	MsgUnknownError:    "エラーが発生しました: %v",
	MsgCopied:          "クリップボードにコピーしました。",
	MsgCopyFailed:      "コピーに失敗しました: %v",
	MsgNothingToCopy:   "コピーする内容がありません。",
	MsgUnderConstruct:  "%s は工事中です。",
	MsgSelectFromHere:  "ここから選んでね",
	MsgNotValidUTF8:    "デコード結果は UTF-8 ではないため、エスケープして表示しています。",
	MsgDecodedVariant:  "%s としてデコードしました。",
	MsgEnterSamples:    "サンプルを1行に1つずつ入力してください。",
	MsgEnterPattern:    "正規表現を入力してください。",
	MsgEmptyUsesRandom: "空欄のときはランダムなフレーズを表示します（ctrl+r で変更）。",
}

func init() {
	for key, msg := range japanese {
		if err := message.SetString(language.Japanese, key, msg); err != nil {
			panic(err)
		}
	}
}

// NewPrinter returns a printer for lang ("en", "ja", or any BCP 47 tag).
// Unsupported or malformed tags fall back to English.
func NewPrinter(lang string) *message.Printer {
	return message.NewPrinter(Match(lang))
}

// Match resolves lang to one of the supported tags.
func Match(lang string) language.Tag {
	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	if base, _ := tag.Base(); base.String() == "ja" {
		return language.Japanese
	}
	return language.English
}
