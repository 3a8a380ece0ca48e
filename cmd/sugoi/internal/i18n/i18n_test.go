package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	assert.Equal(t, language.English, Match("en"))
	assert.Equal(t, language.English, Match("en-GB"))
	assert.Equal(t, language.Japanese, Match("ja"))
	assert.Equal(t, language.Japanese, Match("ja-JP"))
	assert.Equal(t, language.English, Match("fr"))
	assert.Equal(t, language.English, Match("!!"))
}

func TestPrinterTranslates(t *testing.T) {
	en := NewPrinter("en")
	ja := NewPrinter("ja")

	assert.Equal(t, "Enter a number.", en.Sprintf(MsgEmptyNumber))
	assert.Equal(t, "数値を入力してください。", ja.Sprintf(MsgEmptyNumber))

	assert.Equal(t, "Invalid digit 'z' at position 2 for base 10.", en.Sprintf(MsgInvalidDigit, 'z', 2, 10))
	assert.Equal(t, "10 進数として不正な文字 'z' があります（位置 2）。", ja.Sprintf(MsgInvalidDigit, 'z', 2, 10))
}

func TestEveryKeyHasJapanese(t *testing.T) {
	keys := []string{
		MsgInvalidBase64, MsgInvalidDigit, MsgEmptyNumber, MsgBaseOutOfRange,
		MsgInvalidPattern, MsgUnknownError, MsgCopied, MsgCopyFailed,
		MsgNothingToCopy, MsgUnderConstruct, MsgSelectFromHere, MsgNotValidUTF8,
		MsgDecodedVariant, MsgEnterSamples, MsgEnterPattern, MsgEmptyUsesRandom,
	}
	for _, k := range keys {
		_, ok := japanese[k]
		assert.True(t, ok, k)
	}
}
