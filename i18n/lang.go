package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Lang 代表網站支援的顯示語言
type Lang string

const (
	English  Lang = "en"
	Japanese Lang = "ja"

	Default Lang = English
)

// Supported 依照 matcher 的優先順序列出所有支援的語言
var Supported = []Lang{English, Japanese}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Japanese,
})

// Parse 將使用者輸入的語言標籤轉換為支援的語言，
// 接受 "ja-JP"、"EN" 這類變體，無法對應時回傳 false
func Parse(value string) (Lang, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return "", false
	}
	return Supported[index], true
}

// Valid 檢查是否為支援的語言
func (l Lang) Valid() bool {
	return l == English || l == Japanese
}

// OrDefault 在語言無效時回傳預設語言
func (l Lang) OrDefault() Lang {
	if l.Valid() {
		return l
	}
	return Default
}

func (l Lang) String() string {
	return string(l)
}
