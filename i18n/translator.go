package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for issue codes.
// data provides the values substituted into the message (for example,
// "field", "min" or "pattern").
type Translator interface {
	Message(code string, data map[string]string) string
}

// catalogs maps language -> code -> template. Placeholders are written
// {name} and replaced from the data map.
var catalogs = map[string]map[string]string{
	"en": {
		"invalid_type":    `Expected type "{expected}" but got "{got}"`,
		"required":        `Required field "{field}" is missing`,
		"too_few_items":   "Array must have at least {min} items",
		"too_many_items":  "Array must have at most {max} items",
		"too_short":       "String must be at least {min} characters",
		"too_long":        "String must be at most {max} characters",
		"pattern":         `String must match pattern "{pattern}"`,
		"invalid_pattern": `Invalid regular expression "{pattern}": {error}`,
		"invalid_enum":    "Value must be one of: {values}",
		"too_small":       "Number must be at least {min}",
		"too_big":         "Number must be at most {max}",
		"invalid_format":  `String must be a valid "{format}"`,
		"duplicate_key":   "duplicate key",
		"parse_error":     "{error}",
	},
	"ja": {
		"invalid_type":    `型 "{expected}" が必要ですが "{got}" でした`,
		"required":        `必須フィールド "{field}" がありません`,
		"too_few_items":   "配列の要素は {min} 個以上必要です",
		"too_many_items":  "配列の要素は {max} 個以下にしてください",
		"too_short":       "文字列は {min} 文字以上必要です",
		"too_long":        "文字列は {max} 文字以下にしてください",
		"pattern":         `文字列がパターン "{pattern}" に一致しません`,
		"invalid_pattern": `正規表現 "{pattern}" が不正です: {error}`,
		"invalid_enum":    "値は次のいずれかである必要があります: {values}",
		"too_small":       "数値は {min} 以上である必要があります",
		"too_big":         "数値は {max} 以下である必要があります",
		"invalid_format":  `文字列が "{format}" 形式ではありません`,
		"duplicate_key":   "キーが重複しています",
		"parse_error":     "解析エラー: {error}",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := catalogs[t.lang][code]
	if !ok {
		if tmpl, ok = catalogs["en"][code]; !ok {
			return code
		}
	}
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// Languages lists the built-in catalogue languages.
func Languages() []string { return []string{"en", "ja"} }

// ForLanguage returns the built-in Translator for lang without touching the
// process-wide one. Unknown languages select English.
func ForLanguage(lang string) Translator {
	if _, ok := catalogs[lang]; !ok {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// SetLanguage switches the built-in Translator language ("en"/"ja").
// Anything else selects English.
func SetLanguage(lang string) {
	tr := ForLanguage(lang)
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
