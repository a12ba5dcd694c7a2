package i18n

import "strings"

// Translator retrieves localized messages for Issue codes and check
// descriptions. data provides optional metadata to embed in the message (for
// example, "value" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "duplicate_key":
			msg = "キーが重複しています"
		case "empty_union":
			msg = "ユニオンにメンバーがありません"
		case "discriminator_missing":
			msg = "識別キーが見つかりません"
		case "unsupported_type":
			msg = "未対応の型です"
		case "invalid_descriptor":
			msg = "不正な記述子です"
		case "parse_error":
			msg = "解析エラー"
		case "check_min_length":
			msg = "{value}文字以上で入力してください"
		case "check_max_length":
			msg = "{value}文字以下で入力してください"
		case "check_length":
			msg = "{value}文字で入力してください"
		case "check_pattern":
			msg = "パターン{value}に一致する必要があります"
		case "check_format":
			msg = "有効な{value}を入力してください"
		case "check_greater_than":
			msg = "{value}より大きい値を入力してください"
		case "check_less_than":
			msg = "{value}より小さい値を入力してください"
		case "check_at_least":
			msg = "{value}以上の値を入力してください"
		case "check_at_most":
			msg = "{value}以下の値を入力してください"
		case "check_multiple_of":
			msg = "{value}の倍数を入力してください"
		case "check_integer":
			msg = "整数を入力してください"
		case "check_min_items":
			msg = "{value}個以上の項目が必要です"
		case "check_max_items":
			msg = "{value}個以下の項目にしてください"
		case "check_after":
			msg = "{value}より後の日時を指定してください"
		case "check_before":
			msg = "{value}より前の日時を指定してください"
		}
	default: // "en"
		switch code {
		case "duplicate_key":
			msg = "duplicate key"
		case "empty_union":
			msg = "union has no members"
		case "discriminator_missing":
			msg = "discriminator not found"
		case "unsupported_type":
			msg = "unsupported type"
		case "invalid_descriptor":
			msg = "invalid descriptor"
		case "parse_error":
			msg = "parse error"
		case "check_min_length":
			msg = "must be at least {value} characters"
		case "check_max_length":
			msg = "must be at most {value} characters"
		case "check_length":
			msg = "must be exactly {value} characters"
		case "check_pattern":
			msg = "must match pattern {value}"
		case "check_format":
			msg = "must be a valid {value}"
		case "check_greater_than":
			msg = "must be greater than {value}"
		case "check_less_than":
			msg = "must be less than {value}"
		case "check_at_least":
			msg = "must be at least {value}"
		case "check_at_most":
			msg = "must be at most {value}"
		case "check_multiple_of":
			msg = "must be a multiple of {value}"
		case "check_integer":
			msg = "must be an integer"
		case "check_min_items":
			msg = "must contain at least {value} items"
		case "check_max_items":
			msg = "must contain at most {value} items"
		case "check_after":
			msg = "must be after {value}"
		case "check_before":
			msg = "must be before {value}"
		}
	}
	if msg == "" {
		return code
	}
	return expand(msg, data)
}

// expand substitutes {key} placeholders with entries from data.
func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
