package i18n

import "sync"

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "segment" or "address").
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
		case "missing_root":
			msg = "バインド対象のルートオブジェクトがありません"
		case "invalid_listener":
			msg = "changeListener に ChangeHappened メソッドがありません"
		case "unknown_translator":
			msg = "未知のトランスレータです"
		case "empty_address":
			msg = "アドレスが空です"
		case "null_segment":
			msg = "パスの途中で null に到達しました"
		case "not_container":
			msg = "オブジェクトでも配列でもない値に到達しました"
		case "bad_index":
			msg = "配列のインデックスが整数ではありません"
		case "unassignable":
			msg = "値を代入できません"
		}
	default: // "en"
		switch code {
		case "missing_root":
			msg = "settings must carry a root object to bind to"
		case "invalid_listener":
			msg = "a change listener must have a ChangeHappened method"
		case "unknown_translator":
			msg = "unknown translator"
		case "empty_address":
			msg = "address has no segments"
		case "null_segment":
			msg = "encountered a null value"
		case "not_container":
			msg = "encountered a value that is neither mapping nor sequence"
		case "bad_index":
			msg = "sequence index is not an integer"
		case "unassignable":
			msg = "value cannot be assigned"
		}
	}
	if msg == "" {
		return code
	}
	if d := data["detail"]; d != "" {
		msg += " (" + d + ")"
	}
	return msg
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
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
