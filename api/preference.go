package api

import (
	"errors"
	"fmt"

	"folio/adapters/session"
	"folio/i18n"
)

const sessionKeyLang = "lang"

var ErrInvalidLang = errors.New("invalid language")

// ReadPreference 取得 session 中的語言設定，沒有 session 或值無效時回傳預設語言
func ReadPreference(s session.ISession) i18n.Lang {
	if s == nil {
		return i18n.Default
	}
	return i18n.Lang(s.Get(sessionKeyLang)).OrDefault()
}

// SetPreference 更新 session 中的語言設定並立即寫出 cookie
func SetPreference(s session.ISession, lang i18n.Lang) error {
	const op = "api.SetPreference"
	if s == nil {
		return fmt.Errorf("%s: %w", op, session.ErrSessionNotFound)
	}
	if !lang.Valid() {
		return fmt.Errorf("%s: %q: %w", op, lang, ErrInvalidLang)
	}
	s.Set(sessionKeyLang, lang.String())
	if err := s.Save(); err != nil {
		return fmt.Errorf("%s: failed to commit session: %w", op, err)
	}
	return nil
}
