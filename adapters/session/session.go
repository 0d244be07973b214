package session

import (
	"fmt"
)

// sessionImpl 實作 ISession 介面，資料只存在於請求期間與 cookie 中
type sessionImpl struct {
	data   map[string]string                   // session 資料
	isNew  bool                                // 請求是否沒有有效的 cookie
	commit func(data map[string]string) error // 將資料寫回 cookie
}

// NewSession 建立新的 session 實例，commit 會在 Save 時被呼叫
func NewSession(data map[string]string, isNew bool, commit func(data map[string]string) error) ISession {
	return &sessionImpl{
		data:   data,
		isNew:  isNew,
		commit: commit,
	}
}

// Get 取得指定 key 的值
func (s *sessionImpl) Get(key string) string {
	if s.data == nil {
		return ""
	}
	return s.data[key]
}

// Set 設定 key-value 對
func (s *sessionImpl) Set(key string, value string) {
	if s.data == nil {
		s.data = make(map[string]string)
	}
	s.data[key] = value
}

// Delete 刪除指定 key 的值
func (s *sessionImpl) Delete(key string) {
	if s.data != nil {
		delete(s.data, key)
	}
}

// Clear 清空 session 資料
func (s *sessionImpl) Clear() {
	s.data = make(map[string]string)
}

// IsNew 表示請求沒有帶有效的 session cookie
func (s *sessionImpl) IsNew() bool {
	return s.isNew
}

// Save 將 session 資料編碼後寫出 Set-Cookie
func (s *sessionImpl) Save() error {
	const op = "sessionImpl.Save"
	if s.commit == nil {
		return fmt.Errorf("%s: session is not bound to a response", op)
	}
	data := s.data
	if data == nil {
		data = make(map[string]string)
	}
	if err := s.commit(data); err != nil {
		return fmt.Errorf("%s: failed to save session: %w", op, err)
	}
	s.isNew = false
	return nil
}
