package session

// ICodec 將 session 資料編碼為 cookie 值，並在讀取時驗證與解碼
type ICodec interface {
	Encode(name string, data map[string]string) (string, error)
	Decode(name, value string) (map[string]string, error)
}

// ISession 是單一請求範圍內的 session，資料本身就存放在 cookie 中
type ISession interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
	Clear()
	// IsNew 表示請求沒有帶有效的 session cookie
	IsNew() bool
	// Save 重新編碼資料並寫出 Set-Cookie
	Save() error
}
