package session

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// ErrDecode 表示 cookie 無法通過驗證或無法解碼，呼叫端應視為沒有 session
var ErrDecode = errors.New("session cookie decode failure")

var ErrNoSecret = errors.New("at least one session secret is required")

const keyDerivationInfo = "folio session cookie v1"

type payload struct {
	Data    map[string]string `msgpack:"d"`
	Expires int64             `msgpack:"e"`
}

type codecOptions struct {
	maxAge time.Duration
	now    func() time.Time
}

type CodecOption func(*codecOptions)

// WithCodecMaxAge 設定編碼內容的有效期限，0 表示不過期
func WithCodecMaxAge(maxAge time.Duration) CodecOption {
	return func(o *codecOptions) {
		o.maxAge = maxAge
	}
}

// WithCodecClock 設定取得目前時間的函數
func WithCodecClock(now func() time.Time) CodecOption {
	return func(o *codecOptions) {
		o.now = now
	}
}

// SecureCodec 以 XChaCha20-Poly1305 加密並驗證 session 資料。
// 第一個 secret 用來加密，所有 secret 都可以用來解密，方便輪替。
type SecureCodec struct {
	aeads   []cipher.AEAD
	options codecOptions
}

var _ ICodec = (*SecureCodec)(nil)

// NewSecureCodec 由一組 secret 建立 codec，空白的 secret 會被忽略
func NewSecureCodec(secrets []string, opts ...CodecOption) (*SecureCodec, error) {
	const op = "session.NewSecureCodec"
	options := codecOptions{
		maxAge: 30 * 24 * time.Hour,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&options)
	}

	aeads := make([]cipher.AEAD, 0, len(secrets))
	for _, secret := range secrets {
		secret = strings.TrimSpace(secret)
		if secret == "" {
			continue
		}
		key := make([]byte, chacha20poly1305.KeySize)
		if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyDerivationInfo)), key); err != nil {
			return nil, fmt.Errorf("%s: failed to derive key: %w", op, err)
		}
		aead, err := chacha20poly1305.NewX(key)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to create cipher: %w", op, err)
		}
		aeads = append(aeads, aead)
	}
	if len(aeads) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSecret)
	}

	return &SecureCodec{aeads: aeads, options: options}, nil
}

// Encode 序列化並加密資料，cookie 名稱作為附加驗證資料，避免值被搬到其他 cookie 使用
func (c *SecureCodec) Encode(name string, data map[string]string) (string, error) {
	const op = "SecureCodec.Encode"
	p := payload{Data: data}
	if c.options.maxAge > 0 {
		p.Expires = c.options.now().Add(c.options.maxAge).Unix()
	}
	plaintext, err := msgpack.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("%s: failed to marshal payload: %w", op, err)
	}

	aead := c.aeads[0]
	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("%s: failed to generate nonce: %w", op, err)
	}
	sealed := aead.Seal(nonce, nonce, plaintext, []byte(name))
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decode 驗證並解密 cookie 值，任何失敗都回傳 ErrDecode
func (c *SecureCodec) Decode(name, value string) (map[string]string, error) {
	const op = "SecureCodec.Decode"
	sealed, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid encoding: %w", op, ErrDecode)
	}

	if len(sealed) < chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, fmt.Errorf("%s: value too short: %w", op, ErrDecode)
	}

	for _, aead := range c.aeads {
		nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
		plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(name))
		if err != nil {
			continue
		}

		var p payload
		if err := msgpack.Unmarshal(plaintext, &p); err != nil {
			return nil, fmt.Errorf("%s: invalid payload: %w", op, ErrDecode)
		}
		if p.Expires > 0 && c.options.now().Unix() >= p.Expires {
			return nil, fmt.Errorf("%s: expired: %w", op, ErrDecode)
		}
		if p.Data == nil {
			p.Data = make(map[string]string)
		}
		return p.Data, nil
	}
	return nil, fmt.Errorf("%s: signature mismatch: %w", op, ErrDecode)
}
