package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_GetSetDelete(t *testing.T) {
	tests := []struct {
		name    string
		initial map[string]string
		action  func(ISession)
		key     string
		want    string
	}{
		{
			name:    "get from nil data",
			initial: nil,
			action:  func(s ISession) {},
			key:     "lang",
			want:    "",
		},
		{
			name:    "set on nil data",
			initial: nil,
			action:  func(s ISession) { s.Set("lang", "ja") },
			key:     "lang",
			want:    "ja",
		},
		{
			name:    "overwrite existing value",
			initial: map[string]string{"lang": "en"},
			action:  func(s ISession) { s.Set("lang", "ja") },
			key:     "lang",
			want:    "ja",
		},
		{
			name:    "delete existing value",
			initial: map[string]string{"lang": "ja"},
			action:  func(s ISession) { s.Delete("lang") },
			key:     "lang",
			want:    "",
		},
		{
			name:    "clear all values",
			initial: map[string]string{"lang": "ja", "other": "x"},
			action:  func(s ISession) { s.Clear() },
			key:     "other",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.initial, tt.initial == nil, nil)
			tt.action(s)
			assert.Equal(t, tt.want, s.Get(tt.key))
		})
	}
}

func TestSession_Save(t *testing.T) {
	commitErr := errors.New("commit failed")

	tests := []struct {
		name      string
		data      map[string]string
		commitErr error
		nilCommit bool
		wantErr   bool
		wantNew   bool
		wantData  map[string]string
	}{
		{
			name:     "successful save",
			data:     map[string]string{"lang": "ja"},
			wantNew:  false,
			wantData: map[string]string{"lang": "ja"},
		},
		{
			name:     "nil data saves empty map",
			data:     nil,
			wantNew:  false,
			wantData: map[string]string{},
		},
		{
			name:      "commit error",
			data:      map[string]string{"lang": "ja"},
			commitErr: commitErr,
			wantErr:   true,
			wantNew:   true,
		},
		{
			name:      "unbound session",
			data:      map[string]string{"lang": "ja"},
			nilCommit: true,
			wantErr:   true,
			wantNew:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var committed map[string]string
			commit := func(data map[string]string) error {
				if tt.commitErr != nil {
					return tt.commitErr
				}
				committed = data
				return nil
			}
			if tt.nilCommit {
				commit = nil
			}

			s := NewSession(tt.data, true, commit)
			err := s.Save()
			if tt.wantErr {
				assert.Error(t, err)
				if tt.commitErr != nil {
					assert.ErrorIs(t, err, tt.commitErr)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantData, committed)
			}
			assert.Equal(t, tt.wantNew, s.IsNew())
		})
	}
}
