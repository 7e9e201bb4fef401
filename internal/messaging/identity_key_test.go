package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		country string
		want    string
		wantErr bool
	}{
		{name: "formatted national mobile", raw: "(11) 99999-8888", country: "55", want: "+5511999998888"},
		{name: "national landline", raw: "11 3333-4444", country: "55", want: "+551133334444"},
		{name: "international with plus", raw: "+55 11 99999 8888", country: "55", want: "+5511999998888"},
		{name: "double zero prefix", raw: "0055 11 99999-8888", country: "55", want: "+5511999998888"},
		{name: "trunk prefix", raw: "011 99999-8888", country: "55", want: "+5511999998888"},
		{name: "missing ninth digit gets it", raw: "+55 11 9999-8888", country: "55", want: "+5511999998888"},
		{name: "missing ninth digit without plus", raw: "551199998888", country: "55", want: "+5511999998888"},
		{name: "brazilian landline keeps twelve digits", raw: "+55 11 3333-4444", country: "55", want: "+551133334444"},
		{name: "us number", raw: "+1 (415) 555-2671", country: "55", want: "+14155552671"},
		{name: "portuguese number", raw: "+351 912 345 678", country: "55", want: "+351912345678"},
		{name: "no default country keeps digits", raw: "4155552671", country: "", want: "+4155552671"},
		{name: "empty", raw: "   ", country: "55", wantErr: true},
		{name: "letters", raw: "call me", country: "55", wantErr: true},
		{name: "too short", raw: "+123456", country: "55", wantErr: true},
		{name: "too long", raw: "+1234567890123456", country: "55", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw, tt.country)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPhoneVariants(t *testing.T) {
	assert.Equal(t, []string{"+5511999998888", "+551199998888"}, PhoneVariants("+5511999998888"))
	assert.Equal(t, []string{"+551133334444"}, PhoneVariants("+551133334444"))
	assert.Equal(t, []string{"+14155552671"}, PhoneVariants("+14155552671"))
}

func TestParseWhatsAppJID(t *testing.T) {
	tests := []struct {
		name    string
		jid     string
		want    string
		wantErr error
	}{
		{name: "user jid", jid: "5511999998888@s.whatsapp.net", want: "whatsapp:+5511999998888"},
		{name: "legacy c.us jid", jid: "5511999998888@c.us", want: "whatsapp:+5511999998888"},
		{name: "jid without ninth digit", jid: "551199998888@c.us", want: "whatsapp:+5511999998888"},
		{name: "device suffix", jid: "5511999998888:12@s.whatsapp.net", want: "whatsapp:+5511999998888"},
		{name: "uppercase server", jid: "5511999998888@S.WHATSAPP.NET", want: "whatsapp:+5511999998888"},
		{name: "bare phone", jid: "+55 11 99999-8888", want: "whatsapp:+5511999998888"},
		{name: "lid", jid: "123456789012345@lid", want: "whatsapp:lid:123456789012345"},
		{name: "group", jid: "120363025246125888@g.us", wantErr: ErrNotAContact},
		{name: "status broadcast", jid: "status@broadcast", wantErr: ErrNotAContact},
		{name: "newsletter", jid: "120363025246125999@newsletter", wantErr: ErrNotAContact},
		{name: "unknown server", jid: "5511999998888@example.com", wantErr: ErrInvalidKey},
		{name: "non numeric user", jid: "abc@s.whatsapp.net", wantErr: ErrInvalidKey},
		{name: "empty", jid: "", wantErr: ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWhatsAppJID(tt.jid)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestChannelKeys(t *testing.T) {
	t.Run("email is lowercased", func(t *testing.T) {
		k, err := EmailKey("  Ana.Souza@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "email:ana.souza@example.com", k.String())
	})

	t.Run("invalid emails", func(t *testing.T) {
		for _, raw := range []string{"", "ana", "@example.com", "ana@", "a@b@c", "ana souza@example.com"} {
			_, err := EmailKey(raw)
			assert.ErrorIs(t, err, ErrInvalidEmail, raw)
		}
	})

	t.Run("instagram ids are digits", func(t *testing.T) {
		k, err := InstagramKey("17841400000000000")
		require.NoError(t, err)
		assert.Equal(t, "instagram:17841400000000000", k.String())

		_, err = InstagramKey("ana.souza")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("chatwoot ids are digits", func(t *testing.T) {
		k, err := ChatwootKey(" 42 ")
		require.NoError(t, err)
		assert.Equal(t, "chatwoot:42", k.String())

		_, err = ChatwootKey("")
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("phone and whatsapp share the E.164 value", func(t *testing.T) {
		p, err := PhoneKey("(11) 99999-8888", DefaultCountryCode)
		require.NoError(t, err)
		w, err := ParseWhatsAppJID("551199998888@s.whatsapp.net")
		require.NoError(t, err)
		assert.Equal(t, p.Value, w.Value)
		assert.Equal(t, "phone:+5511999998888", p.String())
	})

	t.Run("unknown channel", func(t *testing.T) {
		_, err := KeyFromChannel("telegram", "123")
		assert.ErrorIs(t, err, ErrUnknownChannel)
	})
}

func TestParseKeyRoundTrip(t *testing.T) {
	for _, raw := range []string{
		"whatsapp:+5511999998888",
		"whatsapp:lid:123456",
		"phone:+14155552671",
		"email:ana@example.com",
		"instagram:1784140000",
		"chatwoot:42",
	} {
		k, err := ParseKey(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, k.String())
	}

	_, err := ParseKey("nochannel")
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = ParseKey("fax:123")
	assert.ErrorIs(t, err, ErrUnknownChannel)
	_, err = ParseKey("phone:+55 11")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "WhatsApp:551199998888@c.us", want: "whatsapp:+5511999998888"},
		{in: "whatsapp:lid:999", want: "whatsapp:lid:999"},
		{in: "phone:(11) 99999-8888", want: "phone:+5511999998888"},
		{in: "email: Ana@Example.com", want: "email:ana@example.com"},
		{in: "instagram:1784140000", want: "instagram:1784140000"},
		{in: "chatwoot:7", want: "chatwoot:7"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			once, err := Canonicalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, once)

			twice, err := Canonicalize(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}

	_, err := Canonicalize("phone:")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestCandidateKeys(t *testing.T) {
	t.Run("whatsapp sender", func(t *testing.T) {
		keys, err := CandidateKeys(IdentityInput{
			Channel:    ChannelWhatsApp,
			ExternalID: "551199998888@c.us",
			Email:      "Ana@Example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"whatsapp:+5511999998888",
			"whatsapp:+551199998888",
			"phone:+5511999998888",
			"phone:+551199998888",
			"email:ana@example.com",
		}, keyStrings(keys))
	})

	t.Run("duplicate phone collapses", func(t *testing.T) {
		keys, err := CandidateKeys(IdentityInput{
			Channel:    ChannelWhatsApp,
			ExternalID: "5511999998888@s.whatsapp.net",
			Phone:      "(11) 99999-8888",
		})
		require.NoError(t, err)
		assert.Len(t, keys, 4)
	})

	t.Run("instagram with invalid email", func(t *testing.T) {
		keys, err := CandidateKeys(IdentityInput{
			Channel:    ChannelInstagram,
			ExternalID: "1784140000",
			Email:      "not-an-email",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"instagram:1784140000"}, keyStrings(keys))
	})

	t.Run("group is rejected", func(t *testing.T) {
		_, err := CandidateKeys(IdentityInput{Channel: ChannelWhatsApp, ExternalID: "1203630@g.us"})
		assert.ErrorIs(t, err, ErrNotAContact)
	})

	t.Run("persisted keys skip legacy spellings", func(t *testing.T) {
		_, persist, err := candidateKeys(IdentityInput{Channel: ChannelWhatsApp, ExternalID: "5511999998888@c.us"})
		require.NoError(t, err)
		assert.Equal(t, []string{"whatsapp:+5511999998888", "phone:+5511999998888"}, keyStrings(persist))
	})

	t.Run("nothing usable", func(t *testing.T) {
		keys, err := CandidateKeys(IdentityInput{Channel: ChannelChatwoot, Name: "Ana"})
		require.NoError(t, err)
		assert.Empty(t, keys)
	})
}
