package messaging

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Channel is the prefix of an identity key
type Channel string

const (
	ChannelWhatsApp  Channel = "whatsapp"
	ChannelInstagram Channel = "instagram"
	ChannelPhone     Channel = "phone"
	ChannelEmail     Channel = "email"
	ChannelChatwoot  Channel = "chatwoot"
)

// IsValid checks if the Channel is known
func (c Channel) IsValid() bool {
	switch c {
	case ChannelWhatsApp, ChannelInstagram, ChannelPhone, ChannelEmail, ChannelChatwoot:
		return true
	}
	return false
}

// DefaultCountryCode is prepended to national numbers when the organization has no override
const DefaultCountryCode = "55"

const lidPrefix = "lid:"

var (
	ErrNotAContact    = errors.New("address does not identify a single contact")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrInvalidEmail   = errors.New("invalid e-mail address")
	ErrInvalidKey     = errors.New("invalid identity key")
	ErrUnknownChannel = errors.New("unknown identity channel")
)

// IdentityKey is a canonical "<channel>:<value>" pair
type IdentityKey struct {
	Channel Channel
	Value   string
}

func (k IdentityKey) String() string {
	return string(k.Channel) + ":" + k.Value
}

// IsPhoneBacked reports whether Value is an E.164 number
func (k IdentityKey) IsPhoneBacked() bool {
	return (k.Channel == ChannelPhone || k.Channel == ChannelWhatsApp) && strings.HasPrefix(k.Value, "+")
}

// ParseKey splits a stored key into channel and value without re-normalizing the value
func ParseKey(key string) (IdentityKey, error) {
	channel, value, ok := strings.Cut(strings.TrimSpace(key), ":")
	if !ok || value == "" {
		return IdentityKey{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	c := Channel(strings.ToLower(channel))
	if !c.IsValid() {
		return IdentityKey{}, fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}
	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return IdentityKey{}, fmt.Errorf("%w: value contains whitespace", ErrInvalidKey)
	}
	return IdentityKey{Channel: c, Value: value}, nil
}

// Canonicalize re-normalizes a key. Canonicalize(Canonicalize(k)) == Canonicalize(k).
func Canonicalize(key string) (string, error) {
	channel, value, ok := strings.Cut(strings.TrimSpace(key), ":")
	if !ok || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	canonical, err := KeyFromChannel(Channel(strings.ToLower(strings.TrimSpace(channel))), value)
	if err != nil {
		return "", err
	}
	return canonical.String(), nil
}

// KeyFromChannel builds the key for a raw identifier received on a channel
func KeyFromChannel(channel Channel, raw string) (IdentityKey, error) {
	switch Channel(strings.ToLower(string(channel))) {
	case ChannelWhatsApp:
		if v := strings.ToLower(strings.TrimSpace(raw)); strings.HasPrefix(v, lidPrefix) {
			return lidKey(strings.TrimPrefix(v, lidPrefix))
		}
		return ParseWhatsAppJID(raw)
	case ChannelPhone:
		return PhoneKey(raw, DefaultCountryCode)
	case ChannelEmail:
		return EmailKey(raw)
	case ChannelInstagram:
		return InstagramKey(raw)
	case ChannelChatwoot:
		return ChatwootKey(raw)
	}
	return IdentityKey{}, fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
}

// NormalizePhone converts a human or machine formatted number to E.164 ("+<digits>").
// Numbers without a country code of 10 or 11 digits get defaultCountry. Brazilian mobile
// numbers missing the ninth digit get it added so every spelling of a number converges.
func NormalizePhone(raw, defaultCountry string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrInvalidPhone
	}

	international := strings.HasPrefix(s, "+")
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' || r == ' ' || r == '-' || r == '.' || r == '(' || r == ')' || r == '/':
		default:
			return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
		}
	}
	digits := b.String()

	if !international {
		switch {
		case strings.HasPrefix(digits, "00"):
			digits = digits[2:]
			international = true
		case strings.HasPrefix(digits, "0") && (len(digits) == 11 || len(digits) == 12):
			// national trunk prefix, e.g. 011 99999-8888
			digits = digits[1:]
		}
	}
	if !international && (len(digits) == 10 || len(digits) == 11) && defaultCountry != "" {
		digits = defaultCountry + digits
	}

	if len(digits) < 8 || len(digits) > 15 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}

	return "+" + addBrazilianNinthDigit(digits), nil
}

func addBrazilianNinthDigit(digits string) string {
	if len(digits) != 12 || !strings.HasPrefix(digits, "55") {
		return digits
	}
	ddd, subscriber := digits[2:4], digits[4:]
	if ddd[0] == '0' || ddd[1] == '0' {
		return digits
	}
	if subscriber[0] < '6' {
		// landline
		return digits
	}
	return "55" + ddd + "9" + subscriber
}

// PhoneVariants returns the canonical number first, then the Brazilian spelling without the
// ninth digit that older rows and WhatsApp JIDs may still carry.
func PhoneVariants(e164 string) []string {
	variants := []string{e164}
	digits := strings.TrimPrefix(e164, "+")
	if len(digits) == 13 && strings.HasPrefix(digits, "55") && digits[4] == '9' && digits[5] >= '6' {
		variants = append(variants, "+"+digits[:4]+digits[5:])
	}
	return variants
}

// ParseWhatsAppJID maps a WhatsApp address to its identity key. Group, broadcast and
// newsletter addresses return ErrNotAContact.
func ParseWhatsAppJID(jid string) (IdentityKey, error) {
	s := strings.ToLower(strings.TrimSpace(jid))
	if s == "" {
		return IdentityKey{}, fmt.Errorf("%w: empty jid", ErrInvalidKey)
	}

	at := strings.LastIndex(s, "@")
	if at < 0 {
		return WhatsAppKey(s)
	}
	user, server := s[:at], s[at+1:]
	// drop agent and device parts: user.agent:device
	if i := strings.IndexAny(user, ".:"); i >= 0 {
		user = user[:i]
	}

	switch server {
	case "g.us", "broadcast", "newsletter", "call":
		return IdentityKey{}, fmt.Errorf("%w: %s", ErrNotAContact, jid)
	case "lid":
		return lidKey(user)
	case "s.whatsapp.net", "c.us":
		if user == "" || !isDigits(user) {
			return IdentityKey{}, fmt.Errorf("%w: %q", ErrInvalidKey, jid)
		}
		phone, err := NormalizePhone("+"+user, "")
		if err != nil {
			return IdentityKey{}, err
		}
		return IdentityKey{Channel: ChannelWhatsApp, Value: phone}, nil
	}
	return IdentityKey{}, fmt.Errorf("%w: unsupported server %q", ErrInvalidKey, server)
}

func lidKey(id string) (IdentityKey, error) {
	if id == "" || !isDigits(id) {
		return IdentityKey{}, fmt.Errorf("%w: lid %q", ErrInvalidKey, id)
	}
	return IdentityKey{Channel: ChannelWhatsApp, Value: lidPrefix + id}, nil
}

// WhatsAppKey builds the WhatsApp key of a phone number
func WhatsAppKey(phone string) (IdentityKey, error) {
	e164, err := NormalizePhone(phone, DefaultCountryCode)
	if err != nil {
		return IdentityKey{}, err
	}
	return IdentityKey{Channel: ChannelWhatsApp, Value: e164}, nil
}

// PhoneKey builds the channel-independent phone key
func PhoneKey(phone, defaultCountry string) (IdentityKey, error) {
	e164, err := NormalizePhone(phone, defaultCountry)
	if err != nil {
		return IdentityKey{}, err
	}
	return IdentityKey{Channel: ChannelPhone, Value: e164}, nil
}

// EmailKey builds the e-mail key. Addresses are compared case-insensitively.
func EmailKey(email string) (IdentityKey, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return IdentityKey{}, err
	}
	return IdentityKey{Channel: ChannelEmail, Value: normalized}, nil
}

// NormalizeEmail trims and lowercases an address and checks its basic shape
func NormalizeEmail(email string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(email))
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" || strings.Contains(domain, "@") ||
		strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return s, nil
}

// InstagramKey builds the key of an Instagram-scoped user id
func InstagramKey(igsid string) (IdentityKey, error) {
	s := strings.TrimSpace(igsid)
	if s == "" || !isDigits(s) {
		return IdentityKey{}, fmt.Errorf("%w: instagram id %q", ErrInvalidKey, igsid)
	}
	return IdentityKey{Channel: ChannelInstagram, Value: s}, nil
}

// ChatwootKey builds the fallback key of a Chatwoot contact id
func ChatwootKey(id string) (IdentityKey, error) {
	s := strings.TrimSpace(id)
	if s == "" || !isDigits(s) {
		return IdentityKey{}, fmt.Errorf("%w: chatwoot contact id %q", ErrInvalidKey, id)
	}
	return IdentityKey{Channel: ChannelChatwoot, Value: s}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// IdentityInput is what a channel knows about a sender
type IdentityInput struct {
	Channel        Channel
	ExternalID     string // JID, IGSID or Chatwoot contact id
	Phone          string
	Email          string
	Name           string
	AvatarURL      string
	DefaultCountry string
}

// CandidateKeys returns the ordered, de-duplicated keys used to look a sender up: channel key
// first, then phone variants, then e-mail. Unparseable phones and e-mails are skipped; an
// address that is not a contact (group, broadcast) is an error.
func CandidateKeys(in IdentityInput) ([]IdentityKey, error) {
	lookup, _, err := candidateKeys(in)
	return lookup, err
}

// candidateKeys also returns the subset worth persisting: lookups include legacy phone
// spellings that are never stored.
func candidateKeys(in IdentityInput) (lookup, persist []IdentityKey, err error) {
	seen := map[string]bool{}
	add := func(k IdentityKey, store bool) {
		s := k.String()
		if seen[s] {
			return
		}
		seen[s] = true
		lookup = append(lookup, k)
		if store {
			persist = append(persist, k)
		}
	}

	country := in.DefaultCountry
	if country == "" {
		country = DefaultCountryCode
	}

	var phones []string
	if in.ExternalID != "" && in.Channel != "" {
		var k IdentityKey
		if in.Channel == ChannelWhatsApp {
			k, err = ParseWhatsAppJID(in.ExternalID)
		} else {
			k, err = KeyFromChannel(in.Channel, in.ExternalID)
		}
		if errors.Is(err, ErrNotAContact) {
			return nil, nil, err
		}
		if err == nil {
			add(k, true)
			if k.IsPhoneBacked() {
				phones = append(phones, k.Value)
				for _, v := range PhoneVariants(k.Value)[1:] {
					add(IdentityKey{Channel: k.Channel, Value: v}, false)
				}
			}
		}
		err = nil
	}

	if in.Phone != "" {
		if p, perr := NormalizePhone(in.Phone, country); perr == nil {
			if in.Channel == ChannelWhatsApp && in.ExternalID == "" {
				add(IdentityKey{Channel: ChannelWhatsApp, Value: p}, true)
			}
			phones = append(phones, p)
		}
	}
	for _, p := range phones {
		for i, v := range PhoneVariants(p) {
			add(IdentityKey{Channel: ChannelPhone, Value: v}, i == 0)
		}
	}

	if in.Email != "" {
		if k, eerr := EmailKey(in.Email); eerr == nil {
			add(k, true)
		}
	}

	return lookup, persist, nil
}
