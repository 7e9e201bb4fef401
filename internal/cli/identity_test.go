package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(cmd *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestNormalizeKeys(t *testing.T) {
	out, err := execute(IdentityCmd(), "normalize", "EMAIL: Maria@Example.COM ", "whatsapp:5511987654321@c.us")

	require.NoError(t, err)
	assert.Contains(t, out, "email:maria@example.com")
	assert.Contains(t, out, "whatsapp:+5511987654321")
}

func TestNormalizeIsIdempotent(t *testing.T) {
	first, err := normalizeArg("", "55", "phone:(11) 98765-4321")
	require.NoError(t, err)

	second, err := normalizeArg("", "55", first)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNormalizeRawWithChannel(t *testing.T) {
	out, err := execute(IdentityCmd(), "normalize", "--channel", "whatsapp", "5511987654321@s.whatsapp.net")

	require.NoError(t, err)
	assert.Contains(t, out, "whatsapp:+5511987654321")
}

func TestNormalizeReportsFailures(t *testing.T) {
	out, err := execute(IdentityCmd(), "normalize", "email:maria@example.com", "fax:123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "email:maria@example.com")
	assert.Contains(t, out, "fax:123")
}

func TestNormalizeRejectsGroupJID(t *testing.T) {
	_, err := execute(IdentityCmd(), "normalize", "--channel", "whatsapp", "120363025246125486@g.us")

	assert.Error(t, err)
}

func TestCandidates(t *testing.T) {
	out, err := execute(IdentityCmd(), "candidates",
		"--channel", "whatsapp",
		"--external-id", "5511987654321@c.us",
		"--email", "Maria@Example.com",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "1. whatsapp:+5511987654321")
	assert.Contains(t, out, "email:maria@example.com")
}

func TestCandidatesWithoutInput(t *testing.T) {
	out, err := execute(IdentityCmd(), "candidates")

	require.NoError(t, err)
	assert.Contains(t, out, "No usable identity keys")
}
