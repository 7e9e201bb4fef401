package cli

import (
	"fmt"
	"strings"

	"crm-backend/internal/messaging"

	"github.com/spf13/cobra"
)

// IdentityCmd returns the identity key command group
func IdentityCmd() *cobra.Command {
	identityCmd := &cobra.Command{
		Use:   "identity",
		Short: "Inspect identity keys",
		Long:  "Normalize identity keys and show the lookup keys the resolver derives for a sender",
	}

	normalizeCmd := &cobra.Command{
		Use:   "normalize [key...]",
		Short: "Print the canonical form of identity keys",
		Long: `Canonicalize "<channel>:<value>" keys, e.g. "phone:(11) 98765-4321".
With --channel the arguments are raw identifiers received on that channel
(a WhatsApp JID, an Instagram IGSID, an e-mail address, ...).`,
		Args: cobra.MinimumNArgs(1),
		RunE: runNormalize,
	}
	normalizeCmd.Flags().String("channel", "", "Treat arguments as raw identifiers of this channel")
	normalizeCmd.Flags().String("country", messaging.DefaultCountryCode, "Country code for national phone numbers")

	candidatesCmd := &cobra.Command{
		Use:   "candidates",
		Short: "List the keys used to look a sender up, in resolution order",
		RunE:  runCandidates,
	}
	candidatesCmd.Flags().String("channel", "", "Channel the sender wrote on")
	candidatesCmd.Flags().String("external-id", "", "Channel id: JID, IGSID or Chatwoot contact id")
	candidatesCmd.Flags().String("phone", "", "Phone number as received")
	candidatesCmd.Flags().String("email", "", "E-mail address as received")
	candidatesCmd.Flags().String("country", messaging.DefaultCountryCode, "Country code for national phone numbers")

	identityCmd.AddCommand(normalizeCmd)
	identityCmd.AddCommand(candidatesCmd)
	return identityCmd
}

func runNormalize(cmd *cobra.Command, args []string) error {
	channel, _ := cmd.Flags().GetString("channel")
	country, _ := cmd.Flags().GetString("country")
	out := cmd.OutOrStdout()

	failed := 0
	for _, arg := range args {
		key, err := normalizeArg(channel, country, arg)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", failMark, arg, err)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", okMark, key)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d key(s) could not be normalized", failed, len(args))
	}
	return nil
}

func normalizeArg(channel, country, arg string) (string, error) {
	if channel == "" {
		c, value, _ := strings.Cut(arg, ":")
		if messaging.Channel(strings.ToLower(c)) == messaging.ChannelPhone {
			key, err := messaging.PhoneKey(value, country)
			return key.String(), err
		}
		return messaging.Canonicalize(arg)
	}

	if messaging.Channel(strings.ToLower(channel)) == messaging.ChannelPhone {
		key, err := messaging.PhoneKey(arg, country)
		return key.String(), err
	}
	key, err := messaging.KeyFromChannel(messaging.Channel(channel), arg)
	if err != nil {
		return "", err
	}
	return key.String(), nil
}

func runCandidates(cmd *cobra.Command, args []string) error {
	channel, _ := cmd.Flags().GetString("channel")
	externalID, _ := cmd.Flags().GetString("external-id")
	phone, _ := cmd.Flags().GetString("phone")
	email, _ := cmd.Flags().GetString("email")
	country, _ := cmd.Flags().GetString("country")

	keys, err := messaging.CandidateKeys(messaging.IdentityInput{
		Channel:        messaging.Channel(strings.ToLower(channel)),
		ExternalID:     externalID,
		Phone:          phone,
		Email:          email,
		DefaultCountry: country,
	})
	if err != nil {
		return fmt.Errorf("failed to derive keys: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(keys) == 0 {
		fmt.Fprintln(out, "No usable identity keys")
		return nil
	}
	for i, key := range keys {
		fmt.Fprintf(out, "%d. %s\n", i+1, key)
	}
	return nil
}
