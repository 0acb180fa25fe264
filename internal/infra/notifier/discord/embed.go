// Package discord delivers swap notifications as Discord webhook embeds.
package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/swapwatch/internal/swapclassifier"
	"github.com/gabapcia/swapwatch/internal/swapnotify"

	"github.com/bwmarrin/discordgo"
)

const (
	embedColor  = 0xf6ee04
	footerText  = "Monitor"
	footerIcon  = "https://slate.dan.onl/slate.png"
	pumpFunSite = "https://pump.fun"
)

// shorten keeps the first and last four characters of s.
func shorten(s string) string {
	if len(s) <= 8 {
		return s
	}

	return s[:4] + "..." + s[len(s)-4:]
}

// formatAmount prints the shortest decimal that round-trips.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// symbol falls back to the shortened mint when metadata was unavailable.
func symbol(l swapclassifier.Leg) string {
	if l.Symbol != "" {
		return l.Symbol
	}

	return shorten(l.Mint)
}

// contract returns the token the links point at: the inbound one, or the
// outbound one when the wallet bought native currency.
func contract(e swapclassifier.SwapEvent) string {
	if e.In.Mint == swapclassifier.NativeMint {
		return e.Out.Mint
	}

	return e.In.Mint
}

// socials renders the enrichment links, or "" when none is known.
func socials(e swapclassifier.Enrichment) string {
	var links []string
	if e.Twitter != "" {
		links = append(links, fmt.Sprintf("[Twitter](%s)", e.Twitter))
	}
	if e.Telegram != "" {
		links = append(links, fmt.Sprintf("[Telegram](%s)", e.Telegram))
	}
	if e.Website != "" {
		links = append(links, fmt.Sprintf("[Website](%s)", e.Website))
	}

	return strings.Join(links, " | ")
}

// markets renders the trading terminal links of mint.
func markets(mint, createdOn string) string {
	links := []string{
		fmt.Sprintf("[Photon](https://photon-sol.tinyastro.io/en/r/@proficyio/%s)", mint),
		fmt.Sprintf("[BullX](https://bullx.io/terminal?chainId=1399811149&address=%s)", mint),
		fmt.Sprintf("[DEXScreener](https://dexscreener.com/solana/%s)", mint),
	}

	if createdOn == pumpFunSite {
		links = append(links, fmt.Sprintf("[Pumpfun](https://pump.fun/%s)", mint))
	}

	return strings.Join(links, " | ")
}

// Render builds the rich embed announcing n at time at. Fields follow the
// order Wallet, Transaction, Socials, Links, Contract Address; Socials is
// omitted without enrichment and Contract Address when both legs are native.
func Render(n swapnotify.Notification, at time.Time) *discordgo.MessageEmbed {
	e := n.Event
	mint := contract(e)

	fields := []*discordgo.MessageEmbedField{
		{Name: "Wallet", Value: fmt.Sprintf("[%s](https://solscan.io/account/%s)", shorten(e.Wallet), e.Wallet), Inline: true},
		{Name: "Transaction", Value: fmt.Sprintf("[%s](https://solscan.io/tx/%s)", shorten(e.Signature), e.Signature), Inline: true},
	}

	if s := socials(e.Enrichment); s != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Socials", Value: s})
	}

	fields = append(fields, &discordgo.MessageEmbedField{Name: "Links", Value: markets(mint, e.Enrichment.CreatedOn)})

	if mint != swapclassifier.NativeMint {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Contract Address", Value: "```" + mint + "```"})
	}

	embed := &discordgo.MessageEmbed{
		Type:  discordgo.EmbedTypeRich,
		Title: "Transaction Detected",
		Description: fmt.Sprintf("%s has swapped %s %s for %s %s",
			n.Wallet.Nickname, formatAmount(e.Out.Amount), symbol(e.Out), formatAmount(e.In.Amount), symbol(e.In)),
		Color:     embedColor,
		Timestamp: at.UTC().Format(time.RFC3339),
		Author:    &discordgo.MessageEmbedAuthor{Name: "Swap"},
		Fields:    fields,
		Footer:    &discordgo.MessageEmbedFooter{Text: footerText, IconURL: footerIcon},
	}

	if e.In.Logo != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: e.In.Logo}
	}

	return embed
}
