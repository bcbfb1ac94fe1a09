package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/tradebothq/tradebot-hq/internal/models"
)

// Fixed pools the generator draws from.
var (
	botNames = []string{"ETH Trading Bot", "SOL Sniper", "BTC Hunter", "DOGE Trader"}

	tokenAddresses = []string{
		"0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D",
		"0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		"0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984",
	}
)

// Generator produces demo dashboard snapshots. The random source is
// injected so tests can supply a deterministic one.
type Generator struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rnd *rand.Rand
}

// New creates a Generator backed by the given random source.
func New(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// GenerateSnapshot builds a fresh dashboard snapshot for the given
// identifier. The identifier only namespaces generated IDs; two calls
// with the same identifier produce different random content.
func (g *Generator) GenerateSnapshot(userID string) *models.DashboardSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	idPrefix := userID
	if len(idPrefix) > 4 {
		idPrefix = idPrefix[:4]
	}

	botsCount := g.rnd.Intn(3) + 1                    // 1-3 bots
	totalProfit := float64(g.rnd.Intn(2000) + 200)    // $200-$2199
	walletBalance := round2(g.rnd.Float64()*5 + 1)    // 1-6 ETH

	bots := make([]models.Bot, 0, botsCount)
	for i := 0; i < botsCount; i++ {
		status := models.BotStatusActive
		if g.rnd.Float64() <= 0.3 {
			status = models.BotStatusPaused
		}

		profit := round1(g.rnd.Float64() * 20)
		if g.rnd.Float64() <= 0.3 {
			profit = -round1(g.rnd.Float64() * 10)
		}

		bots = append(bots, models.Bot{
			ID:           fmt.Sprintf("bot-%d-%s", i+1, idPrefix),
			Name:         botNames[g.rnd.Intn(len(botNames))],
			Status:       status,
			TokenAddress: tokenAddresses[g.rnd.Intn(len(tokenAddresses))],
			Profit:       profit,
			Transactions: g.rnd.Intn(100) + 10, // independent of the snapshot tx list
			CreatedAt:    fmt.Sprintf("%d days ago", g.rnd.Intn(7)+1),
		})
	}

	txCount := g.rnd.Intn(5) + 3 // 3-7 transactions
	txs := make([]models.Transaction, 0, txCount)
	for i := 0; i < txCount; i++ {
		bot := bots[g.rnd.Intn(len(bots))]
		token := tokenSymbol(bot.Name)

		txType := models.TxTypeBuy
		if g.rnd.Float64() <= 0.5 {
			txType = models.TxTypeSell
		}

		status := models.TxStatusCompleted
		if g.rnd.Float64() <= 0.2 {
			if g.rnd.Float64() > 0.5 {
				status = models.TxStatusPending
			} else {
				status = models.TxStatusFailed
			}
		}

		amount := round2(g.rnd.Float64() * amountRange(token))

		txs = append(txs, models.Transaction{
			ID:           fmt.Sprintf("tx-%d-%s", i+1, idPrefix),
			BotName:      bot.Name,
			Type:         txType,
			Amount:       fmt.Sprintf("%.2f %s", amount, token),
			Token:        token,
			TokenAddress: truncateAddress(bot.TokenAddress),
			Date:         fmt.Sprintf("%d hours ago", g.rnd.Intn(24)+1),
			Status:       status,
		})
	}

	activeBots := 0
	for _, b := range bots {
		if b.Status == models.BotStatusActive {
			activeBots++
		}
	}

	return &models.DashboardSnapshot{
		ActiveBots:        activeBots,
		TotalProfit:       totalProfit,
		TotalTransactions: len(txs),
		WalletBalance:     walletBalance,
		Bots:              bots,
		Transactions:      txs,
	}
}

// tokenSymbol infers a traded token from the bot's name.
func tokenSymbol(botName string) string {
	switch {
	case strings.Contains(botName, "ETH"):
		return "ETH"
	case strings.Contains(botName, "SOL"):
		return "SOL"
	default:
		return "BTC"
	}
}

// amountRange returns the upper bound of the trade amount per token.
func amountRange(token string) float64 {
	switch token {
	case "ETH":
		return 2
	case "SOL":
		return 200
	default:
		return 0.5
	}
}

// truncateAddress renders the display form "0xAAAAAA...ZZZZ".
func truncateAddress(addr string) string {
	if len(addr) < 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
