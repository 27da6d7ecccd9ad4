package service

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/internal/derive"
	"agentpay-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// Reputation tiers by total score.
const (
	TierVeteran = "veteran"
	TierTrusted = "trusted"
	TierActive  = "active"
	TierNew     = "new"
)

// Leaderboard defaults and bounds.
const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// ReputationServiceImpl implements ports.ReputationService.
type ReputationServiceImpl struct {
	ledger  ports.LedgerReader
	deriver *derive.Deriver
	log     zerolog.Logger
	now     func() int64
}

// NewReputationService creates a new ReputationServiceImpl.
func NewReputationService(ledger ports.LedgerReader, deriver *derive.Deriver, log zerolog.Logger) *ReputationServiceImpl {
	return &ReputationServiceImpl{
		ledger:  ledger,
		deriver: deriver,
		log:     log,
		now:     func() int64 { return time.Now().Unix() },
	}
}

// Weighted component caps. Volume and reliability dominate; tenure and
// connections round out the profile.
func volumeComponent(volumeUSDC float64) int {
	return minInt(25, int(math.Round(math.Log10(math.Max(1, volumeUSDC))*6.25)))
}

func tenureComponent(tenureDays int64) int {
	if tenureDays < 0 {
		tenureDays = 0
	}
	return minInt(15, int(math.Round(float64(tenureDays)/90*15)))
}

func reliabilityComponent(reliability int) int {
	return int(math.Round(float64(reliability) / 100 * 25))
}

func connectionsComponent(connections int) int {
	return minInt(15, int(math.Round(float64(connections)/20*15)))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func tierFor(score int) string {
	switch {
	case score >= 75:
		return TierVeteran
	case score >= 50:
		return TierTrusted
	case score >= 25:
		return TierActive
	default:
		return TierNew
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// agentActivity is the per-agent lookup results the full score needs beyond
// the registry record itself.
type agentActivity struct {
	reliability    int
	decidedAsPayer int
	connections    int
	activeSubs     int
	activeGrants   int
}

// Score runs the full reputation computation for one agent, including the
// invoice, subscription, and allowance scans the leaderboard variant skips.
func (s *ReputationServiceImpl) Score(ctx context.Context, name string) (*ports.Reputation, error) {
	if !domain.ValidName(name) {
		return nil, apperror.ErrInvalidName()
	}
	record, _ := s.deriver.AgentAddresses(name)
	raw, err := s.ledger.FetchRaw(ctx, record)
	if errors.Is(err, ports.ErrAccountNotFound) {
		return nil, apperror.ErrNotFound("Agent")
	}
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	agent, err := decodeAgent(raw)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	now := s.now()
	activity, err := s.lookupActivity(ctx, agent, record, now)
	if err != nil {
		return nil, err
	}

	volume := agent.VolumeUSDC()
	tenure := agent.TenureDays(now)
	score := volumeComponent(volume) +
		tenureComponent(tenure) +
		reliabilityComponent(activity.reliability) +
		connectionsComponent(activity.connections)
	if agent.HasSpendingCap() {
		score += 5
	}
	if activity.activeSubs > 0 {
		score += 5
	}
	if activity.activeGrants > 0 {
		score += 5
	}
	if activity.decidedAsPayer > 0 {
		score += 5
	}
	score = clampScore(score)

	return &ports.Reputation{
		Agent:  name,
		Score:  score,
		Tier:   tierFor(score),
		Badges: fullBadges(agent, activity, tenure, volume),
		Breakdown: ports.ReputationInputs{
			VolumeUSDC:          volume,
			TenureDays:          tenure,
			InvoiceReliability:  activity.reliability,
			Connections:         activity.connections,
			HasSpendingCap:      agent.HasSpendingCap(),
			ActiveSubscriptions: activity.activeSubs,
			AllowancesGranted:   activity.activeGrants,
		},
	}, nil
}

// lookupActivity scans the agent's invoices (both roles), subscriptions as
// sender, and allowances as owner. Counterparties are deduplicated by name,
// excluding the agent itself.
func (s *ReputationServiceImpl) lookupActivity(ctx context.Context, agent *domain.Agent, record domain.Address, now int64) (*agentActivity, error) {
	act := &agentActivity{reliability: 100}
	counterparties := map[string]struct{}{}

	asPayer, err := s.ledger.FetchAllOfKind(ctx, ports.KindInvoice, &ports.MemcmpFilter{
		Offset: invoicePayerOffset, Bytes: record.Bytes(),
	})
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	paid := 0
	for _, ra := range asPayer {
		inv, err := decodeInvoice(ra.Data)
		if err != nil {
			s.log.Warn().Err(err).Str("address", ra.Address.String()).Msg("skipping undecodable invoice record")
			continue
		}
		counterparties[inv.RequesterName] = struct{}{}
		if !inv.IsDecided(now) {
			continue
		}
		act.decidedAsPayer++
		if inv.EffectiveStatus(now) == domain.InvoicePaid {
			paid++
		}
	}
	if act.decidedAsPayer > 0 {
		act.reliability = int(math.Round(float64(paid) / float64(act.decidedAsPayer) * 100))
	}

	asRequester, err := s.ledger.FetchAllOfKind(ctx, ports.KindInvoice, &ports.MemcmpFilter{
		Offset: invoiceRequesterOffset, Bytes: record.Bytes(),
	})
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	for _, ra := range asRequester {
		inv, err := decodeInvoice(ra.Data)
		if err != nil {
			continue
		}
		counterparties[inv.PayerName] = struct{}{}
	}

	subs, err := s.ledger.FetchAllOfKind(ctx, ports.KindSubscription, &ports.MemcmpFilter{
		Offset: subscriptionSenderOffset, Bytes: record.Bytes(),
	})
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	for _, ra := range subs {
		sub, err := decodeSubscription(ra.Data)
		if err != nil {
			continue
		}
		counterparties[sub.ReceiverName] = struct{}{}
		if sub.IsActive {
			act.activeSubs++
		}
	}

	grants, err := s.ledger.FetchAllOfKind(ctx, ports.KindAllowance, &ports.MemcmpFilter{
		Offset: allowanceOwnerOffset, Bytes: record.Bytes(),
	})
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	for _, ra := range grants {
		al, err := decodeAllowance(ra.Data)
		if err != nil {
			continue
		}
		counterparties[al.SpenderName] = struct{}{}
		if al.IsActive {
			act.activeGrants++
		}
	}

	delete(counterparties, agent.Name)
	act.connections = len(counterparties)
	return act, nil
}

func fullBadges(agent *domain.Agent, act *agentActivity, tenure int64, volume float64) []string {
	badges := agentBadges(agent, tenure, volume)
	if act.reliability >= 90 && act.decidedAsPayer >= 3 {
		badges = append(badges, "reliable_payer")
	}
	if act.activeSubs >= 3 {
		badges = append(badges, "subscriber")
	}
	if act.connections >= 10 {
		badges = append(badges, "well_connected")
	}
	if act.activeGrants >= 1 {
		badges = append(badges, "trusting")
	}
	return badges
}

// agentBadges are the badges computable from the registry record alone,
// shared by both scoring variants.
func agentBadges(agent *domain.Agent, tenure int64, volume float64) []string {
	badges := []string{}
	if tenure >= 0 && tenure <= 7 {
		badges = append(badges, "early_adopter")
	}
	if volume >= 100 {
		badges = append(badges, "high_volume")
	}
	if volume >= 1000 {
		badges = append(badges, "whale")
	}
	if agent.HasSpendingCap() {
		badges = append(badges, "safety_conscious")
	}
	sent := domain.FromMinorUnits(agent.TotalSent)
	received := domain.FromMinorUnits(agent.TotalReceived)
	if sent > 0 && sent > 1.5*received {
		badges = append(badges, "generous")
	}
	return badges
}

// leaderboardScore is the cheap variant: no per-agent scans, flat bonuses in
// place of the reliability/connections/activity lookups. A fresh zero-volume
// agent scores exactly 25.
func leaderboardScore(agent *domain.Agent, tenure int64, volume float64) int {
	score := volumeComponent(volume) + tenureComponent(tenure) + 25
	if agent.HasSpendingCap() {
		score += 5
	}
	if volume > 0 {
		score += 10
	}
	return clampScore(score)
}

// Leaderboard ranks all agents with the simplified score. Sort keys:
// volume (default), reputation, sent, received.
func (s *ReputationServiceImpl) Leaderboard(ctx context.Context, sortKey string, limit int) ([]ports.LeaderboardRow, error) {
	if sortKey == "" {
		sortKey = "volume"
	}
	switch sortKey {
	case "reputation", "volume", "sent", "received":
	default:
		return nil, apperror.Validation("Sort must be one of reputation, volume, sent, received")
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	raws, err := s.ledger.FetchAllOfKind(ctx, ports.KindAgent, nil)
	if err != nil {
		return nil, apperror.ErrUpstream(err)
	}
	now := s.now()
	rows := make([]ports.LeaderboardRow, 0, len(raws))
	for _, ra := range raws {
		agent, err := decodeAgent(ra.Data)
		if err != nil {
			s.log.Warn().Err(err).Str("address", ra.Address.String()).Msg("skipping undecodable agent record")
			continue
		}
		tenure := agent.TenureDays(now)
		volume := agent.VolumeUSDC()
		score := leaderboardScore(agent, tenure, volume)
		rows = append(rows, ports.LeaderboardRow{
			Name:          agent.Name,
			Score:         score,
			Tier:          tierFor(score),
			Badges:        agentBadges(agent, tenure, volume),
			TotalSent:     domain.FromMinorUnits(agent.TotalSent),
			TotalReceived: domain.FromMinorUnits(agent.TotalReceived),
			TotalVolume:   volume,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		switch sortKey {
		case "volume":
			return rows[i].TotalVolume > rows[j].TotalVolume
		case "sent":
			return rows[i].TotalSent > rows[j].TotalSent
		case "received":
			return rows[i].TotalReceived > rows[j].TotalReceived
		default:
			return rows[i].Score > rows[j].Score
		}
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
