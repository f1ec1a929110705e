package services

import (
	"github.com/AkmelFed12/PRESELECTION-QI26-tst/internal/models"
)

// DashboardService composes the operator read-model out of the other
// services. Every call re-queries: consistency across the fields is
// read-committed per sub-query, not one atomic snapshot, and slight skew
// between them is fine for a dashboard.
type DashboardService struct {
	candidates *CandidateService
	voting     *VotingService
	scoring    *ScoringService
	settings   *SettingsService
	contacts   *ContactService
	donations  *DonationService
}

func NewDashboardService(
	candidates *CandidateService,
	voting *VotingService,
	scoring *ScoringService,
	settings *SettingsService,
	contacts *ContactService,
	donations *DonationService,
) *DashboardService {
	return &DashboardService{
		candidates: candidates,
		voting:     voting,
		scoring:    scoring,
		settings:   settings,
		contacts:   contacts,
		donations:  donations,
	}
}

type DashboardStats struct {
	TotalCandidates  int   `json:"totalCandidates"`
	TotalVotes       int64 `json:"totalVotes"`
	PendingDonations int64 `json:"pendingDonations"`
	Countries        int   `json:"countries"`
	Cities           int   `json:"cities"`
}

type Dashboard struct {
	Candidates []models.Candidate         `json:"candidates"`
	Votes      []VoteSummary              `json:"votes"`
	Ranking    []RankingEntry             `json:"ranking"`
	Settings   *models.TournamentSettings `json:"settings"`
	Contacts   []models.ContactMessage    `json:"contacts"`
	Stats      DashboardStats             `json:"stats"`
}

func (s *DashboardService) Build() (*Dashboard, error) {
	candidates, err := s.candidates.ListAll()
	if err != nil {
		return nil, err
	}
	votes, err := s.voting.Summary()
	if err != nil {
		return nil, err
	}
	ranking, err := s.scoring.Ranking()
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	contacts, err := s.contacts.List(500)
	if err != nil {
		return nil, err
	}
	pendingDonations, err := s.donations.PendingCount()
	if err != nil {
		return nil, err
	}

	stats := DashboardStats{
		TotalCandidates:  len(candidates),
		PendingDonations: pendingDonations,
	}
	countries := make(map[string]struct{})
	cities := make(map[string]struct{})
	for _, c := range candidates {
		if c.Country != "" {
			countries[c.Country] = struct{}{}
		}
		if c.City != "" {
			cities[c.City] = struct{}{}
		}
	}
	stats.Countries = len(countries)
	stats.Cities = len(cities)
	for _, v := range votes {
		stats.TotalVotes += v.TotalVotes
	}

	return &Dashboard{
		Candidates: candidates,
		Votes:      votes,
		Ranking:    ranking,
		Settings:   settings,
		Contacts:   contacts,
		Stats:      stats,
	}, nil
}
