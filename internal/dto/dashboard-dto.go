package dto

import "donation-system/internal/entities"

// DashboardDTO — сводка по активности фонда.
type DashboardDTO struct {
	TotalContributionAmount float64                 `json:"total_contribution_amount"`
	ContributionCount       uint64                  `json:"contribution_count"`
	CommitteeCount          uint64                  `json:"committee_count"`
	LandDonorCount          uint64                  `json:"land_donor_count"`
	TotalLandAmount         float64                 `json:"total_land_amount"`
	RecentContributions     []entities.Contribution `json:"recent_contributions"`
}
