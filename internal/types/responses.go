package types

import "time"

type UserResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	Bio      string `json:"bio,omitempty"`
}

type DealSummary struct {
	ID                uint      `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	StartupID         uint      `json:"startup_id"`
	StartupName       string    `json:"startup_name"`
	DealType          string    `json:"deal_type"`
	Status            string    `json:"status"`
	Amount            float64   `json:"amount"`
	EquityOffered     float64   `json:"equity_offered"`
	MinInvestment     float64   `json:"min_investment"`
	TargetCloseDate   time.Time `json:"target_close_date"`
	AmountRaised      float64   `json:"amount_raised"`
	NumberOfInvestors int       `json:"number_of_investors"`
	Industry          string    `json:"industry"`
	CreatedAt         time.Time `json:"created_at"`
}

type StartupSummary struct {
	ID                   uint      `json:"id"`
	CompanyName          string    `json:"company_name"`
	Tagline              string    `json:"tagline"`
	Industry             string    `json:"industry"`
	Stage                string    `json:"stage"`
	Location             string    `json:"location"`
	FoundingDate         time.Time `json:"founding_date"`
	CurrentFundingTarget float64   `json:"current_funding_target"`
	TotalFundingRaised   float64   `json:"total_funding_raised"`
	Verified             bool      `json:"verified"`
}

type InvestorSummary struct {
	ID                 uint    `json:"id"`
	CompanyName        string  `json:"company_name"`
	Location           string  `json:"location"`
	InvestmentRangeMin float64 `json:"investment_range_min"`
	InvestmentRangeMax float64 `json:"investment_range_max"`
	TotalInvestments   int     `json:"total_investments"`
	Verified           bool    `json:"verified"`
}

// Page wraps every paginated listing response.
type Page struct {
	Results  interface{} `json:"results"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Total    int64       `json:"total"`
}
